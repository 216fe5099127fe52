package relay

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMessage = `{
	"guid": "0x8f3b1c5d9e0a7f2b4c6d8e0f1a3b5c7d9e1f3a5b7c9d1e3f5a7b9c1d3e5f7a9b",
	"srcEid": 40161,
	"dstEid": 40245,
	"sender": "0x52908400098527886E0F7030069857D2E4169EE7",
	"receiver": "0x8617E340B3D01FA5F11F306F4090FD50E238070D",
	"nonce": 12,
	"payload": "0x0001",
	"status": "%s",
	"srcTxHash": "0xaaa1",
	"dstTxHash": null,
	"createdAt": "2026-08-23T10:00:00Z",
	"updatedAt": "2026-08-23T10:01:00Z"
}`

func scanServer(t *testing.T, status MessageStatus) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"messages": [%s]}`, fmt.Sprintf(sampleMessage, status))
	}))
}

func TestMessagesByTx(t *testing.T) {
	srv := scanServer(t, StatusInflight)
	defer srv.Close()

	client := NewClientWithURL(srv.URL)
	messages, err := client.MessagesByTx(common.HexToHash("0xaaa1"))
	require.NoError(t, err)
	require.Len(t, messages, 1)

	msg := messages[0]
	assert.Equal(t, uint32(40161), msg.SrcEid)
	assert.Equal(t, uint32(40245), msg.DstEid)
	assert.Equal(t, uint64(12), msg.Nonce)
	assert.Equal(t, StatusInflight, msg.Status)
	assert.Nil(t, msg.DstTxHash)
}

func TestMessageByGUID(t *testing.T) {
	srv := scanServer(t, StatusDelivered)
	defer srv.Close()

	client := NewClientWithURL(srv.URL)
	msg, err := client.MessageByGUID("0x8f3b")
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, msg.Status)
}

func TestMessageNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClientWithURL(srv.URL)
	_, err := client.MessageByGUID("0xdead")
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClientWithURL(srv.URL)
	_, err := client.MessagesByTx(common.HexToHash("0xaaa1"))
	assert.ErrorContains(t, err, "status 429")
}

func TestWaitDelivered(t *testing.T) {
	t.Run("already delivered", func(t *testing.T) {
		srv := scanServer(t, StatusDelivered)
		defer srv.Close()

		client := NewClientWithURL(srv.URL)
		msg, err := client.WaitDelivered("0x8f3b", time.Millisecond, 100*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, StatusDelivered, msg.Status)
	})

	t.Run("failed message stops polling", func(t *testing.T) {
		srv := scanServer(t, StatusFailed)
		defer srv.Close()

		client := NewClientWithURL(srv.URL)
		msg, err := client.WaitDelivered("0x8f3b", time.Millisecond, 100*time.Millisecond)
		assert.ErrorContains(t, err, "Failed")
		require.NotNil(t, msg)
		assert.Equal(t, StatusFailed, msg.Status)
	})

	t.Run("keeps polling while unindexed", func(t *testing.T) {
		// The scan API 404s until the message is indexed; WaitDelivered
		// must treat that as "not yet", not as a fatal error.
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls < 3 {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"messages": [%s]}`, fmt.Sprintf(sampleMessage, StatusDelivered))
		}))
		defer srv.Close()

		client := NewClientWithURL(srv.URL)
		msg, err := client.WaitDelivered("0x8f3b", time.Millisecond, time.Second)
		require.NoError(t, err)
		assert.Equal(t, StatusDelivered, msg.Status)
		assert.GreaterOrEqual(t, calls, 3)
	})

	t.Run("inflight times out", func(t *testing.T) {
		srv := scanServer(t, StatusInflight)
		defer srv.Close()

		client := NewClientWithURL(srv.URL)
		_, err := client.WaitDelivered("0x8f3b", time.Millisecond, 10*time.Millisecond)
		assert.ErrorContains(t, err, "timed out")
	})
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, StatusFailed.Retryable())
	assert.True(t, StatusPayloadStored.Retryable())
	assert.False(t, StatusDelivered.Retryable())
	assert.False(t, StatusInflight.Retryable())

	assert.Equal(t, "Payload Stored", StatusPayloadStored.Label())
	assert.Equal(t, "Delivered", StatusDelivered.Label())
}
