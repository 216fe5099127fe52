package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultScanURL is the public testnet scan API.
const DefaultScanURL = "https://scan-testnet.layerzero-api.com/v1"

// ErrMessageNotFound is returned when the scan API has no record of a
// transaction hash. Messages can take a minute to index after broadcast.
var ErrMessageNotFound = errors.New("message not found")

// Client queries the cross-chain scan API for message delivery state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	debug      bool
}

// NewClient creates a scan API client for the default endpoint.
func NewClient() *Client {
	return NewClientWithURL(DefaultScanURL)
}

// NewClientWithURL creates a scan API client against a specific base URL.
func NewClientWithURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetDebug enables or disables debug output
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// MessagesByTx returns the messages emitted by a source transaction.
func (c *Client) MessagesByTx(txHash common.Hash) ([]Message, error) {
	url := fmt.Sprintf("%s/messages/tx/%s", c.baseURL, txHash.Hex())
	return c.getMessages(url)
}

// MessageByGUID returns a single message by its globally unique ID.
func (c *Client) MessageByGUID(guid string) (*Message, error) {
	url := fmt.Sprintf("%s/messages/guid/%s", c.baseURL, guid)
	messages, err := c.getMessages(url)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, ErrMessageNotFound
	}
	return &messages[0], nil
}

func (c *Client) getMessages(url string) ([]Message, error) {
	if c.debug {
		fmt.Printf("    [DEBUG] GET %s\n", url)
	}

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if c.debug {
		fmt.Printf("    [DEBUG] Response status: %d\n", resp.StatusCode)
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("    [DEBUG] Response body: %s\n", string(body))
		}
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrMessageNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scan API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result messagesResponse
	if err := json.Unmarshal(body, &result); err != nil {
		if c.debug {
			fmt.Printf("    [DEBUG] Failed to parse JSON: %s\n", string(body))
		}
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Messages, nil
}

// WaitDelivered polls until the message reaches DELIVERED, the message
// fails, or the deadline passes. Returns the final message state.
func (c *Client) WaitDelivered(guid string, interval, timeout time.Duration) (*Message, error) {
	deadline := time.Now().Add(timeout)
	for {
		msg, err := c.MessageByGUID(guid)
		if err != nil && !errors.Is(err, ErrMessageNotFound) {
			return nil, err
		}
		if msg != nil {
			switch msg.Status {
			case StatusDelivered:
				return msg, nil
			case StatusFailed, StatusPayloadStored:
				return msg, fmt.Errorf("message %s is %s on destination", guid, msg.Status.Label())
			}
		}
		if time.Now().After(deadline) {
			return msg, fmt.Errorf("timed out waiting for delivery of %s", guid)
		}
		time.Sleep(interval)
	}
}
