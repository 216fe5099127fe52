package relay

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MessageStatus is the delivery state the scan API reports for a
// cross-chain message.
type MessageStatus string

const (
	StatusInflight      MessageStatus = "INFLIGHT"
	StatusDelivered     MessageStatus = "DELIVERED"
	StatusFailed        MessageStatus = "FAILED"
	StatusPayloadStored MessageStatus = "PAYLOAD_STORED"
)

// Retryable reports whether a message in this state can be re-executed
// on the destination chain.
func (s MessageStatus) Retryable() bool {
	return s == StatusFailed || s == StatusPayloadStored
}

var titleCaser = cases.Title(language.English)

// Label renders the status for human output ("Payload Stored").
func (s MessageStatus) Label() string {
	return titleCaser.String(strings.ReplaceAll(strings.ToLower(string(s)), "_", " "))
}

// Message is one cross-chain message as reported by the scan API.
type Message struct {
	GUID      string        `json:"guid"`
	SrcEid    uint32        `json:"srcEid"`
	DstEid    uint32        `json:"dstEid"`
	Sender    string        `json:"sender"`
	Receiver  string        `json:"receiver"`
	Nonce     uint64        `json:"nonce"`
	Payload   string        `json:"payload"`
	Status    MessageStatus `json:"status"`
	SrcTxHash string        `json:"srcTxHash"`
	DstTxHash *string       `json:"dstTxHash"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// messagesResponse is the scan API list envelope.
type messagesResponse struct {
	Messages []Message `json:"messages"`
}
