package domain

import (
	"encoding/json"
	"time"
)

// WebhookEvent is one verified webhook delivery from Shopify.
type WebhookEvent struct {
	Topic      string          `json:"topic"`
	Shop       string          `json:"shop"`
	Payload    json.RawMessage `json:"payload"`
	Verified   bool            `json:"verified"`
	ReceivedAt time.Time       `json:"received_at"`
}
