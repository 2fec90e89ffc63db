package pgnotify

import (
	"encoding/json"
	"time"
)

// MaxPayloadBytes is the PostgreSQL limit for a NOTIFY payload.
const MaxPayloadBytes = 8000

// Envelope is the JSON document sent as the NOTIFY payload.
type Envelope struct {
	Channel     string          `json:"channel"`
	Event       string          `json:"event"`
	Payload     json.RawMessage `json:"payload"`
	PublishedAt time.Time       `json:"publishedAt"`
}
