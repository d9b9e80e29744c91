package models

import "time"

// IdempotencyRecord stores one replay-protected request and, once the
// handler has run, its captured response.
type IdempotencyRecord struct {
	Key         string                 `bson:"key"`
	Method      string                 `bson:"method"`
	Path        string                 `bson:"path"`
	RequestHash string                 `bson:"request_hash"`
	Response    map[string]interface{} `bson:"response,omitempty"`
	CreatedAt   time.Time              `bson:"created_at"`
	ExpiresAt   time.Time              `bson:"expires_at"`
}
