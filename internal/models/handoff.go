package models

import "time"

// Handoff is a one-shot profile snapshot passed from the discovery listing
// to the detail view, so the detail page can skip a second read.
type Handoff struct {
	Token     string    `bson:"token" json:"token"`
	Profile   Profile   `bson:"profile" json:"profile"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
}
