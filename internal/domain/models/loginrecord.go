package models

import "time"

// LoginRecord is one successful sign-in, kept only with the Mongo backend.
// The profile page lists the most recent ones for the signed-in user.
type LoginRecord struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	IP        string    `bson:"ip" json:"ip"`
	UserAgent string    `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Provider  string    `bson:"provider" json:"provider"`
}
