package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotifDonation = "donation"
	NotifFeedback = "feedback"
	NotifSystem   = "system"
)

// Notification is admin-facing only, written when a donation, feedback or
// registration lands.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type      string             `bson:"type"          json:"type"`
	Title     string             `bson:"title"         json:"title"`
	Message   string             `bson:"message"       json:"message"`
	Read      bool               `bson:"read"          json:"read"`
	CreatedAt time.Time          `bson:"created_at"    json:"createdAt"`
}

func ValidNotifType(t string) bool {
	return t == NotifDonation || t == NotifFeedback || t == NotifSystem
}
