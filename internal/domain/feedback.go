package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FeedbackPending  = "pending"
	FeedbackReviewed = "reviewed"
	FeedbackResolved = "resolved"
)

var FeedbackCategories = []string{"general", "technical", "suggestion", "complaint"}

type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DonorID   primitive.ObjectID `bson:"donor_id"      json:"donorId"`
	Message   string             `bson:"message"       json:"message"`
	Category  string             `bson:"category"      json:"category"`
	Status    string             `bson:"status"        json:"status"`
	CreatedAt time.Time          `bson:"created_at"    json:"createdAt"`
}

func ValidFeedbackCategory(c string) bool { return contains(FeedbackCategories, c) }

func ValidFeedbackStatus(s string) bool {
	return s == FeedbackPending || s == FeedbackReviewed || s == FeedbackResolved
}
