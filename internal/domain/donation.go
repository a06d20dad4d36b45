package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DonationPending   = "pending"
	DonationCompleted = "completed"
	DonationFailed    = "failed"

	DonationMonetary = "monetary"
	DonationInKind   = "in_kind"

	// MinAmount is the smallest accepted monetary donation.
	MinAmount = 1
)

var PaymentMethods = []string{"credit_card", "debit_card", "net_banking", "upi"}

type Donation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"            json:"id"`
	DonorID        primitive.ObjectID `bson:"donor_id"                 json:"donorId"`
	OrganizationID primitive.ObjectID `bson:"organization_id"          json:"organizationId"`
	Type           string             `bson:"type"                     json:"type"`
	Amount         float64            `bson:"amount,omitempty"         json:"amount,omitempty"`
	Description    string             `bson:"description,omitempty"    json:"description,omitempty"`
	PaymentMethod  string             `bson:"payment_method"           json:"paymentMethod"`
	Status         string             `bson:"status"                   json:"status"`
	TransactionID  string             `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"               json:"createdAt"`
}

func ValidDonationStatus(s string) bool {
	return s == DonationPending || s == DonationCompleted || s == DonationFailed
}

func ValidDonationType(t string) bool {
	return t == DonationMonetary || t == DonationInKind
}

func ValidPaymentMethod(m string) bool { return contains(PaymentMethods, m) }

// CanTransition reports whether a donation may move from cur to next.
// Pending may move to either terminal state; a terminal state accepts only
// the idempotent re-apply of itself.
func CanTransition(cur, next string) bool {
	if cur == next {
		return true
	}
	return cur == DonationPending
}
