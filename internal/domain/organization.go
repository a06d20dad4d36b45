package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrgStatusPending  = "pending"
	OrgStatusActive   = "active"
	OrgStatusInactive = "inactive"
)

var OrgCategories = []string{
	"Disaster Relief", "Children Welfare", "Food Security",
	"Healthcare", "Education", "Environment", "Other",
}

type Organization struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name"          json:"name"`
	Description string             `bson:"description"   json:"description"`
	Email       string             `bson:"email"         json:"email"`
	Phone       string             `bson:"phone"         json:"phone"`
	Address     string             `bson:"address"       json:"address"`
	Website     string             `bson:"website"       json:"website"`
	Category    string             `bson:"category"      json:"category"`
	Status      string             `bson:"status"        json:"status"`
	CreatedAt   time.Time          `bson:"created_at"    json:"createdAt"`
}

func ValidOrgCategory(c string) bool { return contains(OrgCategories, c) }

func ValidOrgStatus(s string) bool {
	return s == OrgStatusPending || s == OrgStatusActive || s == OrgStatusInactive
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
