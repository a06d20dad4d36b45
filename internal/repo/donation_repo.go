package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/givehub/backend/internal/domain"
)

// OrgRef and DonorRef are the joined projections donation listings carry,
// mirroring what the browse views need.
type OrgRef struct {
	ID   primitive.ObjectID `bson:"_id"   json:"id"`
	Name string             `bson:"name"  json:"name"`
}

type DonorRef struct {
	ID    primitive.ObjectID `bson:"_id"   json:"id"`
	Name  string             `bson:"name"  json:"name"`
	Email string             `bson:"email" json:"email"`
}

type DonationDetail struct {
	domain.Donation `bson:",inline"`
	Donor           *DonorRef `bson:"donor,omitempty"        json:"donor,omitempty"`
	Organization    *OrgRef   `bson:"organization,omitempty" json:"organization,omitempty"`
}

// DonationFilter narrows admin listings; zero values mean "no constraint".
type DonationFilter struct {
	DonorID *primitive.ObjectID
	Status  string
	Type    string
	From    *time.Time
	To      *time.Time
}

func (f DonationFilter) match() bson.M {
	m := bson.M{}
	if f.DonorID != nil {
		m["donor_id"] = *f.DonorID
	}
	if f.Status != "" {
		m["status"] = f.Status
	}
	if f.Type != "" {
		m["type"] = f.Type
	}
	if f.From != nil || f.To != nil {
		rng := bson.M{}
		if f.From != nil {
			rng["$gte"] = *f.From
		}
		if f.To != nil {
			rng["$lte"] = *f.To
		}
		m["created_at"] = rng
	}
	return m
}

// DonationAggregates are derived fresh at read time, never stored.
type DonationAggregates struct {
	TotalCount     int64   `bson:"total_count"     json:"totalCount"`
	TotalAmount    float64 `bson:"total_amount"    json:"totalAmount"`
	PendingCount   int64   `bson:"pending_count"   json:"pendingCount"`
	CompletedCount int64   `bson:"completed_count" json:"completedCount"`
}

func (s *Store) CreateDonation(ctx context.Context, d *domain.Donation) error {
	d.CreatedAt = time.Now().UTC()
	res, err := s.DB.Collection(collDonations).InsertOne(ctx, d)
	if err != nil {
		return err
	}
	d.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) FindDonationByID(ctx context.Context, id primitive.ObjectID) (*domain.Donation, error) {
	var d domain.Donation
	err := s.DB.Collection(collDonations).FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &d, err
}

// ListDonations returns filtered donations, newest first, with donor
// name/email and organization name joined in.
func (s *Store) ListDonations(ctx context.Context, f DonationFilter) ([]DonationDetail, error) {
	pipeline := []bson.M{
		{"$match": f.match()},
		{"$sort": bson.M{"created_at": -1}},
		{"$lookup": bson.M{
			"from":         collDonors,
			"localField":   "donor_id",
			"foreignField": "_id",
			"as":           "donor",
		}},
		{"$lookup": bson.M{
			"from":         collOrganizations,
			"localField":   "organization_id",
			"foreignField": "_id",
			"as":           "organization",
		}},
		{"$addFields": bson.M{
			"donor":        bson.M{"$arrayElemAt": bson.A{"$donor", 0}},
			"organization": bson.M{"$arrayElemAt": bson.A{"$organization", 0}},
		}},
	}
	cur, err := s.DB.Collection(collDonations).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	out := []DonationDetail{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AggregateDonations computes the read-time aggregates over the filtered set.
func (s *Store) AggregateDonations(ctx context.Context, f DonationFilter) (DonationAggregates, error) {
	monetary := bson.M{"$cond": bson.A{
		bson.M{"$eq": bson.A{"$type", domain.DonationMonetary}}, "$amount", 0,
	}}
	pending := bson.M{"$cond": bson.A{
		bson.M{"$eq": bson.A{"$status", domain.DonationPending}}, 1, 0,
	}}
	completed := bson.M{"$cond": bson.A{
		bson.M{"$eq": bson.A{"$status", domain.DonationCompleted}}, 1, 0,
	}}
	pipeline := []bson.M{
		{"$match": f.match()},
		{"$group": bson.M{
			"_id":             nil,
			"total_count":     bson.M{"$sum": 1},
			"total_amount":    bson.M{"$sum": monetary},
			"pending_count":   bson.M{"$sum": pending},
			"completed_count": bson.M{"$sum": completed},
		}},
	}
	cur, err := s.DB.Collection(collDonations).Aggregate(ctx, pipeline)
	if err != nil {
		return DonationAggregates{}, err
	}
	var rows []DonationAggregates
	if err := cur.All(ctx, &rows); err != nil {
		return DonationAggregates{}, err
	}
	if len(rows) == 0 {
		return DonationAggregates{}, nil
	}
	return rows[0], nil
}

// UpdateDonationStatus overwrites the status (and transaction id when given)
// and returns the updated document, or nil when the id does not exist.
// Transition legality is the caller's check; re-applying the current status
// is a no-op here by construction.
func (s *Store) UpdateDonationStatus(ctx context.Context, id primitive.ObjectID, status, transactionID string) (*domain.Donation, error) {
	set := bson.M{"status": status}
	if transactionID != "" {
		set["transaction_id"] = transactionID
	}
	res := s.DB.Collection(collDonations).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		mongoAfter(),
	)
	var d domain.Donation
	if err := res.Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}
