package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/givehub/backend/internal/domain"
)

type FeedbackDetail struct {
	domain.Feedback `bson:",inline"`
	Donor           *DonorRef `bson:"donor,omitempty" json:"donor,omitempty"`
}

func (s *Store) CreateFeedback(ctx context.Context, f *domain.Feedback) error {
	f.CreatedAt = time.Now().UTC()
	res, err := s.DB.Collection(collFeedback).InsertOne(ctx, f)
	if err != nil {
		return err
	}
	f.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) ListFeedbackByDonor(ctx context.Context, donorID primitive.ObjectID) ([]domain.Feedback, error) {
	cur, err := s.DB.Collection(collFeedback).Find(ctx, bson.M{"donor_id": donorID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	fb := []domain.Feedback{}
	if err := cur.All(ctx, &fb); err != nil {
		return nil, err
	}
	return fb, nil
}

// ListFeedback returns all feedback, newest first, with the author's
// name/email joined in for the admin view.
func (s *Store) ListFeedback(ctx context.Context) ([]FeedbackDetail, error) {
	pipeline := []bson.M{
		{"$sort": bson.M{"created_at": -1}},
		{"$lookup": bson.M{
			"from":         collDonors,
			"localField":   "donor_id",
			"foreignField": "_id",
			"as":           "donor",
		}},
		{"$addFields": bson.M{
			"donor": bson.M{"$arrayElemAt": bson.A{"$donor", 0}},
		}},
	}
	cur, err := s.DB.Collection(collFeedback).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	out := []FeedbackDetail{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateFeedbackStatus(ctx context.Context, id primitive.ObjectID, status string) (*domain.Feedback, error) {
	res := s.DB.Collection(collFeedback).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		mongoAfter(),
	)
	var f domain.Feedback
	if err := res.Decode(&f); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}
