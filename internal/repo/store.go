package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collDonors        = "donors"
	collAdmins        = "admins"
	collOrganizations = "organizations"
	collDonations     = "donations"
	collFeedback      = "feedback"
	collNotifications = "notifications"
	collSettings      = "settings"
)

type Store struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func NewStore(ctx context.Context, uri, dbname string) (*Store, error) {
	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	return &Store{Client: cli, DB: cli.Database(dbname)}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.Client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

// EnsureIndexes creates the unique and query indexes the platform relies on.
// Email uniqueness is per collection only; the same address may exist as
// both a donor and an admin.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := func(coll string) error {
		_, err := s.DB.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		return err
	}
	for _, coll := range []string{collDonors, collAdmins, collOrganizations} {
		if err := unique(coll); err != nil {
			return err
		}
	}

	if _, err := s.DB.Collection(collDonations).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "donor_id", Value: 1}, {Key: "created_at", Value: -1}},
	}); err != nil {
		return err
	}
	_, err := s.DB.Collection(collFeedback).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "donor_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

// IsDup reports whether err is a unique-index violation.
func IsDup(err error) bool { return mongo.IsDuplicateKeyError(err) }

func mongoAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}
