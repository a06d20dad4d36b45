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

func (s *Store) CreateDonor(ctx context.Context, d *domain.Donor) error {
	d.Role = domain.RoleDonor
	d.CreatedAt = time.Now().UTC()
	res, err := s.DB.Collection(collDonors).InsertOne(ctx, d)
	if err != nil {
		return err
	}
	d.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindDonorByEmail returns the full document including the password hash;
// it exists for login comparison only. The hash never serializes to JSON.
func (s *Store) FindDonorByEmail(ctx context.Context, email string) (*domain.Donor, error) {
	var d domain.Donor
	err := s.DB.Collection(collDonors).FindOne(ctx, bson.M{"email": email}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &d, err
}

func (s *Store) FindDonorByID(ctx context.Context, id primitive.ObjectID) (*domain.Donor, error) {
	var d domain.Donor
	err := s.DB.Collection(collDonors).FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &d, err
}

func (s *Store) ListDonors(ctx context.Context) ([]domain.Donor, error) {
	cur, err := s.DB.Collection(collDonors).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	donors := []domain.Donor{}
	if err := cur.All(ctx, &donors); err != nil {
		return nil, err
	}
	return donors, nil
}

// UpdateDonor applies the supplied fields and returns the updated document,
// or nil when the id does not exist.
func (s *Store) UpdateDonor(ctx context.Context, id primitive.ObjectID, fields bson.M) (*domain.Donor, error) {
	res := s.DB.Collection(collDonors).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		mongoAfter(),
	)
	var d domain.Donor
	if err := res.Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (s *Store) DeleteDonor(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.DB.Collection(collDonors).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *Store) CountDonors(ctx context.Context) (int64, error) {
	return s.DB.Collection(collDonors).CountDocuments(ctx, bson.M{})
}
