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

func (s *Store) CreateOrganization(ctx context.Context, o *domain.Organization) error {
	o.CreatedAt = time.Now().UTC()
	res, err := s.DB.Collection(collOrganizations).InsertOne(ctx, o)
	if err != nil {
		return err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	cur, err := s.DB.Collection(collOrganizations).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	orgs := []domain.Organization{}
	if err := cur.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (s *Store) FindOrganizationByID(ctx context.Context, id primitive.ObjectID) (*domain.Organization, error) {
	var o domain.Organization
	err := s.DB.Collection(collOrganizations).FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &o, err
}

// UpdateOrganization merges the supplied fields into the document; full
// replacement is never performed.
func (s *Store) UpdateOrganization(ctx context.Context, id primitive.ObjectID, fields bson.M) (*domain.Organization, error) {
	res := s.DB.Collection(collOrganizations).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var o domain.Organization
	if err := res.Decode(&o); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (s *Store) DeleteOrganization(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.DB.Collection(collOrganizations).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *Store) CountOrganizations(ctx context.Context) (int64, error) {
	return s.DB.Collection(collOrganizations).CountDocuments(ctx, bson.M{})
}
