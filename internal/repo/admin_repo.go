package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/givehub/backend/internal/domain"
)

// CreateAdmin exists for the seeding process only; there is no public
// admin registration endpoint.
func (s *Store) CreateAdmin(ctx context.Context, a *domain.Admin) error {
	a.CreatedAt = time.Now().UTC()
	res, err := s.DB.Collection(collAdmins).InsertOne(ctx, a)
	if err != nil {
		return err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Store) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var a domain.Admin
	err := s.DB.Collection(collAdmins).FindOne(ctx, bson.M{"email": email}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &a, err
}

func (s *Store) FindAdminByID(ctx context.Context, id primitive.ObjectID) (*domain.Admin, error) {
	var a domain.Admin
	err := s.DB.Collection(collAdmins).FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &a, err
}
