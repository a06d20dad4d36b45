package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/givehub/backend/internal/domain"
)

func (s *Store) CreateNotification(ctx context.Context, n *domain.Notification) error {
	n.CreatedAt = time.Now().UTC()
	res, err := s.DB.Collection(collNotifications).InsertOne(ctx, n)
	if err != nil {
		return err
	}
	n.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListNotifications returns all notifications, newest first, optionally
// narrowed by type.
func (s *Store) ListNotifications(ctx context.Context, typ string) ([]domain.Notification, error) {
	filter := bson.M{}
	if typ != "" {
		filter["type"] = typ
	}
	cur, err := s.DB.Collection(collNotifications).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	out := []domain.Notification{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) MarkNotificationRead(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.DB.Collection(collNotifications).UpdateOne(ctx,
		bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *Store) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	res, err := s.DB.Collection(collNotifications).UpdateMany(ctx,
		bson.M{"read": false}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *Store) DeleteNotification(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.DB.Collection(collNotifications).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
