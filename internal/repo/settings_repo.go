package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/givehub/backend/internal/domain"
)

// The settings collection holds exactly one document under a fixed key.
const settingsKey = "platform"

func (s *Store) GetSettings(ctx context.Context) (domain.Settings, error) {
	var out domain.Settings
	err := s.DB.Collection(collSettings).FindOne(ctx, bson.M{"_id": settingsKey}).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return domain.DefaultSettings(), nil
	}
	return out, err
}

// UpdateSettings replaces whole named sections; sections holds
// section-name → new section value pairs. On first write the untouched
// sections are seeded from the defaults so a partial patch never leaves
// them empty.
func (s *Store) UpdateSettings(ctx context.Context, sections bson.M) (domain.Settings, error) {
	sections["updated_at"] = time.Now().UTC()
	defaults := domain.DefaultSettings()
	onInsert := bson.M{}
	for name, v := range map[string]interface{}{
		"general":       defaults.General,
		"donations":     defaults.Donations,
		"notifications": defaults.Notifications,
	} {
		if _, given := sections[name]; !given {
			onInsert[name] = v
		}
	}
	update := bson.M{"$set": sections}
	if len(onInsert) > 0 {
		update["$setOnInsert"] = onInsert
	}
	res := s.DB.Collection(collSettings).FindOneAndUpdate(ctx,
		bson.M{"_id": settingsKey},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(true),
	)
	var out domain.Settings
	if err := res.Decode(&out); err != nil {
		return domain.Settings{}, err
	}
	return out, nil
}
