package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/init0-hack8/postpulse/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, uid string) (*models.User, bool, error)
}

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection("users")}
}

// Upsert writes the user document with merge semantics: profile fields are
// overwritten on every login, createdAt is only set the first time.
func (r *userRepository) Upsert(ctx context.Context, user *models.User) error {
	update := bson.M{
		"$set": bson.M{
			"email":       user.Email,
			"displayName": user.DisplayName,
			"photoURL":    user.PhotoURL,
		},
		"$setOnInsert": bson.M{
			"createdAt": time.Now().UTC(),
		},
	}

	_, err := r.coll.UpdateByID(ctx, user.UID, update, options.Update().SetUpsert(true))
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, uid string) (*models.User, bool, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": uid}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &user, true, nil
}
