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

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, bool, error)
	GetByUID(ctx context.Context, uid string) ([]*models.Post, error)
	CheckByUID(ctx context.Context, id, uid string) (bool, error)
	ListCreatedBefore(ctx context.Context, cutoff time.Time, limit int64) ([]*models.Post, error)
}

type postRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) PostRepository {
	return &postRepository{coll: db.Collection("posts")}
}

// Create is a single atomic document write under the caller-generated id.
// A failed insert leaves no record visible to readers.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	_, err := r.coll.InsertOne(ctx, post)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, bool, error) {
	var post models.Post
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &post, true, nil
}

func (r *postRepository) GetByUID(ctx context.Context, uid string) ([]*models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"uid": uid}, opts)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) CheckByUID(ctx context.Context, id, uid string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id, "uid": uid})
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return count > 0, nil
}

func (r *postRepository) ListCreatedBefore(ctx context.Context, cutoff time.Time, limit int64) ([]*models.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"createdAt": bson.M{"$lt": cutoff}}, opts)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return posts, nil
}
