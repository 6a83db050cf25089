package repository

import (
	"context"
	"log/slog"

	"github.com/init0-hack8/postpulse/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AnalysisRepository interface {
	Create(ctx context.Context, result *models.AnalysisResult) error
	GetByPostID(ctx context.Context, postID string) (*models.AnalysisResult, bool, error)
	ExistsForPost(ctx context.Context, postID string) (bool, error)
}

type analysisRepository struct {
	coll *mongo.Collection
}

func NewAnalysisRepository(db *mongo.Database) AnalysisRepository {
	return &analysisRepository{coll: db.Collection("results")}
}

func (r *analysisRepository) Create(ctx context.Context, result *models.AnalysisResult) error {
	_, err := r.coll.InsertOne(ctx, result)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *analysisRepository) GetByPostID(ctx context.Context, postID string) (*models.AnalysisResult, bool, error) {
	var result models.AnalysisResult
	err := r.coll.FindOne(ctx, bson.M{"postId": postID}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &result, true, nil
}

func (r *analysisRepository) ExistsForPost(ctx context.Context, postID string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"postId": postID})
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return count > 0, nil
}
