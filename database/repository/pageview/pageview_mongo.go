package pageviewRepo

import (
	"context"
	"time"

	"vendora/database"
	"vendora/models"
	"vendora/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoPageViewRepo implements PageViewRepository using MongoDB.
type MongoPageViewRepo struct {
	coll *mongo.Collection
}

// NewMongoPageViewRepo creates a new PageViewRepository backed by the "page_views" collection.
func NewMongoPageViewRepo() PageViewRepository {
	repo := &MongoPageViewRepo{coll: database.Collection("page_views")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("page view index creation failed", zap.Error(err))
	}
	return repo
}

func (r *MongoPageViewRepo) Create(view *models.PageView) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, view); err != nil {
		return utils.StoreError{Op: "page view insert", Err: err}
	}
	return nil
}

func (r *MongoPageViewRepo) count(filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, utils.StoreError{Op: "page view count", Err: err}
	}
	return count, nil
}

func (r *MongoPageViewRepo) CountByVendorSlug(vendorSlug string) (int64, error) {
	return r.count(bson.M{"vendorSlug": vendorSlug})
}

func (r *MongoPageViewRepo) CountByVendorSlugAfter(vendorSlug string, after time.Time) (int64, error) {
	return r.count(bson.M{"vendorSlug": vendorSlug, "viewedAt": bson.M{"$gt": after}})
}
