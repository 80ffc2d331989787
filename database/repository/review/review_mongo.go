package reviewRepo

import (
	"context"
	"errors"
	"time"

	"vendora/database"
	"vendora/models"
	"vendora/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new ReviewRepository backed by the "reviews" collection.
func NewMongoReviewRepo() ReviewRepository {
	repo := &MongoReviewRepo{coll: database.Collection("reviews")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("review index creation failed", zap.Error(err))
	}
	return repo
}

func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return utils.StoreError{Op: "review insert", Err: err}
	}
	return nil
}

func (r *MongoReviewRepo) GetByID(id string) (*models.Review, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "review", Key: id}
		}
		return nil, utils.StoreError{Op: "review lookup", Err: err}
	}
	return &review, nil
}

func (r *MongoReviewRepo) list(filter bson.M) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, utils.StoreError{Op: "review list", Err: err}
	}
	defer cursor.Close(ctx)
	var reviews []models.Review
	for cursor.Next(ctx) {
		var rv models.Review
		if err := cursor.Decode(&rv); err != nil {
			return nil, utils.StoreError{Op: "review decode", Err: err}
		}
		reviews = append(reviews, rv)
	}
	if err := cursor.Err(); err != nil {
		return nil, utils.StoreError{Op: "review list", Err: err}
	}
	return reviews, nil
}

func (r *MongoReviewRepo) ListByVendorSlug(vendorSlug string) ([]models.Review, error) {
	return r.list(bson.M{"vendorSlug": vendorSlug})
}

func (r *MongoReviewRepo) ListByFlagged(flagged bool) ([]models.Review, error) {
	return r.list(bson.M{"flagged": flagged})
}

func (r *MongoReviewRepo) CountByVendorSlug(vendorSlug string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, bson.M{"vendorSlug": vendorSlug})
	if err != nil {
		return 0, utils.StoreError{Op: "review count", Err: err}
	}
	return count, nil
}

func (r *MongoReviewRepo) Update(review *models.Review) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": review.ID}, bson.M{"$set": review})
	if err != nil {
		return utils.StoreError{Op: "review update", Err: err}
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "review", Key: review.ID}
	}
	return nil
}

func (r *MongoReviewRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return utils.StoreError{Op: "review delete", Err: err}
	}
	if result.DeletedCount == 0 {
		return utils.NotFoundError{Resource: "review", Key: id}
	}
	return nil
}

func (r *MongoReviewRepo) Count() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, utils.StoreError{Op: "review count", Err: err}
	}
	return count, nil
}
