package quoteRepo

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

// MongoQuoteRepo implements QuoteRepository using MongoDB.
type MongoQuoteRepo struct {
	coll *mongo.Collection
}

// NewMongoQuoteRepo creates a new QuoteRepository backed by the "quote_requests" collection.
func NewMongoQuoteRepo() QuoteRepository {
	repo := &MongoQuoteRepo{coll: database.Collection("quote_requests")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("quote index creation failed", zap.Error(err))
	}
	return repo
}

func (r *MongoQuoteRepo) Create(quote *models.QuoteRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, quote); err != nil {
		return utils.StoreError{Op: "quote insert", Err: err}
	}
	return nil
}

func (r *MongoQuoteRepo) GetByID(id string) (*models.QuoteRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var quote models.QuoteRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&quote); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "quote request", Key: id}
		}
		return nil, utils.StoreError{Op: "quote lookup", Err: err}
	}
	return &quote, nil
}

func (r *MongoQuoteRepo) list(filter bson.M) ([]models.QuoteRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, utils.StoreError{Op: "quote list", Err: err}
	}
	defer cursor.Close(ctx)
	var quotes []models.QuoteRequest
	for cursor.Next(ctx) {
		var q models.QuoteRequest
		if err := cursor.Decode(&q); err != nil {
			return nil, utils.StoreError{Op: "quote decode", Err: err}
		}
		quotes = append(quotes, q)
	}
	if err := cursor.Err(); err != nil {
		return nil, utils.StoreError{Op: "quote list", Err: err}
	}
	return quotes, nil
}

func (r *MongoQuoteRepo) ListByVendorSlug(vendorSlug string) ([]models.QuoteRequest, error) {
	return r.list(bson.M{"vendorSlug": vendorSlug})
}

func (r *MongoQuoteRepo) ListByCustomerEmail(customerEmail string) ([]models.QuoteRequest, error) {
	return r.list(bson.M{"customerEmail": customerEmail})
}

func (r *MongoQuoteRepo) Update(quote *models.QuoteRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": quote.ID}, bson.M{"$set": quote})
	if err != nil {
		return utils.StoreError{Op: "quote update", Err: err}
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "quote request", Key: quote.ID}
	}
	return nil
}
