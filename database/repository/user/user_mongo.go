package userRepo

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

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new UserRepository backed by the "users" collection.
func NewMongoUserRepo() UserRepository {
	repo := &MongoUserRepo{coll: database.Collection("users")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("user index creation failed", zap.Error(err))
	}
	return repo
}

func (r *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return utils.StoreError{Op: "user insert", Err: err}
	}
	return nil
}

func (r *MongoUserRepo) findOne(filter bson.M, key string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError{Resource: "user", Key: key}
		}
		return nil, utils.StoreError{Op: "user lookup", Err: err}
	}
	return &user, nil
}

func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	return r.findOne(bson.M{"id": id}, id)
}

func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.findOne(bson.M{"email": email}, email)
}

func (r *MongoUserRepo) ExistsByEmail(email string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, utils.StoreError{Op: "user exists check", Err: err}
	}
	return count > 0, nil
}

func (r *MongoUserRepo) ListAll() ([]models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, utils.StoreError{Op: "user list", Err: err}
	}
	defer cursor.Close(ctx)
	var users []models.User
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, utils.StoreError{Op: "user decode", Err: err}
		}
		users = append(users, u)
	}
	if err := cursor.Err(); err != nil {
		return nil, utils.StoreError{Op: "user list", Err: err}
	}
	return users, nil
}

func (r *MongoUserRepo) Update(user *models.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": user.ID}, bson.M{"$set": user})
	if err != nil {
		return utils.StoreError{Op: "user update", Err: err}
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundError{Resource: "user", Key: user.ID}
	}
	return nil
}

func (r *MongoUserRepo) Count() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, utils.StoreError{Op: "user count", Err: err}
	}
	return count, nil
}
