// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/constants"
)

// document is the stored shape of a user in the users collection.
type document struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Username       string             `bson:"Username"`
	Password       string             `bson:"Password"`
	Email          string             `bson:"Email"`
	Birthday       *time.Time         `bson:"Birthday,omitempty"`
	FavoriteMovies []string           `bson:"FavoriteMovies"`
}

func (doc *document) toUser() *User {
	user := &User{
		ID:             doc.ID.Hex(),
		Username:       doc.Username,
		PasswordHash:   doc.Password,
		Email:          doc.Email,
		FavoriteMovies: doc.FavoriteMovies,
	}
	if doc.Birthday != nil {
		user.Birthday = NewDate(*doc.Birthday)
	}
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []string{}
	}
	return user
}

// MongoRepository implements [Repository] on the users collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates a user repository on database.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(constants.CollectionUsers)}
}

// EnsureIndexes creates the unique username index. Safe to call on every start.
func (repository *MongoRepository) EnsureIndexes(context context.Context) error {
	_, err := repository.collection.Indexes().CreateOne(context, mongo.IndexModel{
		Keys:    bson.D{{Key: "Username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uq_username"),
	})
	if err != nil {
		return fmt.Errorf("mongo_user_index_failed: %w", err)
	}
	return nil
}

func (repository *MongoRepository) FindByUsername(context context.Context, username string) (*User, error) {
	var doc document
	err := repository.collection.FindOne(context, byUsername(username)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("mongo_user_find_failed: %w", err))
	}
	return doc.toUser(), nil
}

func (repository *MongoRepository) Create(context context.Context, user *User) error {
	doc := document{
		Username:       user.Username,
		Password:       user.PasswordHash,
		Email:          user.Email,
		Birthday:       user.Birthday.Ptr(),
		FavoriteMovies: user.FavoriteMovies,
	}
	if doc.FavoriteMovies == nil {
		doc.FavoriteMovies = []string{}
	}

	result, err := repository.collection.InsertOne(context, doc)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.DuplicateUser(user.Username)
	}
	if err != nil {
		return apperr.Internal(fmt.Errorf("mongo_user_create_failed: %w", err))
	}

	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = objectID.Hex()
	}
	user.FavoriteMovies = doc.FavoriteMovies
	return nil
}

func (repository *MongoRepository) Update(context context.Context, username string, fields UpdateFields) (*User, error) {
	set := bson.D{}
	if fields.Username != nil {
		set = append(set, bson.E{Key: "Username", Value: *fields.Username})
	}
	if fields.PasswordHash != nil {
		set = append(set, bson.E{Key: "Password", Value: *fields.PasswordHash})
	}
	if fields.Email != nil {
		set = append(set, bson.E{Key: "Email", Value: *fields.Email})
	}
	if fields.Birthday != nil {
		set = append(set, bson.E{Key: "Birthday", Value: fields.Birthday.Ptr()})
	}

	// An empty $set is rejected by the server
	if len(set) == 0 {
		user, err := repository.FindByUsername(context, username)
		if err == nil && user == nil {
			return nil, apperr.NotFound(resourceName(username))
		}
		return user, err
	}

	user, err := repository.findOneAndUpdate(context, username, bson.D{{Key: "$set", Value: set}})
	if mongo.IsDuplicateKeyError(err) {
		return nil, apperr.DuplicateUser(*fields.Username)
	}
	return user, err
}

func (repository *MongoRepository) Delete(context context.Context, username string) (*User, error) {
	var doc document
	err := repository.collection.FindOneAndDelete(context, byUsername(username)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound(resourceName(username))
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("mongo_user_delete_failed: %w", err))
	}
	return doc.toUser(), nil
}

func (repository *MongoRepository) AddFavorite(context context.Context, username, movieID string) (*User, error) {
	return repository.findOneAndUpdate(context, username, bson.D{{Key: "$push", Value: bson.D{{Key: "FavoriteMovies", Value: movieID}}}})
}

func (repository *MongoRepository) RemoveFavorite(context context.Context, username, movieID string) (*User, error) {
	return repository.findOneAndUpdate(context, username, bson.D{{Key: "$pull", Value: bson.D{{Key: "FavoriteMovies", Value: movieID}}}})
}

// findOneAndUpdate applies update and decodes the post-update document.
// Duplicate key errors are returned unwrapped so callers can classify them.
func (repository *MongoRepository) findOneAndUpdate(context context.Context, username string, update bson.D) (*User, error) {
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc document
	err := repository.collection.FindOneAndUpdate(context, byUsername(username), update, updateOptions).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound(resourceName(username))
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, err
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("mongo_user_update_failed: %w", err))
	}
	return doc.toUser(), nil
}

func byUsername(username string) bson.D {
	return bson.D{{Key: "Username", Value: username}}
}
