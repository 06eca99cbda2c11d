// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/constants"
)

// document is the stored shape of a movie in the movies collection.
type document struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"Title"`
	Description string             `bson:"Description"`
	Genre       Genre              `bson:"Genre"`
	Director    Director           `bson:"Director"`
	ImagePath   string             `bson:"ImagePath"`
	Featured    bool               `bson:"Featured"`
}

func (doc *document) toMovie() *Movie {
	return &Movie{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		Genre:       doc.Genre,
		Director:    doc.Director,
		ImagePath:   doc.ImagePath,
		Featured:    doc.Featured,
	}
}

// MongoRepository implements [Repository] and [Writer] on the movies collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates a movie repository on database.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(constants.CollectionMovies)}
}

func (repository *MongoRepository) ListMovies(context context.Context) ([]*Movie, error) {
	return repository.find(context, bson.D{})
}

func (repository *MongoRepository) GetMovie(context context.Context, id string) (*Movie, error) {

	// A malformed ObjectID cannot match anything
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc document
	err = repository.collection.FindOne(context, bson.D{{Key: "_id", Value: objectID}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("mongo_movie_get_failed: %w", err))
	}
	return doc.toMovie(), nil
}

func (repository *MongoRepository) ListByGenre(context context.Context, genre string) ([]*Movie, error) {
	return repository.find(context, bson.D{{Key: "Genre.Name", Value: genre}})
}

func (repository *MongoRepository) GetDirector(context context.Context, name string) (*Director, error) {
	var doc struct {
		Director Director `bson:"Director"`
	}

	findOptions := options.FindOne().SetProjection(bson.D{{Key: "Director", Value: 1}, {Key: "_id", Value: 0}})
	err := repository.collection.FindOne(context, bson.D{{Key: "Director.Name", Value: name}}, findOptions).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("mongo_director_get_failed: %w", err))
	}
	return &doc.Director, nil
}

// CreateMovie inserts a movie and writes the generated ObjectID back into it.
func (repository *MongoRepository) CreateMovie(context context.Context, movie *Movie) error {
	doc := document{
		Title:       movie.Title,
		Description: movie.Description,
		Genre:       movie.Genre,
		Director:    movie.Director,
		ImagePath:   movie.ImagePath,
		Featured:    movie.Featured,
	}

	result, err := repository.collection.InsertOne(context, doc)
	if err != nil {
		return apperr.Internal(fmt.Errorf("mongo_movie_create_failed: %w", err))
	}

	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		movie.ID = objectID.Hex()
	}
	return nil
}

func (repository *MongoRepository) find(context context.Context, filter bson.D) ([]*Movie, error) {
	cursor, err := repository.collection.Find(context, filter, options.Find().SetSort(bson.D{{Key: "Title", Value: 1}}))
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("mongo_movie_find_failed: %w", err))
	}
	defer cursor.Close(context)

	var docs []document
	if err := cursor.All(context, &docs); err != nil {
		return nil, apperr.Internal(fmt.Errorf("mongo_movie_decode_failed: %w", err))
	}

	movies := make([]*Movie, 0, len(docs))
	for i := range docs {
		movies = append(movies, docs[i].toMovie())
	}
	return movies, nil
}
