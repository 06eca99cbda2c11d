// Copyright (c) 2026 Myflix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package mongo provides a managed MongoDB client for the document-store
// backend (STORE_DRIVER=mongo).
package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/taibuivan/myflix/internal/platform/backoff"
)

const (
	connectTimeout  = 5 * time.Second
	pingTimeout     = 2 * time.Second
	maxPoolSize     = 25
	serverSelection = 5 * time.Second
)

// NewClient connects to MongoDB and returns the named database handle
// together with the client that owns it.
//
// # Parameters
//   - ctx: Context for the initial connection attempt.
//   - uri: A mongodb:// or mongodb+srv:// connection string.
//   - database: The database name holding the catalog and user collections.
//   - logger: Structured logger for connection events.
func NewClient(ctx context.Context, uri, database string, logger *slog.Logger) (*mongo.Client, *mongo.Database, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(maxPoolSize).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(serverSelection)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo: failed to create client: %w", err)
	}

	err = backoff.Until(ctx, logger, "mongo", func(ctx context.Context) error {
		return Ping(ctx, client)
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	logger.Info("mongo client connected", slog.String("database", database))

	return client, client.Database(database), nil
}

// Ping verifies that the primary is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo: ping failed: %w", err)
	}

	return nil
}
