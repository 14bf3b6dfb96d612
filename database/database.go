package database

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/studyline/lessons-api/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Open connects to the document store and verifies the connection with
// a ping. The returned handle is shared by all requests for the life
// of the process; close it with Close on shutdown.
func Open(ctx context.Context, cfg config.DB) (*mongo.Database, error) {
	opts := options.Client().ApplyURI(cfg.URI)

	if cfg.InsecureTLS {
		opts.SetTLSConfig(&tls.Config{InsecureSkipVerify: true})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging document store: %w", err)
	}

	return client.Database(cfg.Name), nil
}

// Close tears down the underlying client connection.
func Close(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}

// StatusCheck reports whether the store is still reachable.
func StatusCheck(ctx context.Context, db *mongo.Database) error {
	return db.Client().Ping(ctx, readpref.Primary())
}
