// Package mongo provides MongoDB client utilities.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/azpsen/tailfin-api/internal/config"
)

// Connect opens a client for the configured deployment and verifies the
// connection with a ping before returning the database handle.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	opts := options.Client().ApplyURI(cfg.DBURI)
	if cfg.DBUser != "" {
		opts.SetAuth(options.Credential{
			Username:   cfg.DBUser,
			Password:   cfg.DBPwd,
			AuthSource: cfg.DBName,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client.Database(cfg.DBName), nil
}
