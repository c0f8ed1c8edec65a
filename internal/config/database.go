package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewMongoDatabase connects to MongoDB and registers a shutdown hook with fx.
func NewMongoDatabase(lc fx.Lifecycle, cfg *AppConfig, log *zap.Logger) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	log.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))

	lc.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			log.Info("Closing MongoDB connection ...")
			return client.Disconnect(stopCtx)
		},
	})

	return client.Database(cfg.MongoDB), nil
}

// EnsureUserIndexes creates a unique, case-insensitive index on the user
// email address. Backstops the check-then-insert registration sequence,
// which is not atomic on its own.
func EnsureUserIndexes(db *mongo.Database, log *zap.Logger) error {
	model := mongo.IndexModel{
		Keys: bson.M{"emailaddress": 1},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.Collection("users").Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("create unique email index: %w", err)
	}

	log.Info("Unique index on emailaddress created successfully")
	return nil
}
