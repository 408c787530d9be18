package persistence

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"github.com/spec-kit/event-registration/internal/config"
)

// Mongo wraps the document store client and the service database handle.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongo connects to MongoDB using the provided configuration.
func NewMongo(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (*Mongo, error) {
	client, err := mongo.Connect(
		options.Client().
			ApplyURI(cfg.URI).
			SetConnectTimeout(cfg.ConnectTimeout()).
			SetMaxPoolSize(cfg.MaxPoolSize).
			SetMinPoolSize(cfg.MinPoolSize),
	)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("connected to mongodb", zap.String("database", cfg.Database))
	return &Mongo{Client: client, Database: client.Database(cfg.Database)}, nil
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) {
	if m != nil && m.Client != nil {
		_ = m.Client.Disconnect(ctx)
	}
}

// Ping verifies MongoDB connectivity.
func (m *Mongo) Ping(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return errors.New("mongo client not configured")
	}
	return m.Client.Ping(ctx, nil)
}
