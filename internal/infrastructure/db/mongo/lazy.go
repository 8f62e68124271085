// Package mongo holds the MongoDB-backed repositories and the lazy
// connection they share.
package mongo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wheelhouse/site-api/internal/core/domain"
)

const dialTimeout = 10 * time.Second

// Config holds the connection settings. An empty URI is a valid deployment
// state: the process serves, and every database-backed action reports the
// missing credentials.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Lazy defers the MongoDB connection until the first action that needs it,
// then reuses the handle for the process lifetime. Connecting twice is a
// no-op. A deployment with no connection string configured fails every
// call with the same error instead of degrading.
type Lazy struct {
	cfg Config

	mu sync.Mutex
	db *mongo.Database
}

func NewLazy(cfg Config) *Lazy {
	return &Lazy{cfg: cfg}
}

// Connect establishes the connection if it does not exist yet. Implements
// the dispatcher's Connector.
func (l *Lazy) Connect(ctx context.Context) error {
	_, err := l.Database(ctx)
	return err
}

// Database returns the shared database handle, connecting on first use.
func (l *Lazy) Database(ctx context.Context) (*mongo.Database, error) {
	if l.cfg.URI == "" {
		return nil, domain.ErrMissingDBCred
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db, nil
	}

	db, err := dial(ctx, l.cfg)
	if err != nil {
		return nil, err
	}
	l.db = db
	return l.db, nil
}

// dial opens a client, verifies it with a ping, and selects the database.
func dial(ctx context.Context, cfg Config) (*mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = dialTimeout
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client.Database(cfg.Database), nil
}
