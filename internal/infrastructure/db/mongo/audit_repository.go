package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wheelhouse/site-api/internal/core/domain"
)

const logsCollection = "logs"

// MongoAuditRepository implements ports.AuditRepository on the logs
// collection. Entries are insert-only; there is no update path.
type MongoAuditRepository struct {
	conn *Lazy
}

func NewAuditRepository(conn *Lazy) *MongoAuditRepository {
	return &MongoAuditRepository{conn: conn}
}

type mongoAuditEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Action    string             `bson:"action"`
	IP        string             `bson:"ip,omitempty"`
	UserID    string             `bson:"user,omitempty"`
	Towards   string             `bson:"towards"`
	SiteType  string             `bson:"siteType,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (r *MongoAuditRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.conn.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(logsCollection), nil
}

func (r *MongoAuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = coll.InsertOne(ctx, mongoAuditEntry{
		Action:    entry.Action,
		IP:        entry.IP,
		UserID:    entry.UserID,
		Towards:   entry.Towards,
		SiteType:  string(entry.SiteType),
		CreatedAt: createdAt,
	})
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *MongoAuditRepository) ListRecent(ctx context.Context, limit int64) ([]*domain.AuditEntry, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*domain.AuditEntry
	for cursor.Next(ctx) {
		var me mongoAuditEntry
		if err := cursor.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, &domain.AuditEntry{
			ID:        me.ID.Hex(),
			Action:    me.Action,
			IP:        me.IP,
			UserID:    me.UserID,
			Towards:   me.Towards,
			SiteType:  domain.SiteType(me.SiteType),
			CreatedAt: me.CreatedAt,
		})
	}
	return entries, cursor.Err()
}
