package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wheelhouse/site-api/internal/core/domain"
)

const usersCollection = "users"

// MongoUserRepository implements ports.UserRepository on the users
// collection. Field names stay camelCase so the repository can share a
// database with earlier deployments of the same schema.
type MongoUserRepository struct {
	conn *Lazy
}

func NewUserRepository(conn *Lazy) *MongoUserRepository {
	return &MongoUserRepository{conn: conn}
}

type mongoUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Name      string             `bson:"name"`
	SiteType  string             `bson:"siteType"`
	Role      int                `bson:"role"`
	Active    bool               `bson:"active"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID.Hex(),
		Email:        mu.Email,
		PasswordHash: mu.Password,
		Name:         mu.Name,
		SiteType:     domain.SiteType(mu.SiteType),
		Role:         mu.Role,
		Active:       mu.Active,
		CreatedAt:    mu.CreatedAt,
		UpdatedAt:    mu.UpdatedAt,
	}
}

func (r *MongoUserRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.conn.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(usersCollection), nil
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	doc := mongoUser{
		Email:     user.Email,
		Password:  user.PasswordHash,
		Name:      user.Name,
		SiteType:  string(user.SiteType),
		Role:      user.Role,
		Active:    user.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrUserExists
		}
		return "", fmt.Errorf("insert user: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert user: unexpected id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var mu mongoUser
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string, siteType domain.SiteType) (*domain.User, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var mu mongoUser
	filter := bson.M{"email": email, "siteType": string(siteType)}
	if err := coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) ListBySiteType(ctx context.Context, siteType domain.SiteType) ([]*domain.User, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{"siteType": string(siteType)})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*domain.User
	for cursor.Next(ctx) {
		var mu mongoUser
		if err := cursor.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, mu.toDomain())
	}
	return users, cursor.Err()
}

func (r *MongoUserRepository) SetActive(ctx context.Context, id string, active bool) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	update := bson.M{"$set": bson.M{"active": active, "updatedAt": time.Now().UTC()}}
	res, err := coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("set user active: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
