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

const customersCollection = "customers"

// MongoCustomerRepository implements ports.CustomerRepository on the
// customers collection. Find misses return (nil, nil) per the port contract.
type MongoCustomerRepository struct {
	conn *Lazy
}

func NewCustomerRepository(conn *Lazy) *MongoCustomerRepository {
	return &MongoCustomerRepository{conn: conn}
}

type mongoCustomer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	UserID    string             `bson:"userId,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (mc *mongoCustomer) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:        mc.ID.Hex(),
		Name:      mc.Name,
		Email:     mc.Email,
		Phone:     mc.Phone,
		UserID:    mc.UserID,
		CreatedAt: mc.CreatedAt,
		UpdatedAt: mc.UpdatedAt,
	}
}

func (r *MongoCustomerRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.conn.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(customersCollection), nil
}

func (r *MongoCustomerRepository) Create(ctx context.Context, customer *domain.Customer) (string, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	doc := mongoCustomer{
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		UserID:    customer.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrCustomerExists
		}
		return "", fmt.Errorf("insert customer: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert customer: unexpected id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

func (r *MongoCustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoCustomerRepository) FindByUserID(ctx context.Context, userID string) (*domain.Customer, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *MongoCustomerRepository) findOne(ctx context.Context, filter bson.M) (*domain.Customer, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var mc mongoCustomer
	if err := coll.FindOne(ctx, filter).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *MongoCustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []*domain.Customer
	for cursor.Next(ctx) {
		var mc mongoCustomer
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode customer: %w", err)
		}
		customers = append(customers, mc.toDomain())
	}
	return customers, cursor.Err()
}
