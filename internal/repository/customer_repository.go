package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/spec-kit/event-registration/internal/domain"
)

// CustomerRepository defines persistence access for customers. It is the
// credential store of the platform: the account service reaches it over HTTP,
// the resource service directly.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

type customerRepository struct {
	coll *mongo.Collection
}

// NewCustomerRepository returns a Mongo-backed implementation.
func NewCustomerRepository(db *mongo.Database) CustomerRepository {
	return &customerRepository{coll: db.Collection("customers")}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if customer.ID == "" {
		customer.ID = bson.NewObjectID().Hex()
	}
	_, err := r.coll.InsertOne(ctx, customer)
	return err
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": customer.ID}, customer)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	customers := []domain.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
