package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/spec-kit/event-registration/internal/domain"
)

// RegistrationRepository defines persistence access for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, registration *domain.Registration) error
	Update(ctx context.Context, registration *domain.Registration) error
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	List(ctx context.Context) ([]domain.Registration, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]domain.Registration, error)
	ListByEventID(ctx context.Context, eventID string) ([]domain.Registration, error)
	Delete(ctx context.Context, id string) error
}

type registrationRepository struct {
	coll *mongo.Collection
}

// NewRegistrationRepository returns a Mongo-backed implementation.
func NewRegistrationRepository(db *mongo.Database) RegistrationRepository {
	return &registrationRepository{coll: db.Collection("registrations")}
}

func (r *registrationRepository) Create(ctx context.Context, registration *domain.Registration) error {
	if registration.ID == "" {
		registration.ID = bson.NewObjectID().Hex()
	}
	_, err := r.coll.InsertOne(ctx, registration)
	return err
}

func (r *registrationRepository) Update(ctx context.Context, registration *domain.Registration) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": registration.ID}, registration)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	var registration domain.Registration
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&registration); err != nil {
		return nil, err
	}
	return &registration, nil
}

func (r *registrationRepository) List(ctx context.Context) ([]domain.Registration, error) {
	return r.find(ctx, bson.M{})
}

func (r *registrationRepository) ListByCustomerID(ctx context.Context, customerID string) ([]domain.Registration, error) {
	return r.find(ctx, bson.M{"customerId": customerID})
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string) ([]domain.Registration, error) {
	return r.find(ctx, bson.M{"eventId": eventID})
}

func (r *registrationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *registrationRepository) find(ctx context.Context, filter bson.M) ([]domain.Registration, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	registrations := []domain.Registration{}
	if err := cursor.All(ctx, &registrations); err != nil {
		return nil, err
	}
	return registrations, nil
}
