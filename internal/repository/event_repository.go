package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/spec-kit/event-registration/internal/domain"
)

// EventRepository defines persistence access for events.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Update(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Delete(ctx context.Context, id string) error
	// AdjustAvailability atomically adds delta to the remaining seat count.
	AdjustAvailability(ctx context.Context, id string, delta int) error
}

type eventRepository struct {
	coll *mongo.Collection
}

// NewEventRepository returns a Mongo-backed implementation.
func NewEventRepository(db *mongo.Database) EventRepository {
	return &eventRepository{coll: db.Collection("events")}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	if event.ID == "" {
		event.ID = bson.NewObjectID().Hex()
	}
	_, err := r.coll.InsertOne(ctx, event)
	return err
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": event.ID}, event)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var event domain.Event
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]domain.Event, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	events := []domain.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *eventRepository) AdjustAvailability(ctx context.Context, id string, delta int) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"eventAvailability": delta}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
