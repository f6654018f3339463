package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campushub/events-api/internal/core/domain"
)

const eventsCollection = "events"

type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(eventsCollection)}
}

type mongoEvent struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	Photo       string               `bson:"photo,omitempty"`
	Description string               `bson:"description,omitempty"`
	Venue       string               `bson:"venue"`
	Date        string               `bson:"date"`
	Time        string               `bson:"time"`
	IsFree      bool                 `bson:"is_free"`
	Price       float64              `bson:"price"`
	Attendees   []primitive.ObjectID `bson:"attendees"`
}

func (m mongoEvent) toDomain() *domain.Event {
	attendees := make([]string, 0, len(m.Attendees))
	for _, oid := range m.Attendees {
		attendees = append(attendees, oid.Hex())
	}
	return &domain.Event{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Photo:       m.Photo,
		Description: m.Description,
		Venue:       m.Venue,
		Date:        m.Date,
		Time:        m.Time,
		IsFree:      m.IsFree,
		Price:       m.Price,
		Attendees:   attendees,
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoEvent{
		Name:        e.Name,
		Photo:       e.Photo,
		Description: e.Description,
		Venue:       e.Venue,
		Date:        e.Date,
		Time:        e.Time,
		IsFree:      e.IsFree,
		Price:       e.Price,
		Attendees:   []primitive.ObjectID{},
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	created := *e
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	created.Attendees = []string{}
	return &created, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	events := []*domain.Event{}
	for cur.Next(ctx) {
		var me mongoEvent
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, me.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var me mongoEvent
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return me.toDomain(), nil
}

// AddAttendee appends the student to the attendee set in one
// conditional update: the filter excludes events that already contain
// the id, and $addToSet keeps the write set-semantic even if the
// filter were bypassed. There is no read-modify-write window here.
func (r *EventRepository) AddAttendee(ctx context.Context, eventID, studentID string) error {
	eoid, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return domain.ErrEventNotFound
	}
	soid, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return domain.ErrStudentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": eoid, "attendees": bson.M{"$ne": soid}}
	update := bson.M{"$addToSet": bson.M{"attendees": soid}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("add attendee: %w", err)
	}
	if res.MatchedCount == 0 {
		// Either the event does not exist or the student is already in
		// the set. Disambiguate with a second lookup.
		n, err := r.coll.CountDocuments(ctx, bson.M{"_id": eoid})
		if err != nil {
			return fmt.Errorf("add attendee: %w", err)
		}
		if n == 0 {
			return domain.ErrEventNotFound
		}
		return domain.ErrAlreadyRegistered
	}
	return nil
}
