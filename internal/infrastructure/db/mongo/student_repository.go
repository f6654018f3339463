package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campushub/events-api/internal/core/domain"
	"github.com/campushub/events-api/internal/core/ports"
)

const studentsCollection = "students"

type StudentRepository struct {
	coll *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{coll: db.Collection(studentsCollection)}
}

type mongoStudent struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	NIC          string             `bson:"nic"`
	StudentID    string             `bson:"student_id"`
	Email        string             `bson:"email,omitempty"`
	PasswordHash string             `bson:"password_hash,omitempty"`
}

func (m mongoStudent) toDomain() *domain.Student {
	return &domain.Student{
		ID:           m.ID.Hex(),
		Name:         m.Name,
		NIC:          m.NIC,
		StudentID:    m.StudentID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
	}
}

// Upsert creates or refreshes a provisioned stub keyed on (nic, student_id).
// Only the name is written, so an already-activated student keeps email
// and password untouched when the roster is re-imported.
func (r *StudentRepository) Upsert(ctx context.Context, row ports.RosterRow) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"nic": row.NIC, "student_id": row.StudentID}
	update := bson.M{"$set": bson.M{"name": row.Name}}

	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert student: %w", err)
	}
	return nil
}

func (r *StudentRepository) FindByCredentialPair(ctx context.Context, nic, studentID string) (*domain.Student, error) {
	return r.findOne(ctx, bson.M{"nic": nic, "student_id": studentID})
}

func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*domain.Student, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*domain.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrStudentNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *StudentRepository) findOne(ctx context.Context, filter bson.M) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoStudent
	if err := r.coll.FindOne(ctx, filter).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return ms.toDomain(), nil
}

// FindByIDs resolves attendee references; malformed or unknown ids are
// skipped rather than failing the whole read.
func (r *StudentRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Student, error) {
	if len(ids) == 0 {
		return []*domain.Student{}, nil
	}

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find students: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Student
	for cur.Next(ctx) {
		var ms mongoStudent
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode student: %w", err)
		}
		out = append(out, ms.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}
	return out, nil
}

// Activate writes name, email and password hash onto a record that is
// still provisioned. The filter requires both fields to be absent, so
// of two racing activations exactly one matches; the sparse unique
// index on email maps cross-account collisions to ErrEmailTaken.
func (r *StudentRepository) Activate(ctx context.Context, id, name, email, passwordHash string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrStudentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"_id":           oid,
		"email":         bson.M{"$exists": false},
		"password_hash": bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{
		"name":          name,
		"email":         email,
		"password_hash": passwordHash,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("activate student: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAlreadyActivated
	}
	return nil
}

// EnsureIndexes creates the uniqueness constraints the activation flow
// relies on. The email index is sparse: provisioned records have no
// email field at all.
func (r *StudentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "nic", Value: 1}, {Key: "student_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
