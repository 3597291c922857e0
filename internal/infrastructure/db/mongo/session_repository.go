package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
)

const sessionsCollection = "sessions"

// SessionRepository persists mentoring sessions.
type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{coll: db.Collection(sessionsCollection)}
}

type mongoSession struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	MentorID     string             `bson:"mentor_id"`
	MenteeID     string             `bson:"mentee_id"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description,omitempty"`
	ScheduledAt  int64              `bson:"scheduled_at"`
	Status       string             `bson:"status"`
	MenteeRating int                `bson:"mentee_rating,omitempty"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (ms mongoSession) toDomain() *domain.Session {
	return &domain.Session{
		ID:           ms.ID.Hex(),
		MentorID:     ms.MentorID,
		MenteeID:     ms.MenteeID,
		Title:        ms.Title,
		Description:  ms.Description,
		ScheduledAt:  unixToTime(ms.ScheduledAt),
		Status:       domain.SessionStatus(ms.Status),
		MenteeRating: ms.MenteeRating,
		CreatedAt:    unixToTime(ms.CreatedAt),
		UpdatedAt:    unixToTime(ms.UpdatedAt),
	}
}

func (r *SessionRepository) Insert(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	doc := mongoSession{
		MentorID:     s.MentorID,
		MenteeID:     s.MenteeID,
		Title:        s.Title,
		Description:  s.Description,
		ScheduledAt:  s.ScheduledAt.Unix(),
		Status:       string(s.Status),
		MenteeRating: s.MenteeRating,
		CreatedAt:    s.CreatedAt.Unix(),
		UpdatedAt:    s.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	var ms mongoSession
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *SessionRepository) ListByMentor(ctx context.Context, mentorID string, limit int) ([]*domain.Session, error) {
	return r.list(ctx, bson.M{"mentor_id": mentorID}, limit)
}

func (r *SessionRepository) ListByMentee(ctx context.Context, menteeID string, limit int) ([]*domain.Session, error) {
	return r.list(ctx, bson.M{"mentee_id": menteeID}, limit)
}

func (r *SessionRepository) ListAll(ctx context.Context) ([]*domain.Session, error) {
	return r.list(ctx, bson.M{}, 0)
}

func (r *SessionRepository) CompletedByMentor(ctx context.Context, mentorID string) ([]*domain.Session, error) {
	return r.list(ctx, bson.M{
		"mentor_id": mentorID,
		"status":    string(domain.SessionCompleted),
	}, 0)
}

func (r *SessionRepository) SetStatus(ctx context.Context, id string, status domain.SessionStatus, rating int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSessionNotFound
	}

	set := bson.M{"status": string(status), "updated_at": time.Now().UTC().Unix()}
	if rating > 0 {
		set["mentee_rating"] = rating
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("set session status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) CountByMentor(ctx context.Context, mentorID string, status domain.SessionStatus) (int64, error) {
	return r.count(ctx, bson.M{"mentor_id": mentorID, "status": string(status)})
}

func (r *SessionRepository) CountByMentee(ctx context.Context, menteeID string, status domain.SessionStatus) (int64, error) {
	return r.count(ctx, bson.M{"mentee_id": menteeID, "status": string(status)})
}

func (r *SessionRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.M{})
}

func (r *SessionRepository) list(ctx context.Context, filter bson.M, limit int) ([]*domain.Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Session
	for cur.Next(ctx) {
		var ms mongoSession
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		out = append(out, ms.toDomain())
	}
	return out, cur.Err()
}

func (r *SessionRepository) count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
