package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
)

const matchesCollection = "mentorship_matches"

// MatchRepository persists mentorship matches.
type MatchRepository struct {
	coll *mongo.Collection
}

func NewMatchRepository(db *mongo.Database) *MatchRepository {
	return &MatchRepository{coll: db.Collection(matchesCollection)}
}

type mongoMatch struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	MentorID  string             `bson:"mentor_id"`
	MenteeID  string             `bson:"mentee_id"`
	Status    string             `bson:"status"`
	CreatedAt int64              `bson:"created_at"`
}

func (mm mongoMatch) toDomain() *domain.Match {
	return &domain.Match{
		ID:        mm.ID.Hex(),
		MentorID:  mm.MentorID,
		MenteeID:  mm.MenteeID,
		Status:    domain.MatchStatus(mm.Status),
		CreatedAt: unixToTime(mm.CreatedAt),
	}
}

func (r *MatchRepository) Insert(ctx context.Context, m *domain.Match) (*domain.Match, error) {
	doc := mongoMatch{
		MentorID:  m.MentorID,
		MenteeID:  m.MenteeID,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert match: %w", err)
	}

	created := *m
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MatchRepository) FindActive(ctx context.Context, mentorID, menteeID string) (*domain.Match, error) {
	var mm mongoMatch
	filter := bson.M{
		"mentor_id": mentorID,
		"mentee_id": menteeID,
		"status":    string(domain.MatchActive),
	}
	if err := r.coll.FindOne(ctx, filter).Decode(&mm); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrMatchNotFound
		}
		return nil, fmt.Errorf("find active match: %w", err)
	}
	return mm.toDomain(), nil
}

func (r *MatchRepository) List(ctx context.Context) ([]*domain.Match, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Match
	for cur.Next(ctx) {
		var mm mongoMatch
		if err := cur.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode match: %w", err)
		}
		out = append(out, mm.toDomain())
	}
	return out, cur.Err()
}

func (r *MatchRepository) CountByMentor(ctx context.Context, mentorID string, status domain.MatchStatus) (int64, error) {
	return r.count(ctx, bson.M{"mentor_id": mentorID, "status": string(status)})
}

func (r *MatchRepository) CountByMentee(ctx context.Context, menteeID string, status domain.MatchStatus) (int64, error) {
	return r.count(ctx, bson.M{"mentee_id": menteeID, "status": string(status)})
}

func (r *MatchRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.M{})
}

func (r *MatchRepository) count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return n, nil
}
