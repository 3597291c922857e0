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

const requestsCollection = "mentorship_requests"

// RequestRepository persists mentorship requests.
type RequestRepository struct {
	coll *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{coll: db.Collection(requestsCollection)}
}

type mongoRequest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	MenteeID  string             `bson:"mentee_id"`
	MentorID  string             `bson:"mentor_id"`
	Message   string             `bson:"message,omitempty"`
	Status    string             `bson:"status"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (mr mongoRequest) toDomain() *domain.MentorshipRequest {
	return &domain.MentorshipRequest{
		ID:        mr.ID.Hex(),
		MenteeID:  mr.MenteeID,
		MentorID:  mr.MentorID,
		Message:   mr.Message,
		Status:    domain.RequestStatus(mr.Status),
		CreatedAt: unixToTime(mr.CreatedAt),
		UpdatedAt: unixToTime(mr.UpdatedAt),
	}
}

func (r *RequestRepository) Insert(ctx context.Context, req *domain.MentorshipRequest) (*domain.MentorshipRequest, error) {
	doc := mongoRequest{
		MenteeID:  req.MenteeID,
		MentorID:  req.MentorID,
		Message:   req.Message,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt.Unix(),
		UpdatedAt: req.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}

	created := *req
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*domain.MentorshipRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	var mr mongoRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find request: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *RequestRepository) FindPending(ctx context.Context, menteeID, mentorID string) (*domain.MentorshipRequest, error) {
	var mr mongoRequest
	filter := bson.M{
		"mentee_id": menteeID,
		"mentor_id": mentorID,
		"status":    string(domain.RequestPending),
	}
	if err := r.coll.FindOne(ctx, filter).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find pending request: %w", err)
	}
	return mr.toDomain(), nil
}

func (r *RequestRepository) ListByMentor(ctx context.Context, mentorID string, status domain.RequestStatus) ([]*domain.MentorshipRequest, error) {
	return r.list(ctx, bsonFilter("mentor_id", mentorID, status))
}

func (r *RequestRepository) ListByMentee(ctx context.Context, menteeID string, status domain.RequestStatus) ([]*domain.MentorshipRequest, error) {
	return r.list(ctx, bsonFilter("mentee_id", menteeID, status))
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRequestNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"status": string(status), "updated_at": time.Now().UTC().Unix()},
	})
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) CountByMentor(ctx context.Context, mentorID string, status domain.RequestStatus) (int64, error) {
	return r.count(ctx, bsonFilter("mentor_id", mentorID, status))
}

func (r *RequestRepository) CountByMentee(ctx context.Context, menteeID string, status domain.RequestStatus) (int64, error) {
	return r.count(ctx, bsonFilter("mentee_id", menteeID, status))
}

func (r *RequestRepository) list(ctx context.Context, filter bson.M) ([]*domain.MentorshipRequest, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.MentorshipRequest
	for cur.Next(ctx) {
		var mr mongoRequest
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode request: %w", err)
		}
		out = append(out, mr.toDomain())
	}
	return out, cur.Err()
}

func (r *RequestRepository) count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}
	return n, nil
}

// bsonFilter builds a party filter with an optional status ("" = any).
func bsonFilter(field, id string, status domain.RequestStatus) bson.M {
	filter := bson.M{field: id}
	if status != "" {
		filter["status"] = string(status)
	}
	return filter
}
