package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mentorloop/mentorship-api/internal/core/domain"
)

const profilesCollection = "profiles"

// ProfileRepository persists user profiles, keyed one-to-one by user id.
type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profilesCollection)}
}

type mongoProfile struct {
	UserID   string   `bson:"user_id"`
	Name     string   `bson:"name"`
	Bio      string   `bson:"bio,omitempty"`
	Skills   []string `bson:"skills"`
	Goals    string   `bson:"goals,omitempty"`
	Industry string   `bson:"industry,omitempty"`
}

func (mp mongoProfile) toDomain() *domain.Profile {
	skills := mp.Skills
	if skills == nil {
		skills = []string{}
	}
	return &domain.Profile{
		UserID:   mp.UserID,
		Name:     mp.Name,
		Bio:      mp.Bio,
		Skills:   skills,
		Goals:    mp.Goals,
		Industry: mp.Industry,
	}
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	var mp mongoProfile
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *ProfileRepository) FindByUserIDs(ctx context.Context, userIDs []string) (map[string]*domain.Profile, error) {
	out := make(map[string]*domain.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	cur, err := r.coll.Find(ctx, bson.M{"user_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, fmt.Errorf("find profiles: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var mp mongoProfile
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		out[mp.UserID] = mp.toDomain()
	}
	return out, cur.Err()
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	doc := mongoProfile{
		UserID:   profile.UserID,
		Name:     profile.Name,
		Bio:      profile.Bio,
		Skills:   profile.Skills,
		Goals:    profile.Goals,
		Industry: profile.Industry,
	}

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"user_id": profile.UserID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return doc.toDomain(), nil
}
