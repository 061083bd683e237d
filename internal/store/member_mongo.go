package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"recipebook/internal/models"
)

// MongoMemberStore persists members in the "members" collection. Email and
// phone uniqueness is backed by the unique indexes created at startup.
type MongoMemberStore struct {
	col *mongo.Collection
}

func NewMemberStore(db *mongo.Database) *MongoMemberStore {
	return &MongoMemberStore{col: db.Collection("members")}
}

func (s *MongoMemberStore) Insert(ctx context.Context, member models.Member) (string, error) {
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now()
	}

	res, err := s.col.InsertOne(ctx, member)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicate
		}
		return "", err
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

func (s *MongoMemberStore) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoMemberStore) FindByStdID(ctx context.Context, stdID string) (*models.Member, error) {
	return s.findOne(ctx, bson.M{"stdID": stdID})
}

func (s *MongoMemberStore) FindByID(ctx context.Context, id string) (*models.Member, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.findOne(ctx, bson.M{"_id": oid})
}

func (s *MongoMemberStore) findOne(ctx context.Context, filter bson.M) (*models.Member, error) {
	var member models.Member
	if err := s.col.FindOne(ctx, filter).Decode(&member); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (s *MongoMemberStore) List(ctx context.Context) ([]models.Member, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	members := make([]models.Member, 0)
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (s *MongoMemberStore) UpdateProfile(ctx context.Context, id string, profile MemberProfile) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"name":        profile.Name,
		"stdID":       profile.StdID,
		"degree":      profile.Degree,
		"country":     profile.Country,
		"email":       profile.Email,
		"phoneNumber": profile.PhoneNumber,
		"address":     profile.Address,
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoMemberStore) UpdatePassword(ctx context.Context, stdID string, passwordHash string) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"stdID": stdID}, bson.M{
		"$set": bson.M{"password": passwordHash},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoMemberStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
