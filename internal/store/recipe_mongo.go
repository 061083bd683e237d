package store

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"recipebook/internal/models"
)

// MongoRecipeStore persists recipes in the "recipes" collection.
type MongoRecipeStore struct {
	col *mongo.Collection
}

func NewRecipeStore(db *mongo.Database) *MongoRecipeStore {
	return &MongoRecipeStore{col: db.Collection("recipes")}
}

func (s *MongoRecipeStore) Insert(ctx context.Context, recipe models.Recipe) (string, error) {
	res, err := s.col.InsertOne(ctx, recipe)
	if err != nil {
		return "", err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

func (s *MongoRecipeStore) List(ctx context.Context) ([]models.Recipe, error) {
	return s.findMany(ctx, bson.M{})
}

func (s *MongoRecipeStore) ListByUploader(ctx context.Context, uploadedBy string) ([]models.Recipe, error) {
	return s.findMany(ctx, bson.M{"uploadedBy": uploadedBy})
}

func (s *MongoRecipeStore) SearchByTitle(ctx context.Context, fragment string) ([]models.Recipe, error) {
	return s.findMany(ctx, bson.M{"title": titleFilter(fragment)})
}

// titleFilter builds a case-insensitive "contains" match. The fragment is
// quoted so regex metacharacters in user input match literally. An empty
// fragment matches every title.
func titleFilter(fragment string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(fragment), "$options": "i"}
}

func (s *MongoRecipeStore) findMany(ctx context.Context, filter bson.M) ([]models.Recipe, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	recipes := make([]models.Recipe, 0)
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *MongoRecipeStore) FindByID(ctx context.Context, id string) (*models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var recipe models.Recipe
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&recipe); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (s *MongoRecipeStore) Update(ctx context.Context, id string, update RecipeUpdate) (*models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var updated models.Recipe
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title":       update.Title,
		"description": update.Description,
		"culture":     update.Culture,
	}}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (s *MongoRecipeStore) Delete(ctx context.Context, id string) error {
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
