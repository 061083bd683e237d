package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMemberIndexes creates the unique indexes on member email and phone
// number. These constraints are the real safety net behind the registration
// pre-check, which is a check-then-act sequence and can race.
func EnsureMemberIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("members").Indexes()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	phoneIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "phoneNumber", Value: 1}},
		Options: options.Index().
			SetName("phoneNumber_unique").
			SetUnique(true),
	}

	log.Println("EnsureMemberIndexes: creating email_unique and phoneNumber_unique indexes")
	_, err := indexes.CreateMany(ctx, []mongo.IndexModel{emailIndex, phoneIndex})
	if err != nil {
		log.Println("EnsureMemberIndexes: index error:", err)
		return err
	}
	log.Println("EnsureMemberIndexes: member indexes created")
	return nil
}
