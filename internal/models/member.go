package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a registered student account. Password holds the bcrypt hash
// only and is never serialized into responses.
type Member struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	StdID       string             `bson:"stdID" json:"stdID"`
	Degree      string             `bson:"degree" json:"degree"`
	Password    string             `bson:"password" json:"-"`
	Country     string             `bson:"country" json:"country"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Address     string             `bson:"address" json:"address"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
