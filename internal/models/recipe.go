package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recipe is a published food recipe. File is the stored filename/URL of the
// uploaded image. UploadedBy is the uploader's member name copied by value;
// there is no referential integrity against the members collection.
type Recipe struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Culture     string             `bson:"culture" json:"culture"`
	Description string             `bson:"description" json:"description"`
	File        string             `bson:"file" json:"file"`
	UploadedBy  string             `bson:"uploadedBy" json:"uploadedBy"`
}
