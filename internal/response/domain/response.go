package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response is one submitted message. The user field is always the
// authenticated principal, never client-supplied.
type Response struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Message   string             `bson:"message" json:"message"`
	User      string             `bson:"user" json:"user"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
