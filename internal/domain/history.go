package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusHistory is an audit record for an exchange status transition,
// stored in MongoDB.
type StatusHistory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	RelatedID   string             `bson:"related_id"`
	RelatedType string             `bson:"related_type"` // exchange
	OldStatus   string             `bson:"old_status"`
	NewStatus   string             `bson:"new_status"`
	ChangedBy   string             `bson:"changed_by"`
	Timestamp   time.Time          `bson:"timestamp"`
}
