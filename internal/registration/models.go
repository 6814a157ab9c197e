package registration

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DetailNoticeID is the details key holding the originating notice's id. The
// notice link lives inside the free-form map rather than as a first-class
// column; list filtering and export both match on it.
const DetailNoticeID = "noticeId"

// Registration is one public submission against a notice's form. Details is
// the open-ended answer bag: every non-reserved multipart part lands there
// under its field key, with uploaded files recorded as their stored paths.
// Registrations are immutable history; they are created once and never
// updated.
type Registration struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Event     string             `bson:"event" json:"event"` // notice title snapshot, not a reference
	Details   map[string]string  `bson:"details" json:"details"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
