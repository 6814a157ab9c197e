package registration

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RegistrationRepository struct {
	collection *mongo.Collection
}

func NewRegistrationRepository(db *mongo.Database) *RegistrationRepository {
	return &RegistrationRepository{collection: db.Collection("registrations")}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *Registration) error {
	_, err := r.collection.InsertOne(ctx, reg)
	return err
}

// FindAll returns registrations newest first, optionally filtered to one
// notice by the noticeId stored inside the details map.
func (r *RegistrationRepository) FindAll(ctx context.Context, noticeID string) ([]*Registration, error) {
	filter := bson.M{}
	if noticeID != "" {
		filter["details."+DetailNoticeID] = noticeID
	}
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var regs []*Registration
	if err := cursor.All(ctx, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}
