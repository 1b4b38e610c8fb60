package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sessionhub/user-portal/internal/core/domain"
)

const auditCollection = "auth_events"

// MongoAuditRepository persists authentication audit events. Entries are
// append-only; nothing in the request path ever reads them back.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	Type   string `bson:"type"`
	UserID string `bson:"user_id,omitempty"`
	Email  string `bson:"email"`
	At     int64  `bson:"at"`
}

func (r *MongoAuditRepository) Record(ctx context.Context, event domain.AuthEvent) error {
	doc := mongoAuthEvent{
		Type:   string(event.Type),
		UserID: event.UserID,
		Email:  event.Email,
		At:     event.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
