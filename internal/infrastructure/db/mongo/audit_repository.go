package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/userhub/identity-system/internal/core/domain"
)

const auditCollection = "auth_audit"

// AuditRepository appends authentication audit events to MongoDB.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
