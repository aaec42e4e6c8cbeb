package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mega-automotives/mega_backend/config"
	"github.com/mega-automotives/mega_backend/models"
)

// TargetRepository resolves polymorphic assignedTo references against the
// collection selected by their discriminator tag.
type TargetRepository struct {
	db *mongo.Client
}

func NewTargetRepository(db *mongo.Client) *TargetRepository {
	return &TargetRepository{db: db}
}

// Resolve returns the target document for (kind, id), decoded into the kind's
// typed shape. The kind must be an internal tag inside the allowed set;
// anything else fails with a ValidationError before the store is touched. An
// absent document fails closed with a NotFoundError.
func (r *TargetRepository) Resolve(ctx context.Context, kind string, id primitive.ObjectID, allowed []string) (interface{}, error) {
	if !kindAllowed(kind, allowed) {
		return nil, &models.ValidationError{Message: fmt.Sprintf("Unsupported target kind %q", kind)}
	}

	collName, ok := models.CollectionForKind(kind)
	if !ok {
		return nil, &models.ValidationError{Message: fmt.Sprintf("Unsupported target kind %q", kind)}
	}

	target, ok := models.TargetDocForKind(kind)
	if !ok {
		return nil, &models.ValidationError{Message: fmt.Sprintf("Unsupported target kind %q", kind)}
	}

	err := config.GetCollection(r.db, collName).FindOne(ctx, bson.M{"_id": id}).Decode(target)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &models.NotFoundError{Message: fmt.Sprintf("%s not found", kind)}
		}
		return nil, err
	}
	return target, nil
}

// Exists reports whether the target document for (kind, id) exists, with the
// same closed-enumeration guarantees as Resolve.
func (r *TargetRepository) Exists(ctx context.Context, kind string, id primitive.ObjectID, allowed []string) error {
	_, err := r.Resolve(ctx, kind, id, allowed)
	return err
}

// Populate fetches the target document of an already-persisted reference for
// embedding in a response, decoded into the kind's typed shape. A dangling
// reference degrades to nil instead of an error; the referenced document is a
// weak link.
func (r *TargetRepository) Populate(ctx context.Context, kind string, id primitive.ObjectID) interface{} {
	collName, ok := models.CollectionForKind(kind)
	if !ok {
		return nil
	}

	target, ok := models.TargetDocForKind(kind)
	if !ok {
		return nil
	}

	if err := config.GetCollection(r.db, collName).FindOne(ctx, bson.M{"_id": id}).Decode(target); err != nil {
		return nil
	}
	return target
}

func kindAllowed(kind string, allowed []string) bool {
	for _, k := range allowed {
		if k == kind {
			return true
		}
	}
	return false
}
