package tenantRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"nextaccounting/database"
	"nextaccounting/models"
)

// TenantRepository exposes read access to tenant operating settings.
type TenantRepository interface {
	GetSettings(ctx context.Context, tenantID string) (*models.TenantSettings, error)
}

type mongoTenantRepo struct {
	coll *mongo.Collection
}

// NewMongoTenantRepo constructs a new MongoDB TenantRepository.
func NewMongoTenantRepo() TenantRepository {
	db := database.MongoClient.Database("nextaccounting")
	return &mongoTenantRepo{
		coll: db.Collection("tenants"),
	}
}

func (r *mongoTenantRepo) GetSettings(ctx context.Context, tenantID string) (*models.TenantSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings models.TenantSettings
	filter := bson.M{"id": tenantID}
	if err := r.coll.FindOne(ctx, filter).Decode(&settings); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching tenant settings for %s: %w", tenantID, err)
	}
	return &settings, nil
}
