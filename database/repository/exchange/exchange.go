package exchangeRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nextaccounting/database"
	"nextaccounting/models"
)

// ExchangeRateRepository exposes most-recent-wins rate lookups.
type ExchangeRateRepository interface {
	// Latest returns the most recently fetched rate for (base, target), or
	// nil when no rate is known for the pair.
	Latest(ctx context.Context, base, target string) (*models.ExchangeRate, error)
}

type mongoExchangeRateRepo struct {
	coll *mongo.Collection
}

// NewMongoExchangeRateRepo constructs a new MongoDB ExchangeRateRepository.
func NewMongoExchangeRateRepo() ExchangeRateRepository {
	db := database.MongoClient.Database("nextaccounting")
	return &mongoExchangeRateRepo{
		coll: db.Collection("exchange_rates"),
	}
}

func (r *mongoExchangeRateRepo) Latest(ctx context.Context, base, target string) (*models.ExchangeRate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"base": base, "target": target}
	opts := options.FindOne().SetSort(bson.D{{Key: "fetchedAt", Value: -1}})

	var rate models.ExchangeRate
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&rate); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching exchange rate %s->%s: %w", base, target, err)
	}
	return &rate, nil
}
