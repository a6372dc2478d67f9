package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"nextaccounting/models"
	"nextaccounting/services/scheduling"
	"nextaccounting/utils"
)

const exchangeRateTTL = 10 * time.Minute

// QuoteServicePrice resolves tenant defaults, builds the cached accessors and
// delegates the arithmetic to the scheduling core.
func (s *DefaultBookingService) QuoteServicePrice(ctx context.Context, req QuoteRequest) (models.PriceResult, error) {
	settings, err := s.tenantSettings(ctx, req.TenantID)
	if err != nil {
		return models.PriceResult{}, err
	}

	opts := req.Options
	if opts.TimeZone == "" {
		opts.TimeZone = settings.TimeZone
	}
	if opts.Currency == "" {
		opts.Currency = settings.DefaultCurrency
	}

	return scheduling.CalculateServicePrice(ctx, scheduling.PriceRequest{
		ServiceID:       req.ServiceID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Options:         opts,
	}, scheduling.PricingDeps{
		Services: s.Services.GetByID,
		Rates:    s.cachedRateLookup(),
		Promos:   s.Promos,
	})
}

// cachedRateLookup wraps the exchange-rate repository with a short-lived
// Redis cache so recurring previews don't hammer the rates collection.
func (s *DefaultBookingService) cachedRateLookup() scheduling.RateLookup {
	return func(ctx context.Context, base, target string) (*models.ExchangeRate, error) {
		logger := utils.GetLogger()
		cacheKey := fmt.Sprintf("fx:%s:%s", base, target)

		if s.Cache != nil {
			if raw, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
				var cached models.ExchangeRate
				if err := json.Unmarshal([]byte(raw), &cached); err == nil {
					return &cached, nil
				}
			}
		}

		rate, err := s.Rates.Latest(ctx, base, target)
		if err != nil || rate == nil {
			return rate, err
		}

		if s.Cache != nil {
			if raw, err := json.Marshal(rate); err == nil {
				if err := s.Cache.Set(ctx, cacheKey, raw, exchangeRateTTL).Err(); err != nil {
					logger.Warn("failed to cache exchange rate", zap.String("pair", cacheKey), zap.Error(err))
				}
			}
		}
		return rate, nil
	}
}
