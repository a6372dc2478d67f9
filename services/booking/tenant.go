package booking

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"nextaccounting/config"
	"nextaccounting/models"
	"nextaccounting/utils"
)

const tenantSettingsTTL = 5 * time.Minute

// tenantSettings resolves a tenant's operating settings through the Redis
// cache, falling back to configured defaults when the tenant has none stored.
func (s *DefaultBookingService) tenantSettings(ctx context.Context, tenantID string) (models.TenantSettings, error) {
	logger := utils.GetLogger()
	cacheKey := "tenant:settings:" + tenantID

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached models.TenantSettings
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	settings, err := s.Tenants.GetSettings(ctx, tenantID)
	if err != nil {
		return models.TenantSettings{}, err
	}
	if settings == nil {
		settings = &models.TenantSettings{
			ID:              tenantID,
			TimeZone:        config.AppConfig.DefaultTimeZone,
			DefaultCurrency: config.AppConfig.DefaultCurrency,
		}
	}
	if settings.TimeZone == "" {
		settings.TimeZone = config.AppConfig.DefaultTimeZone
	}
	if settings.DefaultCurrency == "" {
		settings.DefaultCurrency = config.AppConfig.DefaultCurrency
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(settings); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, raw, tenantSettingsTTL).Err(); err != nil {
				logger.Warn("failed to cache tenant settings", zap.String("tenantID", tenantID), zap.Error(err))
			}
		}
	}

	return *settings, nil
}
