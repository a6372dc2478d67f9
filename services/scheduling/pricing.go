package scheduling

import (
	"context"
	"fmt"
	"math"
	"time"

	"nextaccounting/models"
)

// ServiceLookup resolves a service descriptor by ID. A nil service with a nil
// error means not found.
type ServiceLookup func(ctx context.Context, serviceID string) (*models.Service, error)

// RateLookup returns the most recent exchange rate for (base, target), or nil
// when no rate is known.
type RateLookup func(ctx context.Context, base, target string) (*models.ExchangeRate, error)

// PromoResolver maps a promotional code to a discount component, or nil when
// the code is unknown. The resolved component is appended verbatim.
type PromoResolver func(ctx context.Context, code string) (*models.PriceComponent, error)

// PricingDeps are the injected accessors the engine consults. Any accessor
// failure is propagated unchanged; the engine adds no retries.
type PricingDeps struct {
	Services ServiceLookup
	Rates    RateLookup
	Promos   PromoResolver
}

// PriceRequest describes one scheduled occurrence to price.
type PriceRequest struct {
	ServiceID       string
	ScheduledAt     time.Time
	DurationMinutes int // 0 = service default
	Options         models.PricingOptions
}

// Surcharge component codes, in their fixed output order.
const (
	ComponentWeekend   = "WEEKEND"
	ComponentPeak      = "PEAK"
	ComponentOverage   = "OVERAGE"
	ComponentEmergency = "EMERGENCY"
)

// CalculateServicePrice computes the full price breakdown for a scheduled
// occurrence. All arithmetic runs on integer cents; the base price is
// converted from dollars exactly once. Components are evaluated independently
// from the base amount and emitted in a fixed order so identical inputs yield
// identical results.
func CalculateServicePrice(ctx context.Context, req PriceRequest, deps PricingDeps) (models.PriceResult, error) {
	if deps.Services == nil {
		return models.PriceResult{}, &ConfigurationError{Field: "services", Reason: "service lookup is required"}
	}
	svc, err := deps.Services(ctx, req.ServiceID)
	if err != nil {
		return models.PriceResult{}, err
	}
	if svc == nil {
		return models.PriceResult{}, ErrServiceNotFound
	}

	zone := req.Options.TimeZone
	if zone == "" {
		zone = "UTC"
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return models.PriceResult{}, &ConfigurationError{Field: "timeZone", Reason: fmt.Sprintf("unknown zone %q", zone)}
	}
	local := req.ScheduledAt.In(loc)

	baseCents := roundCents(svc.BasePrice * 100)
	var components []models.PriceComponent

	if pct := req.Options.WeekendSurchargePercent; pct != 0 {
		if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
			components = append(components, models.PriceComponent{
				Code:        ComponentWeekend,
				Label:       "Weekend surcharge",
				AmountCents: roundCents(float64(baseCents) * pct),
			})
		}
	}

	if pct := req.Options.PeakSurchargePercent; pct != 0 && inPeakWindow(local.Hour(), req.Options.PeakHours) {
		components = append(components, models.PriceComponent{
			Code:        ComponentPeak,
			Label:       "Peak hours surcharge",
			AmountCents: roundCents(float64(baseCents) * pct),
		})
	}

	if req.DurationMinutes > svc.DurationMinutes && svc.DurationMinutes > 0 {
		extra := req.DurationMinutes - svc.DurationMinutes
		components = append(components, models.PriceComponent{
			Code:        ComponentOverage,
			Label:       fmt.Sprintf("Duration overage (%d min)", extra),
			AmountCents: roundCents(float64(baseCents) * float64(extra) / float64(svc.DurationMinutes)),
		})
	}

	if pct := req.Options.EmergencySurchargePercent; pct != 0 {
		components = append(components, models.PriceComponent{
			Code:        ComponentEmergency,
			Label:       "Emergency booking surcharge",
			AmountCents: roundCents(float64(baseCents) * pct),
		})
	}

	var promo *models.PriceComponent
	if req.Options.PromoCode != "" && deps.Promos != nil {
		promo, err = deps.Promos(ctx, req.Options.PromoCode)
		if err != nil {
			return models.PriceResult{}, err
		}
	}

	currency := svc.BaseCurrency
	if target := req.Options.Currency; target != "" && target != svc.BaseCurrency {
		if deps.Rates == nil {
			return models.PriceResult{}, ErrPricingUnavailable
		}
		rate, err := deps.Rates(ctx, svc.BaseCurrency, target)
		if err != nil {
			return models.PriceResult{}, err
		}
		if rate == nil || rate.Rate <= 0 {
			return models.PriceResult{}, ErrPricingUnavailable
		}
		// Each amount is rounded independently after conversion; converting a
		// pre-computed total would compound rounding error across components.
		baseCents = roundCents(float64(baseCents) * rate.Rate)
		for i := range components {
			components[i].AmountCents = roundCents(float64(components[i].AmountCents) * rate.Rate)
		}
		if promo != nil {
			converted := *promo
			converted.AmountCents = roundCents(float64(promo.AmountCents) * rate.Rate)
			promo = &converted
		}
		currency = target
	}

	subtotal := baseCents
	for _, c := range components {
		subtotal += c.AmountCents
	}
	total := subtotal
	if promo != nil {
		components = append(components, *promo)
		total += promo.AmountCents
	}

	return models.PriceResult{
		Currency:      currency,
		BaseCents:     baseCents,
		Components:    components,
		SubtotalCents: subtotal,
		TotalCents:    total,
	}, nil
}

func inPeakWindow(hour int, windows []models.PeakWindow) bool {
	for _, w := range windows {
		if hour >= w.StartHour && hour < w.EndHour {
			return true
		}
	}
	return false
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}
