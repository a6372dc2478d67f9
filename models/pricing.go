package models

import "time"

// PriceComponent is one named, signed cents adjustment applied to a base
// price. Negative amounts are discounts.
type PriceComponent struct {
	Code       string `json:"code"`
	Label      string `json:"label"`
	AmountCents int64 `json:"amountCents"`
}

// PriceResult is the computed breakdown for a single scheduled occurrence.
// TotalCents is always BaseCents plus the sum of all component amounts.
type PriceResult struct {
	Currency      string           `json:"currency"`
	BaseCents     int64            `json:"baseCents"`
	Components    []PriceComponent `json:"components"`
	SubtotalCents int64            `json:"subtotalCents"`
	TotalCents    int64            `json:"totalCents"`
}

// PeakWindow is a half-open local-hour range [StartHour, EndHour).
type PeakWindow struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// PricingOptions are the caller-supplied price modifiers. Percentages are
// fractional (0.15 = 15%).
type PricingOptions struct {
	WeekendSurchargePercent   float64      `json:"weekendSurchargePercent,omitempty"`
	PeakSurchargePercent      float64      `json:"peakSurchargePercent,omitempty"`
	PeakHours                 []PeakWindow `json:"peakHours,omitempty"`
	EmergencySurchargePercent float64      `json:"emergencySurchargePercent,omitempty"`
	PromoCode                 string       `json:"promoCode,omitempty"`
	Currency                  string       `json:"currency,omitempty"` // target currency; empty = service base currency
	TimeZone                  string       `json:"timeZone,omitempty"` // operating zone for weekend/peak detection; empty = UTC
}

// ExchangeRate is a single (base, target) rate sample; most recent wins.
type ExchangeRate struct {
	Base      string    `bson:"base" json:"base"`
	Target    string    `bson:"target" json:"target"`
	Rate      float64   `bson:"rate" json:"rate"`
	Source    string    `bson:"source,omitempty" json:"source,omitempty"`
	FetchedAt time.Time `bson:"fetchedAt" json:"fetchedAt"`
}
