package models

// TenantSettings holds the per-tenant operating configuration consumed by the
// scheduling core.
type TenantSettings struct {
	ID              string `bson:"id" json:"id"`
	Name            string `bson:"name" json:"name"`
	TimeZone        string `bson:"timeZone" json:"timeZone"` // IANA zone name
	DefaultCurrency string `bson:"defaultCurrency" json:"defaultCurrency"`
}
