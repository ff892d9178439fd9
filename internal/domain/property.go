package domain

import "time"

type PropertyID string

type PropertyStatus string

const (
	PropertyStatusDraft   PropertyStatus = "draft"
	PropertyStatusActive  PropertyStatus = "active"
	PropertyStatusPending PropertyStatus = "pending"
	PropertyStatusSold    PropertyStatus = "sold"
)

type Property struct {
	ID           PropertyID
	Title        string
	Description  string
	Price        float64
	Location     string
	PropertyType string
	Beds         float64
	Baths        float64
	Sqft         *float64
	Address      string
	City         string
	State        string
	Zip          string
	ImageURL     string
	Status       PropertyStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PropertyDraft is the create payload. Zero values mean "not supplied".
type PropertyDraft struct {
	Title        string
	Description  string
	Price        *float64
	Location     string
	PropertyType string
	Beds         *float64
	Baths        *float64
	Sqft         *float64
	Address      string
}

// PropertyPatch carries a partial update; nil fields are left untouched.
type PropertyPatch struct {
	Title        *string
	Description  *string
	Price        *float64
	Location     *string
	PropertyType *string
	Beds         *float64
	Baths        *float64
	Sqft         *float64
}

func (d PropertyDraft) Validate() error {
	if d.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if d.Price != nil && *d.Price < 0 {
		return &ValidationError{Field: "price", Message: "price must not be negative"}
	}
	return nil
}
