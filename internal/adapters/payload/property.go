package payload

import (
	"github.com/propertypro/ppai/internal/domain"
	"github.com/tidwall/gjson"
)

const (
	defaultPropertyLocation = "Dubai"
	defaultPropertyType     = "apartment"
	unknownPropertyType     = "unknown"
)

func Property(doc gjson.Result) domain.Property {
	property := domain.Property{
		ID:           domain.PropertyID(text(first(doc, "id", "property_id", "uuid"))),
		Title:        text(first(doc, "title", "name")),
		Description:  text(doc.Get("description")),
		Price:        numberOr(first(doc, "price_aed", "price", "list_price"), 0),
		Location:     text(first(doc, "location", "city")),
		PropertyType: textOr(first(doc, "property_type", "type"), unknownPropertyType),
		Beds:         numberOr(first(doc, "bedrooms", "beds", "bed"), 0),
		Baths:        numberOr(first(doc, "bathrooms", "baths", "bath"), 0),
		Sqft:         numberPtr(first(doc, "area_sqft", "square_feet", "area")),
		Address:      text(first(doc, "location", "address")),
		City:         text(doc.Get("city")),
		State:        text(doc.Get("state")),
		Zip:          text(doc.Get("zip")),
		ImageURL:     text(first(doc, "image_url", "imageUrl")),
		Status:       domain.PropertyStatus(textOr(first(doc, "status", "listing_status"), string(domain.PropertyStatusDraft))),
		CreatedAt:    timestamp(first(doc, "created_at", "createdAt")),
		UpdatedAt:    timestamp(first(doc, "updated_at", "updatedAt")),
	}
	return property
}

func PropertyFromJSON(body []byte) domain.Property {
	return Property(document(body))
}

// Properties maps a list payload. Anything other than a JSON array yields an empty list.
func Properties(body []byte) []domain.Property {
	items := records(body)
	properties := make([]domain.Property, 0, len(items))
	for _, item := range items {
		properties = append(properties, Property(item))
	}
	return properties
}

// PropertyPatchBody carries only the fields set on patch.
func PropertyPatchBody(patch domain.PropertyPatch) map[string]any {
	body := map[string]any{}
	if patch.Title != nil {
		body["title"] = *patch.Title
	}
	if patch.Description != nil {
		body["description"] = *patch.Description
	}
	if patch.Price != nil {
		body["price"] = *patch.Price
	}
	if patch.Location != nil {
		body["location"] = *patch.Location
	}
	if patch.PropertyType != nil {
		body["property_type"] = *patch.PropertyType
	}
	if patch.Beds != nil {
		body["bedrooms"] = *patch.Beds
	}
	if patch.Baths != nil {
		body["bathrooms"] = *patch.Baths
	}
	if patch.Sqft != nil {
		body["area_sqft"] = *patch.Sqft
	}
	return body
}

// PropertyCreateBody fills the fields the backend requires but the draft may omit.
func PropertyCreateBody(draft domain.PropertyDraft) map[string]any {
	body := map[string]any{"title": draft.Title}

	description := draft.Description
	if description == "" {
		description = draft.Title + " marketing description"
	}
	body["description"] = description

	location := draft.Location
	if location == "" {
		location = firstNonEmpty(draft.Address, draft.Location, defaultPropertyLocation)
	}
	body["location"] = location

	body["property_type"] = firstNonEmpty(draft.PropertyType, defaultPropertyType)
	body["price"] = valueOr(draft.Price, 0)
	body["bedrooms"] = valueOr(draft.Beds, 0)
	body["bathrooms"] = valueOr(draft.Baths, 0)
	if draft.Sqft != nil {
		body["area_sqft"] = *draft.Sqft
	}
	return body
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func valueOr(value *float64, fallback float64) float64 {
	if value == nil {
		return fallback
	}
	return *value
}
