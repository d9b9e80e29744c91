package models

import "time"

// Categories a product may belong to. Mirrors the catalog filter set
// exposed by the shop page.
var ProductCategories = []string{"Electronics", "Fashion", "Home", "Sports", "Gifts", "Lighting"}

// Product represents one catalog entry.
type Product struct {
	Name             string    `json:"name" bson:"name"`
	ShortName        string    `json:"shortName" bson:"shortName"` // card/list display name
	Slug             string    `json:"slug" bson:"slug"`           // URL-safe identity, unique
	Price            float64   `json:"price" bson:"price"`
	Rating           int       `json:"rating" bson:"rating"` // 1..5
	Category         string    `json:"category" bson:"category"`
	Description      string    `json:"description" bson:"description"`
	MainImage        string    `json:"mainImage" bson:"mainImage"`
	AdditionalImages []string  `json:"additionalImages,omitempty" bson:"additionalImages,omitempty"`
	Featured         bool      `json:"featured" bson:"featured"`
	Stock            int       `json:"stock" bson:"stock"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ValidCategory reports whether c is one of the fixed catalog categories.
func ValidCategory(c string) bool {
	for _, v := range ProductCategories {
		if v == c {
			return true
		}
	}
	return false
}
