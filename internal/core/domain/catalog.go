package domain

import "time"

// Category groups products in the storefront catalog.
type Category struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	IsDeleted   bool      `json:"-" bson:"is_deleted"`
}

// Product is a catalog entry. Price is the unit price in the store currency.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	ImageURL    string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CategoryID  string    `json:"category_id" bson:"category_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	IsDeleted   bool      `json:"-" bson:"is_deleted"`
}
