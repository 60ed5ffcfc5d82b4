// Package store provides an interface for product storage operations.
package store

import (
	"context"
)

// Product represents a product record in the store.
// ID is the primary key; every stored record carries a non-empty ID equal to its key.
type Product struct {
	ID          string  `dynamodbav:"productID" json:"productID"`
	Name        string  `dynamodbav:"name" json:"name"`
	Description string  `dynamodbav:"description" json:"description"`
	Price       float64 `dynamodbav:"price" json:"price"`
	Available   bool    `dynamodbav:"available" json:"available"`
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, DynamoDB).
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindAll returns all stored products via a full scan.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// Create persists a new product unconditionally. The caller is responsible
	// for assigning a fresh unique ID before calling.
	Create(ctx context.Context, product Product) (*Product, error)

	// Update overwrites an existing product's record, keyed by product.ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, product Product) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) error
}
