// Package db provides the embedded seed data for the product catalog.
package db

import _ "embed"

// ProductSeed contains the initial catalog as a JSON array of products.
//
//go:embed seed/products.json
var ProductSeed []byte
