// Package catalog holds the fixed product catalog for the storefront.
package catalog

import (
	"strconv"
	"strings"
)

// Product is a single catalog entry. Price is a display string ("$12.00" or
// "Coming Soon"); use PriceValue for arithmetic.
type Product struct {
	ID          string
	Name        string
	Category    string
	Price       string
	Image       string
	Description string
	Rating      float64
}

// Categories lists the browseable categories, "All" first.
var Categories = []string{
	"All",
	"Lips",
	"Face",
	"Makeup Tools",
	"Sponges",
	"Bags",
	"Skin Care",
}

// PriceValue parses a display price into a number. A leading "$" is stripped;
// anything non-numeric (such as "Coming Soon") is worth 0.
func PriceValue(price string) float64 {
	v, err := strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(price), "$"), 64)
	if err != nil {
		return 0
	}
	return v
}

// All returns the full gallery.
func All() []Product {
	return products
}

// ByCategory returns the products in one category; "All" returns everything.
func ByCategory(category string) []Product {
	if category == "All" {
		return All()
	}
	var out []Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ByID returns the product with the given id, reporting presence.
func ByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
