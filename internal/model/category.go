// Package model defines the records stored by the marketplace.
package model

import (
	"fmt"
	"strings"

	"github.com/aphfiwiwi/biiscoti/internal/common"
)

// Category identifies one vertical shop. Each category lives in its own
// database file with a single table.
type Category string

// Shop categories.
const (
	CategoryBakery       Category = "bakery"
	CategoryRestaurant   Category = "restaurant"
	CategoryThrift       Category = "thrift"
	CategoryJewelry      Category = "jewelry"
	CategoryHorticulture Category = "horticulture"
	CategoryHair         Category = "hair"
	CategoryGrocery      Category = "grocery"
)

// CategoryInfo describes how a category is stored and presented.
type CategoryInfo struct {
	Category    Category
	Title       string
	DBName      string
	Table       string
	AmountLabel string
}

var categoryInfo = []CategoryInfo{
	{Category: CategoryRestaurant, Title: "Restaurants", DBName: "restaurant_db", Table: "restaurants", AmountLabel: "Price"},
	{Category: CategoryBakery, Title: "Bakery", DBName: "bakery_db", Table: "bakery_items", AmountLabel: "Price"},
	{Category: CategoryThrift, Title: "Thrift", DBName: "thrift_db", Table: "thrift", AmountLabel: "Amount"},
	{Category: CategoryJewelry, Title: "Jewelry", DBName: "jewelry_db", Table: "jewelry_services", AmountLabel: "Price"},
	{Category: CategoryHorticulture, Title: "Horticulture", DBName: "horticulture_db", Table: "horticulture_services", AmountLabel: "Price"},
	{Category: CategoryHair, Title: "Hair", DBName: "hair_db", Table: "hair_services", AmountLabel: "Price"},
	{Category: CategoryGrocery, Title: "Grocery", DBName: "grocery_db", Table: "grocery_items", AmountLabel: "Price"},
}

// Categories returns every shop category in menu order.
func Categories() []Category {
	out := make([]Category, len(categoryInfo))
	for i, info := range categoryInfo {
		out[i] = info.Category
	}
	return out
}

// ParseCategory resolves a user-supplied name (case-insensitive, plural
// "restaurants" accepted) to a Category.
func ParseCategory(name string) (Category, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(n, "s")
	for _, info := range categoryInfo {
		if string(info.Category) == n {
			return info.Category, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownCategory, name)
}

// Info returns the storage and display details for c.
func (c Category) Info() CategoryInfo {
	for _, info := range categoryInfo {
		if info.Category == c {
			return info
		}
	}
	return CategoryInfo{Category: c, Title: string(c), DBName: string(c) + "_db", Table: string(c), AmountLabel: "Price"}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, info := range categoryInfo {
		if info.Category == c {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
