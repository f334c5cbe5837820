package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is the closed set of product categories.
type Category string

const (
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategoryEggs       Category = "eggs"
	CategoryGrains     Category = "grains"
	CategoryHerbs      Category = "herbs"
	CategoryHoney      Category = "honey"
	CategoryBakery     Category = "bakery"
	CategoryOther      Category = "other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryVegetables, CategoryFruits, CategoryDairy, CategoryMeat, CategoryEggs,
	CategoryGrains, CategoryHerbs, CategoryHoney, CategoryBakery, CategoryOther,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// Unit is the closed set of selling units.
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitGram     Unit = "g"
	UnitPound    Unit = "lb"
	UnitPiece    Unit = "piece"
	UnitDozen    Unit = "dozen"
	UnitBunch    Unit = "bunch"
	UnitLiter    Unit = "liter"
	UnitPack     Unit = "pack"
)

// Units lists every valid unit.
var Units = []Unit{UnitKilogram, UnitGram, UnitPound, UnitPiece, UnitDozen, UnitBunch, UnitLiter, UnitPack}

func (u Unit) IsValid() bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}

	return false
}

// Product is a listing owned by a seller.
// Quantity is the stock on hand; IsAvailable is forced off when an order consumes the last unit.
type Product struct {
	ID          uuid.UUID
	SellerID    uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Category    Category
	Quantity    int
	Unit        Unit
	ImageURL    string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanSupply reports whether the product can currently be bought in the given quantity.
func (p *Product) CanSupply(quantity int) bool {
	return p.IsAvailable && quantity <= p.Quantity
}

// IsOwnedBy reports whether sellerID owns the product.
func (p *Product) IsOwnedBy(sellerID uuid.UUID) bool {
	return p.SellerID == sellerID
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Search        string
	Category      Category
	SellerID      *uuid.UUID
	AvailableOnly bool
	Page          int
	PageSize      int
}

// Offset returns the row offset of the page (pages start at 1).
func (f ProductFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}

	return (f.Page - 1) * f.PageSize
}
