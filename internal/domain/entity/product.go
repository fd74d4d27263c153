// Package entity contains the core business objects of the project.
package entity

import "time"

// Product is a catalog item identified by its EAN-13 barcode.
// Products are created once and never mutated after validated creation.
type Product struct {
	Barcode    string    `validate:"required,ean13_shape"` // 13-digit EAN-13 code, unique across products.
	Name       string    `validate:"required"`             // Display name, copied into order lines.
	Category   int       `validate:"gte=0"`                // Primary category code.
	Categories []int     `validate:"dive,gte=0"`           // Ordered category codes; when non-empty the first one is Category.
	CreatedAt  time.Time // Set by the store on first save.
}

// Kind implements Document.
func (p *Product) Kind() Kind { return KindProduct }

// Key implements Document.
func (p *Product) Key() string { return p.Barcode }

// CategoryHeadMatches reports whether the category list is empty or starts with the primary category.
func (p *Product) CategoryHeadMatches() bool {
	return len(p.Categories) == 0 || p.Categories[0] == p.Category
}
