// Package model holds the GORM persistence models of the documents.
package model

import (
	"time"

	"github.com/lib/pq"
)

// ProductModel mirrors the 'products' table. The barcode is the primary key,
// so a second product with the same barcode fails with a unique violation.
type ProductModel struct {
	Barcode    string        `gorm:"type:char(13);primaryKey"`
	Name       string        `gorm:"type:varchar(255);not null"`
	Category   int64         `gorm:"not null"`
	Categories pq.Int64Array `gorm:"type:bigint[];not null;default:'{}'"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
