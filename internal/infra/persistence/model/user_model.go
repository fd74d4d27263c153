package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// CreditCardModel is one element of the 'credit_cards' jsonb column.
type CreditCardModel struct {
	FullName string `json:"full_name"`
	Number   string `json:"number"`
	Month    string `json:"month"`
	Year     string `json:"year"`
	CVV      string `json:"cvv"`
}

// UserModel mirrors the 'users' table. Order references are kept as a text
// array so that membership can be tested with ANY and indexed with GIN.
type UserModel struct {
	NationalID    string                               `gorm:"type:varchar(9);primaryKey"`
	Name          string                               `gorm:"type:varchar(100);not null"`
	FirstSurname  string                               `gorm:"type:varchar(100);not null"`
	SecondSurname string                               `gorm:"type:varchar(100)"`
	BirthDate     string                               `gorm:"type:char(10);not null"`
	LastAccesses  datatypes.JSONSlice[time.Time]       `gorm:"type:jsonb;not null"`
	CreditCards   datatypes.JSONSlice[CreditCardModel] `gorm:"type:jsonb;not null"`
	OrderIDs      pq.StringArray                       `gorm:"type:text[];not null;default:'{}';index:idx_users_order_ids,type:gin"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
