// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is a customer identified by a Spanish national identifier (NIF or NIE).
type User struct {
	NationalID    string       `validate:"required,national_id_shape"` // NIF or NIE, unique across users.
	Name          string       `validate:"required"`                   // Given name.
	FirstSurname  string       `validate:"required"`                   // First surname.
	SecondSurname string       // Optional second surname.
	BirthDate     string       `validate:"required,birth_date"` // YYYY-MM-DD.
	LastAccesses  []time.Time  // Access timestamps, oldest first.
	CreditCards   []CreditCard `validate:"dive"` // Embedded cards.
	Orders        []uuid.UUID  // Non-owning references, pulled when the order is deleted.
}

// CreditCard is embedded in a User.
type CreditCard struct {
	FullName string `validate:"required"`             // Cardholder name.
	Number   string `validate:"required,card_number"` // 16 digits.
	Month    string `validate:"required,card_month"`  // 01-12.
	Year     string `validate:"required,card_year"`   // Two digits.
	CVV      string `validate:"required,card_cvv"`    // Three digits.
}

// Kind implements Document.
func (u *User) Kind() Kind { return KindUser }

// Key implements Document.
func (u *User) Key() string { return u.NationalID }

// HasOrder reports whether the user references the order.
func (u *User) HasOrder(orderID uuid.UUID) bool {
	return slices.Contains(u.Orders, orderID)
}

// PullOrder removes every reference to orderID, keeping the remaining order,
// and returns how many references were removed.
func (u *User) PullOrder(orderID uuid.UUID) int {
	before := len(u.Orders)
	u.Orders = slices.DeleteFunc(u.Orders, func(id uuid.UUID) bool {
		return id == orderID
	})

	return before - len(u.Orders)
}
