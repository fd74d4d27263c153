package entity

// Kind names a document collection.
type Kind string

const (
	// KindProduct identifies Product documents, keyed by barcode.
	KindProduct Kind = "product"
	// KindOrder identifies Order documents, keyed by UUID.
	KindOrder Kind = "order"
	// KindUser identifies User documents, keyed by national identifier.
	KindUser Kind = "user"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is a valid value.
func (k Kind) IsValid() bool {
	switch k {
	case KindProduct, KindOrder, KindUser:
		return true
	default:
		return false
	}
}

// Document is any top-level persisted entity.
type Document interface {
	Kind() Kind
	Key() string
}
