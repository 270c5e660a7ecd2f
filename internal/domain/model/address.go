package model

// AddressKind distinguishes billing from shipping addresses.
type AddressKind string

const (
	AddressBilling  AddressKind = "B"
	AddressShipping AddressKind = "S"
)

// Address is a saved billing or shipping address of a user.
type Address struct {
	ID      int64
	UserID  int64
	Line1   string
	Line2   string
	ZipCode string
	City    string
	Kind    AddressKind
	Default bool
}
