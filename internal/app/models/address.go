package models

import "github.com/yigit/memberapi/internal/pkg/helpers"

// Address is embedded in Member and has no identity of its own.
type Address struct {
	City    string
	Street  string
	Zipcode string
}

// NewAddress builds an Address from nullable columns. It returns nil when all
// three columns are NULL, which is how a member without an address is stored.
func NewAddress(city, street, zipcode *string) *Address {
	if city == nil && street == nil && zipcode == nil {
		return nil
	}
	return &Address{
		City:    helpers.StringValue(city),
		Street:  helpers.StringValue(street),
		Zipcode: helpers.StringValue(zipcode),
	}
}
