package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a valid Luhn-checked reference number,
// e.g. a payment-processor transaction reference.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
