package kernel

import (
	"fmt"

	"taxidispatch/internal/pkg/errs"
)

const (
	phonePrefix = "+998"
	phoneLength = 13
)

// ErrPhoneNumberIsNotConstructed indicates that a PhoneNumber was not created
// via NewPhoneNumber. Returned when validating a zero-value PhoneNumber.
var ErrPhoneNumberIsNotConstructed = errs.NewValueIsRequiredError("PhoneNumber must be created via NewPhoneNumber")

// PhoneNumber is a value object for a requester's contact number.
//
// A valid number carries the fixed country code "+998", is exactly 13
// characters long, and contains only digits after the leading plus. The
// conversational front-end re-prompts on bad input, but the core validates
// again here so a malformed number can never be stored on an order.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber validates raw input and returns a PhoneNumber value object.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if raw == "" {
		return PhoneNumber{}, errs.NewValueIsRequiredError("phoneNumber")
	}
	if len(raw) != phoneLength {
		return PhoneNumber{}, errs.NewValueIsInvalidErrorWithCause("phoneNumber",
			fmt.Errorf("must be %d characters long, got %d", phoneLength, len(raw)))
	}
	if raw[:len(phonePrefix)] != phonePrefix {
		return PhoneNumber{}, errs.NewValueIsInvalidErrorWithCause("phoneNumber",
			fmt.Errorf("must start with %s", phonePrefix))
	}
	for _, c := range raw[1:] {
		if c < '0' || c > '9' {
			return PhoneNumber{}, errs.NewValueIsInvalidErrorWithCause("phoneNumber",
				fmt.Errorf("%q is not a digit", c))
		}
	}

	return PhoneNumber{value: raw}, nil
}

// String returns the normalized "+998xxxxxxxxx" form.
func (p PhoneNumber) String() string {
	return p.value
}

// IsEqual compares two phone numbers for equality.
func (p PhoneNumber) IsEqual(other PhoneNumber) bool {
	return p.value == other.value
}

// Validate checks if the PhoneNumber is properly constructed.
func (p PhoneNumber) Validate() error {
	if p.value == "" {
		return ErrPhoneNumberIsNotConstructed
	}
	return nil
}
