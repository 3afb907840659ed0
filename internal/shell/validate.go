package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// bet validation errors
var (
	ErrInvalidAmount      = errors.New("invalid betting amount")
	ErrInsufficientCredit = errors.New("you are betting more than you have")
	ErrOddAmount          = errors.New("the betting amount must be an even number")
)

var two = decimal.NewFromInt(2)

// parseAmount parses a bet amount and checks it against the credit balance
func parseAmount(s string, credit decimal.Decimal) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	if amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}

	if amount.GreaterThan(credit) {
		return decimal.Zero, fmt.Errorf("%w, you only have %s", ErrInsufficientCredit, credit)
	}

	if !amount.Mod(two).IsZero() {
		return decimal.Zero, ErrOddAmount
	}

	return amount, nil
}

// parseConfirmation returns true for yes and false for no
func parseConfirmation(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}

	return false, errors.New("please select either yes or no")
}
