package shell

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	a := assert.New(t)
	credit := decimal.NewFromInt(1000)

	amount, err := parseAmount("100", credit)
	a.NoError(err)
	a.True(decimal.NewFromInt(100).Equal(amount))

	amount, err = parseAmount(" 1000\n", credit)
	a.NoError(err)
	a.True(credit.Equal(amount))

	amount, err = parseAmount("0", credit)
	a.NoError(err)
	a.True(amount.IsZero())

	_, err = parseAmount("abc", credit)
	a.ErrorIs(err, ErrInvalidAmount)

	_, err = parseAmount("", credit)
	a.ErrorIs(err, ErrInvalidAmount)

	_, err = parseAmount("-2", credit)
	a.ErrorIs(err, ErrInvalidAmount)

	_, err = parseAmount("1002", credit)
	a.ErrorIs(err, ErrInsufficientCredit)
	a.EqualError(err, "you are betting more than you have, you only have 1000")

	_, err = parseAmount("3", credit)
	a.ErrorIs(err, ErrOddAmount)

	_, err = parseAmount("2.5", credit)
	a.ErrorIs(err, ErrOddAmount)
}

func TestParseConfirmation(t *testing.T) {
	a := assert.New(t)

	start, err := parseConfirmation("YES")
	a.NoError(err)
	a.True(start)

	start, err = parseConfirmation("no ")
	a.NoError(err)
	a.False(start)

	_, err = parseConfirmation("maybe")
	a.Error(err)
}
