package baccarat

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPayout(t *testing.T) {
	a := assert.New(t)

	a.True(dec("95").Equal(Payout(SideBanker, dec("100"))))
	a.True(dec("100").Equal(Payout(SidePlayer, dec("100"))))
	a.True(dec("800").Equal(Payout(SideTie, dec("100"))))
	a.True(dec("1.9").Equal(Payout(SideBanker, dec("2"))))
	a.True(decimal.Zero.Equal(Payout(SideTie, decimal.Zero)))

	a.PanicsWithValue("invalid side: dragon", func() {
		Payout(Side("dragon"), dec("2"))
	})
}

func TestSettle(t *testing.T) {
	test := func(t *testing.T, outcome, side Side, amount, credit, expected string) {
		t.Helper()

		got := Settle(outcome, Bet{Side: side, Amount: dec(amount)}, dec(credit))
		assert.True(t, dec(expected).Equal(got), "expected %s, got %s", expected, got)
	}

	// wins
	test(t, SidePlayer, SidePlayer, "100", "1000", "1100")
	test(t, SideBanker, SideBanker, "100", "1000", "1095")
	test(t, SideTie, SideTie, "100", "1000", "1800")
	test(t, SideBanker, SideBanker, "2", "2", "3.9")

	// losses
	test(t, SideBanker, SidePlayer, "100", "1000", "900")
	test(t, SidePlayer, SideBanker, "100", "1000", "900")
	test(t, SideTie, SidePlayer, "100", "1000", "900")
	test(t, SidePlayer, SideTie, "100", "1000", "900")
	test(t, SidePlayer, SideTie, "0", "1000", "1000")

	// the balance is not clamped
	test(t, SidePlayer, SideBanker, "100", "50", "-50")
}

func TestSettleBet(t *testing.T) {
	a := assert.New(t)

	s := SettleBet(SideBanker, Bet{Side: SideBanker, Amount: dec("40")}, dec("100"))
	a.True(s.Won)
	a.Equal(SideBanker, s.Outcome)
	a.True(dec("38").Equal(s.Delta))
	a.True(dec("138").Equal(s.Credit))

	s = SettleBet(SideTie, Bet{Side: SideBanker, Amount: dec("40")}, dec("100"))
	a.False(s.Won)
	a.True(dec("-40").Equal(s.Delta))
	a.True(dec("60").Equal(s.Credit))
}
