package baccarat

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// payout multipliers, banker wins pay a 5% commission
var (
	bankerPayout = decimal.RequireFromString("0.95")
	playerPayout = decimal.NewFromInt(1)
	tiePayout    = decimal.NewFromInt(8)
)

// Bet is a wager on the outcome of a round
type Bet struct {
	Side   Side            `json:"side"`
	Amount decimal.Decimal `json:"amount"`
}

// Settlement is the result of settling a bet
type Settlement struct {
	Outcome Side            `json:"outcome"`
	Bet     Bet             `json:"bet"`
	Won     bool            `json:"won"`
	Delta   decimal.Decimal `json:"delta"`
	Credit  decimal.Decimal `json:"credit"`
}

// Payout returns how much a winning bet of amount on side pays
func Payout(side Side, amount decimal.Decimal) decimal.Decimal {
	switch side {
	case SideBanker:
		return amount.Mul(bankerPayout)
	case SidePlayer:
		return amount.Mul(playerPayout)
	case SideTie:
		return amount.Mul(tiePayout)
	}

	panic(fmt.Sprintf("invalid side: %s", side))
}

// SettleBet applies the outcome of a round to the bet and the credit balance.
// The balance is not clamped, validating that the bet can be covered is up to the caller.
func SettleBet(outcome Side, bet Bet, credit decimal.Decimal) *Settlement {
	s := &Settlement{
		Outcome: outcome,
		Bet:     bet,
		Won:     bet.Side == outcome,
	}

	if s.Won {
		s.Delta = Payout(bet.Side, bet.Amount)
	} else {
		s.Delta = bet.Amount.Neg()
	}

	s.Credit = credit.Add(s.Delta)
	return s
}

// Settle returns the new credit balance after the bet is settled against the outcome
func Settle(outcome Side, bet Bet, credit decimal.Decimal) decimal.Decimal {
	return SettleBet(outcome, bet, credit).Credit
}
