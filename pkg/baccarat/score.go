package baccarat

import "baccarat/pkg/deck"

// PointValue returns what a single card contributes to a hand's score
// Aces count as one, tens and face cards count as zero.
func PointValue(card *deck.Card) int {
	switch {
	case card.Rank == deck.Ace:
		return 1
	case card.Rank >= deck.Ten:
		return 0
	}

	return card.Rank
}

// Score returns the value of the hand, from 0 to 9
func Score(hand deck.Hand) int {
	points := 0
	for _, card := range hand {
		points += PointValue(card)
	}

	return points % 10
}

// IsNatural returns true if a two-card hand scores 8 or 9
func IsNatural(hand deck.Hand) bool {
	return len(hand) == 2 && Score(hand) >= 8
}
