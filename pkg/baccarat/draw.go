package baccarat

import (
	"github.com/thoas/go-funk"

	"baccarat/pkg/deck"
)

// bankerDrawRules decides whether the banker draws after the player took a third card.
// Keyed by the banker's score, each rule receives the point value of the player's third card.
// Scores of 2 or less always draw and scores of 7 or more always stand, so they have no entry.
var bankerDrawRules = map[int]func(playerThird int) bool{
	3: func(playerThird int) bool {
		return playerThird != 8
	},
	4: func(playerThird int) bool {
		return !funk.ContainsInt([]int{0, 1, 8, 9}, playerThird)
	},
	5: func(playerThird int) bool {
		return !funk.ContainsInt([]int{0, 1, 2, 3, 8, 9}, playerThird)
	},
	6: func(playerThird int) bool {
		return funk.ContainsInt([]int{6, 7}, playerThird)
	},
}

// hasNatural returns true if either side was dealt a natural
func hasNatural(player, banker deck.Hand) bool {
	return IsNatural(player) || IsNatural(banker)
}

// PlayerDraws returns true if the player takes a third card
// Both hands must hold their first two cards.
func PlayerDraws(player, banker deck.Hand) bool {
	if len(player) != 2 || len(banker) != 2 {
		return false
	}

	if hasNatural(player, banker) {
		return false
	}

	return Score(player) <= 5
}

// BankerDraws returns true if the banker takes a third card
// It must be called after the player's draw has been resolved, because the rules
// depend on whether the player's hand holds two or three cards.
func BankerDraws(player, banker deck.Hand) bool {
	if len(banker) != 2 || IsNatural(banker) {
		return false
	}

	switch len(player) {
	case 2:
		if IsNatural(player) {
			return false
		}

		return Score(banker) <= 5
	case 3:
		return bankerDrawsAgainst(Score(banker), PointValue(player.LastCard()))
	}

	return false
}

func bankerDrawsAgainst(bankerScore, playerThird int) bool {
	switch {
	case bankerScore <= 2:
		return true
	case bankerScore >= 7:
		return false
	}

	return bankerDrawRules[bankerScore](playerThird)
}
