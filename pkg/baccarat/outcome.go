package baccarat

import (
	"fmt"
	"strings"

	"baccarat/pkg/deck"
)

// Side is one of the two hands at the table, or a tie between them.
// It doubles as the outcome of a round and the choice a bet is placed on.
type Side string

// Side constants
const (
	SidePlayer Side = "player"
	SideBanker Side = "banker"
	SideTie    Side = "tie"
)

// Title returns the side as it's displayed to the user
func (s Side) Title() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideBanker:
		return "Banker"
	case SideTie:
		return "Tie"
	}

	return string(s)
}

// ParseSide returns the side named by s, ignoring case and surrounding whitespace
func ParseSide(s string) (Side, error) {
	switch side := Side(strings.ToLower(strings.TrimSpace(s))); side {
	case SidePlayer, SideBanker, SideTie:
		return side, nil
	}

	return "", fmt.Errorf("invalid side: %q", s)
}

// Resolve compares the final hands and returns the winning side, or SideTie
func Resolve(player, banker deck.Hand) Side {
	playerScore, bankerScore := Score(player), Score(banker)
	switch {
	case playerScore > bankerScore:
		return SidePlayer
	case bankerScore > playerScore:
		return SideBanker
	}

	return SideTie
}
