package shell

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"baccarat/pkg/baccarat"
	"baccarat/pkg/deck"
)

func renderHand(title string, hand deck.Hand) string {
	cards := make([]string, len(hand))
	for i, card := range hand {
		cards[i] = card.String()
	}

	body := fmt.Sprintf("%s\nPoints: %d", strings.Join(cards, "  "), baccarat.Score(hand))
	if baccarat.IsNatural(hand) {
		body += "\n" + pterm.LightYellow("Natural Hand !!!")
	}

	// pterm panics on a box title wider than the content, so the title goes above the box
	return pterm.LightCyan(title) + "\n" + pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2).Sprint(body)
}

func renderSettlement(s *baccarat.Settlement) string {
	var b strings.Builder
	if s.Won {
		b.WriteString(pterm.Success.Sprintln("You Won!!! :)"))
		b.WriteString(pterm.Sprintfln("You bet %s on %s and won %s", s.Bet.Amount, s.Bet.Side, s.Delta))
	} else {
		b.WriteString(pterm.Sprintfln("You bet on %s but the result is %s.", s.Bet.Side, s.Outcome))
		b.WriteString(pterm.Error.Sprintln("You Lost :("))
		b.WriteString(pterm.Sprintfln("Your credit has reduced by %s", s.Bet.Amount))
	}

	b.WriteString(pterm.Sprintfln("Your current credit is: %s", pterm.LightCyan(s.Credit.String())))
	return b.String()
}
