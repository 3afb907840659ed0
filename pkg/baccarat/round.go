package baccarat

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"baccarat/pkg/deck"
)

// Dealer supplies cards to a round
// *deck.Deck satisfies this interface.
type Dealer interface {
	Draw() (*deck.Card, error)
}

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateStart is before any cards have been dealt
	RoundStateStart RoundState = "start"

	// RoundStateDealing means the round is in progress
	RoundStateDealing RoundState = "dealing"

	// RoundStateNatural means a side was dealt a natural and nobody drew
	RoundStateNatural RoundState = "natural"

	// RoundStateComplete means the third-card rules have been applied
	RoundStateComplete RoundState = "complete"
)

// Round is a single coup of baccarat
type Round struct {
	ID     string        `json:"id"`
	Player deck.Hand     `json:"player"`
	Banker deck.Hand     `json:"banker"`
	State  RoundState    `json:"state"`
	Log    []*LogMessage `json:"log"`

	logger logrus.FieldLogger
}

// NewRound returns a round that has not been dealt yet
func NewRound(logger logrus.FieldLogger) *Round {
	id := uuid.New().String()
	return &Round{
		ID:     id,
		Player: make(deck.Hand, 0, 3),
		Banker: make(deck.Hand, 0, 3),
		State:  RoundStateStart,
		logger: logger.WithField("round", id),
	}
}

// DealRound deals a complete round from d and returns it
func DealRound(logger logrus.FieldLogger, d Dealer) (*Round, error) {
	r := NewRound(logger)
	if err := r.Deal(d); err != nil {
		return nil, err
	}

	return r, nil
}

// Deal deals two cards each, alternating player and banker, then applies the third-card rules
func (r *Round) Deal(d Dealer) error {
	if r.State != RoundStateStart {
		return fmt.Errorf("cannot deal from state: %s", r.State)
	}

	r.State = RoundStateDealing
	for i := 1; i <= 2; i++ {
		if err := r.dealTo(d, SidePlayer, "Card %d dealt to Player", i); err != nil {
			return err
		}

		if err := r.dealTo(d, SideBanker, "Card %d dealt to Banker", i); err != nil {
			return err
		}
	}

	if hasNatural(r.Player, r.Banker) {
		r.addLogMessage(newLogMessage("", nil, nil, "Natural, no more cards are drawn"))
		r.State = RoundStateNatural
		r.logResult()
		return nil
	}

	if PlayerDraws(r.Player, r.Banker) {
		if err := r.dealTo(d, SidePlayer, "Third card dealt to Player"); err != nil {
			return err
		}
	} else {
		r.addLogMessage(newLogMessage(SidePlayer, nil, r.Player, "Player stands on %d", Score(r.Player)))
	}

	if BankerDraws(r.Player, r.Banker) {
		if err := r.dealTo(d, SideBanker, "Third card dealt to Banker"); err != nil {
			return err
		}
	} else {
		r.addLogMessage(newLogMessage(SideBanker, nil, r.Banker, "Banker stands on %d", Score(r.Banker)))
	}

	r.State = RoundStateComplete
	r.logResult()
	return nil
}

// Outcome returns the winning side
// It is only meaningful once the round has been dealt.
func (r *Round) Outcome() Side {
	return Resolve(r.Player, r.Banker)
}

// IsDealt returns true if no more cards will be dealt
func (r *Round) IsDealt() bool {
	return r.State == RoundStateNatural || r.State == RoundStateComplete
}

func (r *Round) dealTo(d Dealer, side Side, format string, a ...interface{}) error {
	card, err := d.Draw()
	if err != nil {
		return fmt.Errorf("could not deal to %s: %w", side, err)
	}

	hand := &r.Player
	if side == SideBanker {
		hand = &r.Banker
	}

	hand.AddCard(card)
	r.addLogMessage(newLogMessage(side, card, *hand, format, a...))
	return nil
}

func (r *Round) addLogMessage(msg *LogMessage) {
	r.Log = append(r.Log, msg)
	r.logger.WithField("side", msg.Side).Debug(msg.Message)
}

func (r *Round) logResult() {
	r.logger.WithFields(logrus.Fields{
		"player":      r.Player.String(),
		"banker":      r.Banker.String(),
		"playerScore": Score(r.Player),
		"bankerScore": Score(r.Banker),
		"outcome":     r.Outcome(),
	}).Debug("round dealt")
}
