package baccarat

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"baccarat/pkg/deck"
)

// LogMessage records a single step of the deal
// Hand is a snapshot of the side's hand at that step.
type LogMessage struct {
	UUID    string     `json:"uuid"`
	Side    Side       `json:"side,omitempty"`
	Card    *deck.Card `json:"card,omitempty"`
	Hand    deck.Hand  `json:"hand,omitempty"`
	Message string     `json:"message"`
	Time    time.Time  `json:"time"`
}

func newLogMessage(side Side, card *deck.Card, hand deck.Hand, format string, a ...interface{}) *LogMessage {
	var snapshot deck.Hand
	if hand != nil {
		snapshot = hand.Clone()
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Side:    side,
		Card:    card,
		Hand:    snapshot,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}
