package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"baccarat/internal/rng"
	"baccarat/pkg/baccarat"
	"baccarat/pkg/deck"
)

// ErrAborted is returned when the input ends before the round could be played
var ErrAborted = errors.New("round aborted")

// Options configures a Shell
type Options struct {
	// Credit is the balance the player starts with
	Credit decimal.Decimal
	// Pace is the pause between dealing steps
	Pace time.Duration
}

// Shell plays a round of baccarat over a text terminal
type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	deck   *deck.Deck
	rng    rng.Generator
	logger logrus.FieldLogger

	credit decimal.Decimal
	pace   time.Duration
}

// New returns a new Shell
func New(logger logrus.FieldLogger, in io.Reader, out io.Writer, d *deck.Deck, gen rng.Generator, opts Options) *Shell {
	return &Shell{
		in:     bufio.NewReader(in),
		out:    out,
		deck:   d,
		rng:    gen,
		logger: logger,
		credit: opts.Credit,
		pace:   opts.Pace,
	}
}

// Credit returns the current credit balance
func (s *Shell) Credit() decimal.Decimal {
	return s.credit
}

// cardsPerRound is the most cards a single round can take from the deck
const cardsPerRound = 6

// Run plays a single round: shuffle, take the bet, deal, and settle
func (s *Shell) Run(ctx context.Context) (*baccarat.Settlement, error) {
	if !s.deck.CanDraw(cardsPerRound) {
		s.logger.WithField("cardsLeft", s.deck.CardsLeft()).Debug("deck too short for a round, resetting")
		s.deck.Reset()
	}

	s.deck.Shuffle(s.rng)
	if err := s.confirmStart(ctx); err != nil {
		return nil, err
	}

	side, err := s.askSide(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := s.askAmount(ctx)
	if err != nil {
		return nil, err
	}

	bet := baccarat.Bet{Side: side, Amount: amount}
	s.logger.WithFields(logrus.Fields{
		"side":   bet.Side,
		"amount": bet.Amount.String(),
	}).Debug("bet placed")

	round, err := baccarat.DealRound(s.logger, s.deck)
	if err != nil {
		return nil, fmt.Errorf("could not deal round: %w", err)
	}

	if err := s.present(ctx, round); err != nil {
		return nil, err
	}

	settlement := baccarat.SettleBet(round.Outcome(), bet, s.credit)
	s.credit = settlement.Credit
	s.logger.WithFields(logrus.Fields{
		"round":     round.ID,
		"outcome":   settlement.Outcome,
		"won":       settlement.Won,
		"credit":    settlement.Credit.String(),
		"cardsLeft": s.deck.CardsLeft(),
	}).Debug("bet settled")

	s.print(pterm.Sprintfln("\n<*** Your Betting ***>"))
	s.print(renderSettlement(settlement))
	return settlement, nil
}

// confirmStart shows the deck's hash and reshuffles until the player agrees to start
func (s *Shell) confirmStart(ctx context.Context) error {
	for {
		answer, err := s.ask(ctx, fmt.Sprintf("\nThe game hash is %s. Do you wanna start the game? ", s.deck.HashCode()))
		if err != nil {
			return err
		}

		start, err := parseConfirmation(answer)
		if err != nil {
			s.print(pterm.Warning.Sprintln("Invalid input. Please select either yes or no."))
			continue
		}

		if start {
			return nil
		}

		s.print(pterm.Info.Sprintln("Reshuffling deck..."))
		s.deck.Shuffle(s.rng)
		if err := s.pause(ctx); err != nil {
			return err
		}
	}
}

func (s *Shell) askSide(ctx context.Context) (baccarat.Side, error) {
	for {
		answer, err := s.ask(ctx, "\nPlease choose to bet on 'Banker' or 'Player' or 'Tie': ")
		if err != nil {
			return "", err
		}

		side, err := baccarat.ParseSide(answer)
		if err != nil {
			s.print(pterm.Warning.Sprintln("Invalid input. Please select either 'Banker', 'Player' or 'Tie'."))
			continue
		}

		return side, nil
	}
}

func (s *Shell) askAmount(ctx context.Context) (decimal.Decimal, error) {
	for {
		answer, err := s.ask(ctx, "\nPlease choose your betting amount: ")
		if err != nil {
			return decimal.Zero, err
		}

		amount, err := parseAmount(answer, s.credit)
		if err != nil {
			s.print(pterm.Warning.Sprintfln("%s. Please input a valid value.", err))
			continue
		}

		return amount, nil
	}
}

// present replays the deal with a pause between every step
func (s *Shell) present(ctx context.Context, round *baccarat.Round) error {
	s.print(pterm.Sprintfln("\nDealing!!"))
	for _, msg := range round.Log {
		if err := s.pause(ctx); err != nil {
			return err
		}

		s.print(pterm.Info.Sprintln(msg.Message))
		if msg.Hand != nil {
			s.print(renderHand(fmt.Sprintf("%s's hand", msg.Side.Title()), msg.Hand))
			s.print("\n")
		}
	}

	if err := s.pause(ctx); err != nil {
		return err
	}

	s.print(renderHand("Player's final hand", round.Player))
	s.print("\n")
	s.print(renderHand("Banker's final hand", round.Banker))
	s.print("\n")

	switch outcome := round.Outcome(); outcome {
	case baccarat.SideTie:
		s.print(pterm.Sprintfln("\nThe result is a %s", pterm.LightGreen("tie")))
	default:
		s.print(pterm.Sprintfln("\n%s wins", pterm.LightGreen(outcome.Title())))
	}

	return nil
}

// ask prints the question and returns the next line of input
func (s *Shell) ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.print(question)
	str, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("could not read input: %w", err)
		}

		if str == "" {
			return "", ErrAborted
		}
	}

	return strings.TrimRight(str, "\r\n"), nil
}

func (s *Shell) pause(ctx context.Context) error {
	if s.pace <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(s.pace)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Shell) print(str string) {
	_, _ = fmt.Fprint(s.out, str)
}
