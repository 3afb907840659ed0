package baccarat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"baccarat/pkg/deck"
)

// the standard banker tableau
// rows are the banker's score, columns the value of the player's third card (0-9)
var tableau = []string{
	"DDDDDDDDDD", // 0
	"DDDDDDDDDD", // 1
	"DDDDDDDDDD", // 2
	"DDDDDDDDSD", // 3
	"SSDDDDDDSS", // 4
	"SSSSDDDDSS", // 5
	"SSSSSSDDSS", // 6
	"SSSSSSSSSS", // 7
	"SSSSSSSSSS", // 8
	"SSSSSSSSSS", // 9
}

// cardWithValue returns a card whose point value is v
func cardWithValue(v int) string {
	switch v {
	case 0:
		return "13d"
	case 1:
		return "14d"
	}

	return fmt.Sprintf("%dd", v)
}

func TestBankerDrawsAgainst(t *testing.T) {
	a := assert.New(t)

	for bankerScore, row := range tableau {
		for playerThird, rule := range row {
			a.Equal(rule == 'D', bankerDrawsAgainst(bankerScore, playerThird), "banker %d, player third %d", bankerScore, playerThird)
		}
	}
}

func TestBankerDrawRules_table(t *testing.T) {
	a := assert.New(t)

	// only the conditional scores live in the table
	a.Len(bankerDrawRules, 4)
	for score := 3; score <= 6; score++ {
		a.Contains(bankerDrawRules, score)
	}
}

func TestPlayerDraws(t *testing.T) {
	a := assert.New(t)

	// 0-5 draws
	a.True(PlayerDraws(hand("10c,13d"), hand("2c,2d")))
	a.True(PlayerDraws(hand("2c,3d"), hand("2c,2d")))
	a.True(PlayerDraws(hand("14c,4d"), hand("10c,7d")))

	// 6-7 stands
	a.False(PlayerDraws(hand("3c,3d"), hand("2c,2d")))
	a.False(PlayerDraws(hand("5c,2d"), hand("2c,2d")))

	// naturals on either side stop the draw
	a.False(PlayerDraws(hand("14c,7d"), hand("2c,2d")))
	a.False(PlayerDraws(hand("2c,2d"), hand("13c,9d")))

	// only ever on the first two cards
	a.False(PlayerDraws(hand("2c,2d,2h"), hand("2s,3s")))
}

func TestBankerDraws_playerStood(t *testing.T) {
	a := assert.New(t)

	for bankerScore := 0; bankerScore <= 7; bankerScore++ {
		banker := hand(fmt.Sprintf("10c,%s", cardWithValue(bankerScore)))
		a.Equal(bankerScore <= 5, BankerDraws(hand("3c,3h"), banker), "banker %d", bankerScore)
		a.Equal(bankerScore <= 5, BankerDraws(hand("5c,2h"), banker), "banker %d", bankerScore)
	}

	// player natural, banker never draws
	a.False(BankerDraws(hand("14c,7h"), hand("2c,3d")))
	a.False(BankerDraws(hand("3c,3d"), hand("4c,4d")))
}

func TestBankerDraws_playerDrew(t *testing.T) {
	a := assert.New(t)

	for bankerScore, row := range tableau[:8] {
		for playerThird, rule := range row {
			player := hand("10c,5h," + cardWithValue(playerThird))
			banker := hand("10s," + cardWithValue(bankerScore))
			a.Equal(rule == 'D', BankerDraws(player, banker), "banker %d, player third %d", bankerScore, playerThird)
		}
	}

	// score 3 against an 8 is the only stand on a 3
	a.False(BankerDraws(hand("10c,5h,8s"), hand("10s,3d")))
	for _, third := range []string{"13s", "14s", "2s", "3s", "4s", "5s", "6s", "7s", "9s"} {
		a.True(BankerDraws(hand("10c,5h,"+third), hand("10s,3d")), "player third %s", third)
	}

	// 7 or better never draws
	for _, banker := range []string{"10s,7d", "2s,5d", "14s,6d"} {
		for v := 0; v <= 9; v++ {
			a.False(BankerDraws(hand("10c,5h,"+cardWithValue(v)), hand(banker)))
		}
	}
}

func TestBankerDraws_alreadyDrew(t *testing.T) {
	assert.False(t, BankerDraws(hand("10c,5h,2s"), hand("10s,2d,3c")))
	assert.False(t, BankerDraws(deck.Hand{}, hand("10s,2d")))
}
