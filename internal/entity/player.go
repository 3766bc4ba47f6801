package entity

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

// Player - an immutable participant identity: display name and the symbol drawn on the board.
type Player struct {
	name   string
	symbol rune
}

func NewPlayer(name string, symbol rune) (Player, error) {
	if strings.TrimSpace(name) == "" {
		return Player{}, fmt.Errorf("%w: name is empty", apperror.ErrInvalidPlayer)
	}

	if symbol == 0 || unicode.IsSpace(symbol) || !unicode.IsPrint(symbol) {
		return Player{}, fmt.Errorf("%w: symbol %q is not printable", apperror.ErrInvalidPlayer, symbol)
	}

	return Player{name: name, symbol: symbol}, nil
}

// MustNewPlayer - like NewPlayer but panics on invalid input.
func MustNewPlayer(name string, symbol rune) Player {
	player, err := NewPlayer(name, symbol)
	if err != nil {
		panic(err)
	}

	return player
}

func (that Player) Name() string {
	return that.name
}

func (that Player) Symbol() rune {
	return that.symbol
}

// SameAs - players are compared by symbol on the board.
func (that Player) SameAs(other Player) bool {
	return that.symbol == other.symbol
}

func (that Player) String() string {
	return that.name
}
