package connectfour

import "github.com/rocketscienceinc/connectfour/internal/entity"

// Cell - either empty or occupied by a player. The zero value is an empty cell.
type Cell struct {
	player   entity.Player
	occupied bool
}

func Occupied(player entity.Player) Cell {
	return Cell{player: player, occupied: true}
}

func (that Cell) Player() (entity.Player, bool) {
	return that.player, that.occupied
}

func (that Cell) IsEmpty() bool {
	return !that.occupied
}

// Char - the occupant's symbol, or empty for an unoccupied cell.
func (that Cell) Char(empty rune) rune {
	if !that.occupied {
		return empty
	}

	return that.player.Symbol()
}
