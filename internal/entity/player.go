package entity

// Mark is the content of a single cell, and also identifies the player who placed it.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// Opponent returns the mark of the other player. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Symbol is what a cell looks like on screen.
func (that Mark) Symbol() string {
	if that == EmptyCell {
		return " "
	}
	return string(that)
}
