package connectfour

// TurnResult - the outcome of a single Turn call.
type TurnResult string

const (
	Success TurnResult = "success"
	Invalid TurnResult = "invalid"
	Draw    TurnResult = "draw"
	Win     TurnResult = "win"
)

func (that TurnResult) String() string {
	return string(that)
}

// IsFinal - true when the match is over.
func (that TurnResult) IsFinal() bool {
	return that == Draw || that == Win
}
