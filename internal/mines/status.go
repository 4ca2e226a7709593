package mines

type GameStatus uint8

const (
	NotStarted GameStatus = iota
	InProgress
	Victory
	Defeat
)

func (s GameStatus) String() string {
	switch s {
	case NotStarted:
		return "NOT_STARTED"
	case InProgress:
		return "IN_PROGRESS"
	case Victory:
		return "VICTORY"
	case Defeat:
		return "DEFEAT"
	default:
		return "UNKNOWN"
	}
}

// Over reports whether s is terminal.
func (s GameStatus) Over() bool {
	return s == Victory || s == Defeat
}
