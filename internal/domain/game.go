package domain

// Game is one game instance: the board, whose turn it is and the outcome so far.
type Game struct {
	Board         Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
	LastRow       int
	LastColumn    int
}

func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: Player1,
		Status:        StatusActive,
		Winner:        Empty,
		MoveCount:     0,
		LastRow:       -1,
		LastColumn:    -1,
	}
}

// MakeMove drops a piece for the current player. It returns the settled row.
// Any error leaves the game untouched.
func (g *Game) MakeMove(column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameFinished
	}

	next, row, err := DropDisk(g.Board, column, g.CurrentPlayer)
	if err != nil {
		return -1, err
	}

	g.Board = next
	g.MoveCount++
	g.LastRow = row
	g.LastColumn = column

	if CheckWinAt(g.Board, row, column, g.CurrentPlayer) {
		g.Status = StatusWon
		g.Winner = g.CurrentPlayer
		return row, nil
	}

	if IsBoardFull(g.Board) {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = g.CurrentPlayer.Opponent()

	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}

func (g *Game) Outcome() Outcome {
	return Outcome{Winner: g.Winner, Draw: g.Status == StatusDraw}
}
