package domain

import "strings"

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other player. Empty maps to Empty.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// to represent the game status after each applied move
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

type GamePhase string

const (
	PhaseSetup    GamePhase = "setup"
	PhasePlaying  GamePhase = "playing"
	PhaseGameOver GamePhase = "gameOver"
)

type GameMode string

const (
	ModePlayerVsPlayer  GameMode = "pvp"
	ModePlayerVsAdvisor GameMode = "pva"
)

// ParseGameMode accepts the lowercase wire values and the upper case
// spellings used by older clients ("PVP", "PVA").
func ParseGameMode(s string) (GameMode, bool) {
	switch GameMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModePlayerVsPlayer:
		return ModePlayerVsPlayer, true
	case ModePlayerVsAdvisor:
		return ModePlayerVsAdvisor, true
	}
	return "", false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyMedium:
		return DifficultyMedium, true
	case DifficultyHard:
		return DifficultyHard, true
	}
	return "", false
}

// UsesCriticalMoves reports whether the local win/block check runs before
// the advisory provider is asked.
func (d Difficulty) UsesCriticalMoves() bool {
	return d == DifficultyMedium || d == DifficultyHard
}

type Player struct {
	Name    string `json:"name"`
	Counter string `json:"counter"`
}

// Outcome is what the presentation layer sees: none, a winner, or a draw.
type Outcome struct {
	Winner PlayerID `json:"winner"`
	Draw   bool     `json:"draw"`
}

func (o Outcome) IsTerminal() bool {
	return o.Winner != Empty || o.Draw
}

// MoveRequest is everything an advisory move-provider gets to see for one turn.
type MoveRequest struct {
	Board       Board
	AIPiece     PlayerID
	AIPlayer    Player
	HumanPlayer Player
	Difficulty  Difficulty
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove   Error = "invalid move"
	ErrColumnFull    Error = "column is full"
	ErrGameFinished  Error = "game is already finished"
	ErrNotYourTurn   Error = "not your turn"
	ErrAIThinking    Error = "ai move in progress"
	ErrWrongPhase    Error = "action not allowed in current phase"
	ErrSessionClosed Error = "game session has ended, start a new one"
	ErrMissingColumn Error = "move is missing a column"
)
