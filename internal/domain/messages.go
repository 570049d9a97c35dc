package domain

// GameState is the snapshot pushed to the client after every change.
type GameState struct {
	GameID        string     `json:"gameId"`
	Phase         GamePhase  `json:"phase"`
	Board         [][]int    `json:"board"`
	CurrentPlayer PlayerID   `json:"currentPlayer"`
	Players       [2]Player  `json:"players"`
	Mode          GameMode   `json:"mode"`
	Difficulty    Difficulty `json:"difficulty"`
	Theme         Theme      `json:"theme"`
	Thinking      bool       `json:"thinking"`
	Outcome       Outcome    `json:"outcome"`
	MoveCount     int        `json:"moveCount"`
	LastRow       int        `json:"lastRow"`
	LastColumn    int        `json:"lastColumn"`
	Status        string     `json:"status"`
}

type ClientMessage struct {
	Type     string        `json:"type"`
	Token    string        `json:"token,omitempty"`
	Column   *int          `json:"column,omitempty"`
	Settings *GameSettings `json:"settings,omitempty"`
}

type ServerMessage struct {
	Type    string     `json:"type"`
	Message string     `json:"message,omitempty"`
	GameID  string     `json:"gameId,omitempty"`
	Token   string     `json:"token,omitempty"`
	State   *GameState `json:"state,omitempty"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
