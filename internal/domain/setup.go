package domain

import (
	"fmt"
	"strings"
)

// GameSettings is everything collected during setup.
type GameSettings struct {
	Players    [2]Player  `json:"players"`
	Mode       GameMode   `json:"mode"`
	Difficulty Difficulty `json:"difficulty"`
	Theme      Theme      `json:"theme"`
}

// SetupError is returned when a game cannot start with the given settings.
type SetupError struct {
	Field  string
	Reason string
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("invalid setup: %s %s", e.Field, e.Reason)
}

func DefaultSettings() GameSettings {
	return GameSettings{
		Players: [2]Player{
			{Name: "Player 1", Counter: "🔴"},
			{Name: "Player 2", Counter: "🟡"},
		},
		Mode:       ModePlayerVsPlayer,
		Difficulty: DifficultyMedium,
		Theme:      Themes[0],
	}
}

// Validate normalises the settings and checks the setup rules: both names
// non-empty, counters present and distinct, known mode and difficulty.
func (s GameSettings) Validate() (GameSettings, error) {
	out := s
	for i := range out.Players {
		out.Players[i].Name = strings.TrimSpace(out.Players[i].Name)
		out.Players[i].Counter = strings.TrimSpace(out.Players[i].Counter)

		if out.Players[i].Name == "" {
			return s, &SetupError{Field: fmt.Sprintf("player %d name", i+1), Reason: "must not be empty"}
		}
		if out.Players[i].Counter == "" {
			return s, &SetupError{Field: fmt.Sprintf("player %d counter", i+1), Reason: "must not be empty"}
		}
	}
	if out.Players[0].Counter == out.Players[1].Counter {
		return s, &SetupError{Field: "counters", Reason: "must be different for each player"}
	}

	mode, ok := ParseGameMode(string(out.Mode))
	if !ok {
		return s, &SetupError{Field: "mode", Reason: fmt.Sprintf("%q is not supported", out.Mode)}
	}
	out.Mode = mode

	if out.Difficulty == "" {
		out.Difficulty = DifficultyMedium
	}
	difficulty, ok := ParseDifficulty(string(out.Difficulty))
	if !ok {
		return s, &SetupError{Field: "difficulty", Reason: fmt.Sprintf("%q is not supported", out.Difficulty)}
	}
	out.Difficulty = difficulty

	// a bare name picks from the catalogue; a full custom palette is kept
	if out.Theme.Name == "" {
		out.Theme = Themes[0]
	} else if theme, ok := ThemeByName(out.Theme.Name); ok {
		out.Theme = theme
	} else if out.Theme.BoardBg == "" {
		return s, &SetupError{Field: "theme", Reason: fmt.Sprintf("%q is not in the catalogue", out.Theme.Name)}
	}

	return out, nil
}
