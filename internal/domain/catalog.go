package domain

// Theme is opaque to the engine; the client decides what the palette means.
type Theme struct {
	Name           string `json:"name"`
	Background     string `json:"bg"`
	BoardBg        string `json:"boardBg"`
	CellBg         string `json:"cellBg"`
	Player1Counter string `json:"player1Counter"`
	Player2Counter string `json:"player2Counter"`
}

var CounterOptions = []string{
	// circles
	"🔴", "🟡", "🔵", "🟢", "🟣", "🟠",
	// shapes
	"🟥", "🟨", "⭐", "💎", "✨", "💠",
	// icons
	"🤖", "👑", "🚀", "🦊", "🐼", "🐙",
	// seasonal
	"🎃", "👻", "❄️", "☀️", "🍁", "🌸", "🎄", "🎅", "🎁", "🦌", "🐰", "🥚", "🐣", "🥕", "🌷", "🦋", "🐞", "🍂", "🍄", "🐿️",
}

var Themes = []Theme{
	{
		Name:           "Classic",
		Background:     "bg-gradient-to-br from-blue-500 to-blue-700",
		BoardBg:        "bg-blue-800/80 backdrop-blur-sm",
		CellBg:         "bg-blue-400",
		Player1Counter: "text-red-500",
		Player2Counter: "text-yellow-400",
	},
	{
		Name:           "Winter",
		Background:     "bg-gradient-to-b from-sky-300 via-slate-100 to-white",
		BoardBg:        "bg-sky-500/70 backdrop-blur-sm",
		CellBg:         "bg-sky-200",
		Player1Counter: "text-white",
		Player2Counter: "text-blue-200",
	},
	{
		Name:           "Spring",
		Background:     "bg-gradient-to-b from-sky-400 to-green-400",
		BoardBg:        "bg-green-400/70 backdrop-blur-sm",
		CellBg:         "bg-green-200",
		Player1Counter: "text-pink-500",
		Player2Counter: "text-purple-500",
	},
	{
		Name:           "Summer",
		Background:     "bg-gradient-to-b from-sky-400 via-yellow-200 to-orange-400",
		BoardBg:        "bg-yellow-400/70 backdrop-blur-sm",
		CellBg:         "bg-yellow-100",
		Player1Counter: "text-red-500",
		Player2Counter: "text-sky-500",
	},
	{
		Name:           "Autumn",
		Background:     "bg-gradient-to-br from-orange-400 via-red-500 to-yellow-500",
		BoardBg:        "bg-amber-800/80 backdrop-blur-sm",
		CellBg:         "bg-orange-300",
		Player1Counter: "text-red-700",
		Player2Counter: "text-yellow-500",
	},
	{
		Name:           "Halloween",
		Background:     "bg-gradient-to-b from-indigo-900 via-purple-900 to-orange-800",
		BoardBg:        "bg-gray-900/80 backdrop-blur-sm",
		CellBg:         "bg-gray-700",
		Player1Counter: "text-orange-500",
		Player2Counter: "text-purple-500",
	},
	{
		Name:           "Christmas",
		Background:     "bg-gradient-to-b from-gray-900 via-blue-900 to-slate-200",
		BoardBg:        "bg-green-950/70 backdrop-blur-sm",
		CellBg:         "bg-slate-300",
		Player1Counter: "text-red-500",
		Player2Counter: "text-green-400",
	},
	{
		Name:           "Easter",
		Background:     "bg-gradient-to-b from-sky-200 via-pink-200 to-green-200",
		BoardBg:        "bg-purple-400/70 backdrop-blur-sm",
		CellBg:         "bg-pink-200",
		Player1Counter: "text-yellow-400",
		Player2Counter: "text-sky-400",
	},
}

// ThemeByName returns the catalogue theme with that name.
func ThemeByName(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}
