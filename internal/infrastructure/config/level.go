package config

// LevelConfig is the root config for level JSON files.
//
// Grid rows are strings of tile digits:
// 0 empty, 1 platform, 2 player spawn, 3 finish, 4 enemy spawn.
// Enemies are matched to '4' cells in row-major order. Each entry is either
// [width, height, vision] or
// [width, height, vision, responseMs, fireCooldownMs, inaccuracy, velX, velY].
type LevelConfig struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Grid    []string      `json:"grid"`
	Enemies [][]float64   `json:"enemies"`
	Labels  []LabelConfig `json:"labels"`
}

// LabelConfig places static text on the level
type LabelConfig struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size int     `json:"size"`
}
