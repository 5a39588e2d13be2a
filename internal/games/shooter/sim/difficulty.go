package sim

// LevelForScore returns 1 + floor(score/perLevel).
func LevelForScore(score, perLevel int) int {
	if perLevel <= 0 || score < 0 {
		return 1
	}
	return 1 + score/perLevel
}

// UpdateDifficulty raises Level to match the score. It never lowers it.
func (w *World) UpdateDifficulty(perLevel int) bool {
	lvl := LevelForScore(w.Score, perLevel)
	if lvl > w.Level {
		w.Level = lvl
		return true
	}
	return false
}
