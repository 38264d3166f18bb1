package game

// UpdateCamera centres the camera on the player, clamped so the viewport
// never shows space outside the map. Maps smaller than the viewport pin the
// camera at 0.
func (s *State) UpdateCamera() {
	mapWidth, mapHeight := s.MapSize()
	s.Camera.X = clampAxis(s.Player.Pos.X-float64(s.Rules.ViewWidth)/2, mapWidth-float64(s.Rules.ViewWidth))
	s.Camera.Y = clampAxis(s.Player.Pos.Y-float64(s.Rules.ViewHeight)/2, mapHeight-float64(s.Rules.ViewHeight))
}

func clampAxis(v, limit float64) float64 {
	if v > limit {
		v = limit
	}
	if v < 0 {
		v = 0
	}
	return v
}
