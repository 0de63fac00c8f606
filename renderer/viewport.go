package renderer

// viewport maps world coordinates onto the screen.
type viewport struct {
	worldW, worldH float64
	scaleX, scaleY float32
}

func newViewport(screenW, screenH int32, worldW, worldH float64) viewport {
	v := viewport{worldW: worldW, worldH: worldH}
	v.resize(screenW, screenH)
	return v
}

func (v *viewport) resize(screenW, screenH int32) {
	v.scaleX, v.scaleY = 1, 1
	if v.worldW > 0 && v.worldH > 0 && screenW > 0 && screenH > 0 {
		v.scaleX = float32(float64(screenW) / v.worldW)
		v.scaleY = float32(float64(screenH) / v.worldH)
	}
}
