package movement

import (
	"github.com/automoto/goldenfps/mathutil"
	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"outCubic":  ease.OutCubic,
	"inOutSine": ease.InOutSine,
}

// Easing returns the named curve, falling back to linear for unknown names.
func Easing(name string) ease.TweenFunc {
	if f, ok := easings[name]; ok {
		return f
	}
	return ease.Linear
}

// easeUnit evaluates a curve over [0,1].
func easeUnit(f ease.TweenFunc, t float32) float32 {
	return f(mathutil.Saturate(t), 0, 1, 1)
}
