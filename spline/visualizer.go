package spline

import (
	"github.com/oomph-ac/vrloco/game"
	"github.com/oomph-ac/vrloco/teleport"
)

// Visualizer turns the predicted teleport path into the spline drawn for the user. The spline
// lives in the local space of the anchor it is attached to.
type Visualizer struct {
	spline *Spline
}

// NewVisualizer returns a visualizer with an empty spline.
func NewVisualizer() *Visualizer {
	return &Visualizer{spline: New()}
}

// Update rebuilds the spline from the world-space path, converting every sample into the local
// space of frame. An empty path leaves the spline empty. The path is not retained.
func (v *Visualizer) Update(path teleport.PredictedPath, frame game.Transform) {
	v.spline.Clear()
	for _, p := range path {
		v.spline.AddPoint(frame.InverseTransformPosition(p))
	}
}

// Clear empties the spline.
func (v *Visualizer) Clear() {
	v.spline.Clear()
}

// Spline returns the spline maintained by the visualizer.
func (v *Visualizer) Spline() *Spline {
	return v.spline
}
