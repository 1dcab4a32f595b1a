// Package lighting describes the scene light and the shading helpers shared by
// the renderer and the offline relief export.
package lighting

// Light is a single point light. W of Position is 1 for a point light and 0
// for a directional one.
type Light struct {
	Position  [4]float32
	Color     [4]float32
	Intensity float32
}
