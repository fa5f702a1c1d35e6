package geometry

import (
	"github.com/df07/go-montecarlo-raytracer/pkg/core"
)

// List is an insertion-ordered aggregate of shapes queried by linear scan
type List struct {
	Shapes []core.Shape
}

// NewList creates a list containing the given shapes
func NewList(shapes ...core.Shape) *List {
	return &List{Shapes: shapes}
}

// Add appends a shape to the list
func (l *List) Add(shape core.Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Len returns the number of shapes in the list
func (l *List) Len() int {
	return len(l.Shapes)
}

// Hit returns the nearest intersection among all shapes within (tMin, tMax).
// Each shape is tested against the closest hit found so far, so only strictly
// closer hits replace the current best.
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
