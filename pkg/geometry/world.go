package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// World is an insertion-ordered list of surfaces tested by linear scan.
// It is built before rendering and only read afterwards, so it is safe to
// share between render workers.
type World struct {
	objects []Hittable
}

// NewWorld creates a world containing the given objects
func NewWorld(objects ...Hittable) *World {
	return &World{objects: append([]Hittable(nil), objects...)}
}

// Add appends an object to the world
func (w *World) Add(object Hittable) {
	w.objects = append(w.objects, object)
}

// Len returns the number of objects in the world
func (w *World) Len() int {
	return len(w.objects)
}

// Objects returns the world's objects in insertion order
func (w *World) Objects() []Hittable {
	return w.objects
}

// Hit returns the closest intersection among all objects
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	// Shrinking the upper bound makes later objects compete with the current closest hit
	for _, object := range w.objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
