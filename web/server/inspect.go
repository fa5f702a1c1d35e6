package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
	"github.com/df07/go-montecarlo-raytracer/pkg/geometry"
	"github.com/df07/go-montecarlo-raytracer/pkg/integrator"
	"github.com/df07/go-montecarlo-raytracer/pkg/material"
	"github.com/df07/go-montecarlo-raytracer/pkg/scene"
)

// InspectResponse describes the first surface seen through a pixel
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Center       [3]float64             `json:"center"`
	Radius       float64                `json:"radius"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// extractMaterialInfo returns the material name and its parameters
func extractMaterialInfo(mat core.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		return "lambertian", properties
	case *material.Metal:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzz"] = m.Fuzz
		return "metal", properties
	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		return "dielectric", properties
	default:
		return "unknown", properties
	}
}

// inspectPixel casts a ray through the center of pixel (x, y), row 0 at the top
func inspectPixel(sc *scene.Scene, width, height, x, y int) (*core.HitRecord, *geometry.Sphere) {
	s := (float64(x) + 0.5) / float64(width)
	t := (float64(height-1-y) + 0.5) / float64(height)

	// A fixed stream keeps the lens sample identical between requests
	ray := sc.Camera.GetRay(s, t, core.NewSeededSampler(0))

	hit, ok := sc.World.Hit(ray, integrator.ShadowAcneEpsilon, math.Inf(1))
	if !ok {
		return nil, nil
	}

	// The list does not report which shape it hit
	for _, shape := range sc.World.Shapes {
		sphere, isSphere := shape.(*geometry.Sphere)
		if !isSphere {
			continue
		}
		if shapeHit, shapeOk := sphere.Hit(ray, integrator.ShadowAcneEpsilon, math.Inf(1)); shapeOk && shapeHit.T == hit.T {
			return hit, sphere
		}
	}
	return hit, nil
}

// handleInspect reports what is visible at a pixel of the requested scene
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	x, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid x coordinate"))
		return
	}
	y, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid y coordinate"))
		return
	}
	if x < 0 || x >= req.Width || y < 0 || y >= req.Height {
		writeError(w, http.StatusBadRequest, errors.New("pixel coordinates out of bounds"))
		return
	}

	sc, err := s.loadScene(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	hit, sphere := inspectPixel(sc, req.Width, req.Height, x, y)
	if hit == nil {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, properties := extractMaterialInfo(hit.Material)
	response := InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		Point:        vecArray(hit.Point),
		Normal:       vecArray(hit.Normal),
		Distance:     hit.T,
		Properties:   properties,
	}
	if sphere != nil {
		response.Center = vecArray(sphere.Center)
		response.Radius = sphere.Radius
	}
	writeJSON(w, http.StatusOK, response)
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}
