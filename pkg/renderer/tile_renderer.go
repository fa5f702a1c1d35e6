package renderer

import (
	"image"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
	"github.com/df07/go-montecarlo-raytracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera     core.Camera
	world      core.Shape
	integrator integrator.Integrator
	width      int
	height     int
}

// NewTileRenderer creates a new tile renderer for an image of the given size
func NewTileRenderer(camera core.Camera, world core.Shape, integratorInst integrator.Integrator, width, height int) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		world:      world,
		integrator: integratorInst,
		width:      width,
		height:     height,
	}
}

// RenderTileBounds takes samplesPerPixel samples for every pixel within bounds.
// Image rows grow downwards while the camera's t coordinate grows upwards.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler, samplesPerPixel int) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		j := tr.height - 1 - y
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := &pixelStats[y][x]
			for sample := 0; sample < samplesPerPixel; sample++ {
				du, dv := sampler.Get2D()
				s := (float64(x) + du) / float64(tr.width)
				t := (float64(j) + dv) / float64(tr.height)

				ray := tr.camera.GetRay(s, t, sampler)
				ps.AddSample(tr.integrator.RayColor(ray, tr.world, sampler))
			}
			stats.TotalSamples += samplesPerPixel
		}
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}
	return stats
}
