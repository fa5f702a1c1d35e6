package renderer

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width          int           // Image width
	Height         int           // Image height
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	Tiles          int           // Number of tiles completed
	Workers        int           // Number of workers used
	Duration       time.Duration // Wall clock render time
}

// SamplesPerSecond returns the camera ray throughput
func (rs RenderStats) SamplesPerSecond() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(rs.TotalSamples) / rs.Duration.Seconds()
}

// Table renders the statistics as a text table
func (rs RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Statistic", "Value"})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", rs.Width, rs.Height)})
	table.Append([]string{"Pixels", fmt.Sprintf("%d", rs.TotalPixels)})
	table.Append([]string{"Samples", fmt.Sprintf("%d", rs.TotalSamples)})
	table.Append([]string{"Samples/pixel", fmt.Sprintf("%.1f", rs.AverageSamples)})
	table.Append([]string{"Tiles", fmt.Sprintf("%d", rs.Tiles)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", rs.Workers)})
	table.SetFooter([]string{"Render time", rs.Duration.Round(time.Millisecond).String()})
	table.Render()
	return buf.String()
}

// PixelStats accumulates the samples taken for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// ToRGBA gamma corrects a linear color with gamma 2 and scales it to 8 bits
func ToRGBA(linear core.Vec3) color.RGBA {
	c := linear.Clamp(0, 1).Sqrt().Multiply(255.99)
	return color.RGBA{
		R: uint8(c.X),
		G: uint8(c.Y),
		B: uint8(c.Z),
		A: 255,
	}
}
