// Package render draws a finished route as a chart-like raster image.
//
// The picture is a plain chart: white background, black edges
// between consecutive route nodes, filled red node markers and "Node <id>"
// labels. World coordinates are scaled to the canvas minus a margin, with y
// growing upwards. Drawing is done with github.com/fogleman/gg.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/katalvlaran/tourlab/tsp"
)

var (
	// ErrEmptyRoute is returned when there is nothing to draw.
	ErrEmptyRoute = errors.New("render: empty route")

	// ErrCanvasTooSmall is returned when the margins leave no drawing area or
	// a size option is negative.
	ErrCanvasTooSmall = errors.New("render: canvas too small")
)

var (
	edgeColor  = color.Black
	nodeColor  = color.RGBA{R: 255, A: 255}
	labelColor = color.Black
)

// Options controls the canvas and decorations.
type Options struct {
	Width, Height int     // canvas size in pixels
	Margin        float64 // blank border around the drawing area
	NodeRadius    float64
	LineWidth     float64
	Labels        bool // draw "Node <id>" above every node
	ShowCost      bool // draw the tour cost in the top-left corner
}

// DefaultOptions returns a 640×480 canvas with a 40px margin, labels and cost.
func DefaultOptions() Options {
	return Options{
		Width:      640,
		Height:     480,
		Margin:     40,
		NodeRadius: 5,
		LineWidth:  1.5,
		Labels:     true,
		ShowCost:   true,
	}
}

func (o Options) validate() error {
	if o.NodeRadius < 0 || o.LineWidth < 0 || o.Margin < 0 {
		return fmt.Errorf("%w: negative size option", ErrCanvasTooSmall)
	}
	if float64(o.Width) <= 2*o.Margin || float64(o.Height) <= 2*o.Margin {
		return fmt.Errorf("%w: %dx%d with margin %g", ErrCanvasTooSmall, o.Width, o.Height, o.Margin)
	}

	return nil
}

// viewport maps world coordinates onto the canvas.
type viewport struct {
	minX, minY     float64
	scaleX, scaleY float64
	margin         float64
	height         float64
}

// newViewport fits the bounding box of route into the drawing area. A zero
// extent on either axis is widened to 1 around the common coordinate so the
// nodes land in the middle instead of dividing by zero.
func newViewport(route tsp.Route, o Options) viewport {
	lo, hi := route.Bounds()
	minX, maxX := lo.X, hi.X
	minY, maxY := lo.Y, hi.Y
	if maxX == minX {
		minX, maxX = minX-0.5, maxX+0.5
	}
	if maxY == minY {
		minY, maxY = minY-0.5, maxY+0.5
	}

	return viewport{
		minX:   minX,
		minY:   minY,
		scaleX: (float64(o.Width) - 2*o.Margin) / (maxX - minX),
		scaleY: (float64(o.Height) - 2*o.Margin) / (maxY - minY),
		margin: o.Margin,
		height: float64(o.Height),
	}
}

func (v viewport) project(x, y float64) (float64, float64) {
	return v.margin + (x-v.minX)*v.scaleX, v.height - v.margin - (y-v.minY)*v.scaleY
}

// draw paints the route on a fresh context.
func draw(route tsp.Route, cost float64, o Options) (*gg.Context, error) {
	if len(route) == 0 {
		return nil, ErrEmptyRoute
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(o.Width, o.Height)
	dc.SetColor(color.White)
	dc.Clear()

	vp := newViewport(route, o)

	dc.SetColor(edgeColor)
	dc.SetLineWidth(o.LineWidth)
	for i := 0; i+1 < len(route); i++ {
		x1, y1 := vp.project(route[i].X, route[i].Y)
		x2, y2 := vp.project(route[i+1].X, route[i+1].Y)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	dc.SetColor(nodeColor)
	for _, nd := range route {
		x, y := vp.project(nd.X, nd.Y)
		dc.DrawCircle(x, y, o.NodeRadius)
		dc.Fill()
	}

	if o.Labels || o.ShowCost {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetColor(labelColor)
	}
	if o.Labels {
		// The closing node repeats the anchor; label it once.
		last := len(route)
		if last > 1 && route[0].ID == route[last-1].ID {
			last--
		}
		for _, nd := range route[:last] {
			x, y := vp.project(nd.X, nd.Y)
			dc.DrawStringAnchored(fmt.Sprintf("Node %d", nd.ID), x, y-o.NodeRadius-4, 0.5, 0)
		}
	}
	if o.ShowCost {
		dc.DrawString(fmt.Sprintf("cost %.3f", cost), 8, 16)
	}

	return dc, nil
}

// Draw renders route and returns the image.
func Draw(route tsp.Route, cost float64, o Options) (image.Image, error) {
	dc, err := draw(route, cost, o)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// EncodePNG renders route and writes it to w as PNG.
func EncodePNG(w io.Writer, route tsp.Route, cost float64, o Options) error {
	dc, err := draw(route, cost, o)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

// SavePNG renders route into the PNG file at path.
func SavePNG(path string, route tsp.Route, cost float64, o Options) error {
	dc, err := draw(route, cost, o)
	if err != nil {
		return err
	}
	if err = dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}
