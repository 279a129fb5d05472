package render

import (
	"io"
	"math"

	"github.com/0x0FACED/fortune-dcel/pkg/voronoi"
	svg "github.com/ajstarks/svgo"
)

const (
	faceStyle          = "fill:rgb(31,31,31);stroke:rgb(220,60,60);stroke-width:1;stroke-opacity:1.0"
	siteStyle          = "fill:rgb(100,250,50)"
	triangulationStyle = "stroke:rgb(70,130,180);stroke-width:1"
	backgroundStyle    = "fill:rgb(0,0,0)"
)

type SVGOptions struct {
	Width, Height int
	// область диаграммы, отображаемая на холст
	Box           voronoi.Box
	Triangulation bool
}

// WriteSVG рисует грани, сайты и, по желанию, триангуляцию. Ось y направлена вверх.
func WriteSVG(w io.Writer, d *voronoi.Diagram, opt SVGOptions) {
	toScreen := func(p voronoi.Point) (int, int) {
		x := (p.X - opt.Box.Left) / opt.Box.Width() * float64(opt.Width)
		y := (opt.Box.Top - p.Y) / opt.Box.Height() * float64(opt.Height)
		return int(math.Round(x)), int(math.Round(y))
	}

	canvas := svg.New(w)
	canvas.Start(opt.Width, opt.Height)
	canvas.Rect(0, 0, opt.Width, opt.Height, backgroundStyle)

	xs := make([]int, 0)
	ys := make([]int, 0)
	for _, face := range d.Faces() {
		xs, ys = xs[:0], ys[:0]
		for _, p := range face.Polygon() {
			x, y := toScreen(p)
			xs = append(xs, x)
			ys = append(ys, y)
		}
		if len(xs) < 3 {
			continue
		}
		canvas.Polygon(xs, ys, faceStyle)
	}

	if opt.Triangulation {
		points := d.Points()
		for _, e := range d.ComputeTriangulation().Edges() {
			x1, y1 := toScreen(points[e[0]])
			x2, y2 := toScreen(points[e[1]])
			canvas.Line(x1, y1, x2, y2, triangulationStyle)
		}
	}

	for _, site := range d.Sites() {
		x, y := toScreen(site.Point)
		canvas.Circle(x, y, 3, siteStyle)
	}
	canvas.End()
}
