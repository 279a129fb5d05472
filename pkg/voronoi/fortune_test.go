package voronoi_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/0x0FACED/fortune-dcel/pkg/logger"
	"github.com/0x0FACED/fortune-dcel/pkg/voronoi"
)

func randomPoints(n int, seed int64) []voronoi.Point {
	rnd := rand.New(rand.NewSource(seed))
	pts := make([]voronoi.Point, n)
	for i := range pts {
		pts[i] = voronoi.Point{X: rnd.Float64(), Y: rnd.Float64()}
	}
	return pts
}

func twinned(d *voronoi.Diagram) int {
	var n int
	for _, h := range d.HalfEdges() {
		if h.Twin != nil {
			n++
		}
	}
	return n
}

// DiagramSuite covers whole pipelines on small hand-checked inputs.
type DiagramSuite struct {
	suite.Suite
	opts voronoi.Options
	log  *logger.ZapLogger
}

func (s *DiagramSuite) SetupTest() {
	s.opts = voronoi.DefaultOptions()
	s.log = logger.NewNop()
}

// TestTwoSites: the bisector x = 0.5 splits the unit square in two.
func (s *DiagramSuite) TestTwoSites() {
	d, err := voronoi.CreateDiagram([]voronoi.Point{{X: 0.25, Y: 0.5}, {X: 0.75, Y: 0.5}}, s.opts, s.log)
	s.Require().NoError(err)
	s.Require().NoError(d.Validate())

	s.Equal(2, d.NbSites())
	for _, face := range d.Faces() {
		s.InDelta(0.5, face.Area(), 1e-9)
		s.True(face.Contains(face.Site.Point))
	}
	s.Equal(2, twinned(d), "one shared edge")
	s.Len(d.HalfEdges(), 8)
	s.Len(d.Vertices(), 6)

	for _, h := range d.HalfEdges() {
		if h.Twin == nil {
			continue
		}
		s.InDelta(0.5, h.Origin.Point.X, 1e-9)
		s.InDelta(0.5, h.Destination.Point.X, 1e-9)
	}
	s.Equal([][2]int{{0, 1}}, d.ComputeTriangulation().Edges())
}

// TestOneSite: the only face is the intersection box.
func (s *DiagramSuite) TestOneSite() {
	fortune := voronoi.NewFortune([]voronoi.Point{{X: 0.5, Y: 0.5}}, s.log)
	s.Require().NoError(fortune.Construct())
	s.Require().NoError(fortune.Bound(s.opts.BoundBox))

	d := fortune.Diagram()
	s.Require().True(d.Intersect(s.opts.ClipBox))
	s.Require().NoError(d.Validate())

	s.Len(d.Vertices(), 4)
	s.Len(d.HalfEdges(), 4)
	s.InDelta(1.0, d.Face(0).Area(), 1e-12)
	s.ElementsMatch(s.opts.ClipBox.Corners(), d.Face(0).Polygon())
	s.Empty(d.ComputeTriangulation().Edges())
}

// TestCollinearSites: three sites on a vertical line give two horizontal bisectors and no vertex.
func (s *DiagramSuite) TestCollinearSites() {
	pts := []voronoi.Point{{X: 0.5, Y: 0.2}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: 0.8}}

	fortune := voronoi.NewFortune(pts, s.log)
	s.Require().NoError(fortune.Construct())
	s.Empty(fortune.Diagram().Vertices(), "collinear sites have no circle events")
	s.Len(fortune.Diagram().HalfEdges(), 4)

	s.Require().NoError(fortune.Bound(s.opts.BoundBox))
	d := fortune.Diagram()
	s.Require().NoError(d.Validate())
	s.Require().True(d.Intersect(s.opts.ClipBox))
	s.Require().NoError(d.Validate())

	s.InDelta(0.35, d.Face(0).Area(), 1e-9)
	s.InDelta(0.30, d.Face(1).Area(), 1e-9)
	s.InDelta(0.35, d.Face(2).Area(), 1e-9)
	s.Equal(4, twinned(d))
	for _, h := range d.HalfEdges() {
		if h.Twin != nil {
			s.InDelta(h.Origin.Point.Y, h.Destination.Point.Y, 1e-12, "bisectors are horizontal")
		}
	}
	s.Equal([][2]int{{0, 1}, {1, 2}}, d.ComputeTriangulation().Edges())
}

// TestSquare: four cocircular sites meet in one point, Lloyd's relaxation keeps them in place.
func (s *DiagramSuite) TestSquare() {
	pts := []voronoi.Point{{X: 0.25, Y: 0.25}, {X: 0.75, Y: 0.25}, {X: 0.25, Y: 0.75}, {X: 0.75, Y: 0.75}}

	d, err := voronoi.CreateDiagram(pts, s.opts, s.log)
	s.Require().NoError(err)
	s.Require().NoError(d.Validate())
	for _, face := range d.Faces() {
		s.InDelta(0.25, face.Area(), 1e-9)
		s.True(face.Contains(face.Site.Point))
	}
	s.Len(d.Faces()[0].Neighbors(), 3, "the zero length edge still links opposite faces")

	relaxed := d.ComputeLloydRelaxation(voronoi.KeepEmpty)
	s.Require().Len(relaxed, 4)
	for i, p := range relaxed {
		s.InDelta(pts[i].X, p.X, 1e-9)
		s.InDelta(pts[i].Y, p.Y, 1e-9)
	}
}

// TestSameHeight: a row of sites on one horizontal line has only vertical edges.
func (s *DiagramSuite) TestSameHeight() {
	pts := []voronoi.Point{{X: 0.1, Y: 0.5}, {X: 0.3, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 0.9, Y: 0.5}}

	d, err := voronoi.CreateDiagram(pts, s.opts, s.log)
	s.Require().NoError(err)
	s.Require().NoError(d.Validate())

	s.InDelta(0.2, d.Face(0).Area(), 1e-9)
	s.InDelta(0.2, d.Face(1).Area(), 1e-9)
	s.InDelta(0.3, d.Face(2).Area(), 1e-9)
	s.InDelta(0.3, d.Face(3).Area(), 1e-9)
	s.Equal([][2]int{{0, 1}, {1, 2}, {2, 3}}, d.ComputeTriangulation().Edges())
}

// TestDuplicates: a repeated site is skipped and its face stays empty.
func (s *DiagramSuite) TestDuplicates() {
	pts := []voronoi.Point{{X: 0.3, Y: 0.3}, {X: 0.3, Y: 0.3}, {X: 0.7, Y: 0.6}}

	d, err := voronoi.CreateDiagram(pts, s.opts, s.log)
	s.Require().NoError(err)
	s.Require().NoError(d.Validate())

	s.False(d.Face(0).Empty())
	s.True(d.Face(1).Empty())
	s.False(d.Face(2).Empty())
	s.InDelta(1.0, d.Face(0).Area()+d.Face(2).Area(), 1e-9)

	s.Len(d.ComputeLloydRelaxation(voronoi.KeepEmpty), 3)
	s.Len(d.ComputeLloydRelaxation(voronoi.SkipEmpty), 2)
	s.Equal(pts[1], d.ComputeLloydRelaxation(voronoi.KeepEmpty)[1])
}

// TestIntersectIdempotent: clipping twice by the same box changes nothing.
func (s *DiagramSuite) TestIntersectIdempotent() {
	d, err := voronoi.CreateDiagram(randomPoints(30, 7), s.opts, s.log)
	s.Require().NoError(err)

	vertices := len(d.Vertices())
	halfEdges := len(d.HalfEdges())
	areas := make([]float64, d.NbSites())
	for i, face := range d.Faces() {
		areas[i] = face.Area()
	}

	s.Require().True(d.Intersect(s.opts.ClipBox))
	s.Require().NoError(d.Validate())
	s.Len(d.Vertices(), vertices)
	s.Len(d.HalfEdges(), halfEdges)
	for i, face := range d.Faces() {
		s.InDelta(areas[i], face.Area(), 1e-12)
	}
}

// TestSmallerIntersection: clipping by a box that leaves some faces outside empties them.
func (s *DiagramSuite) TestSmallerIntersection() {
	d, err := voronoi.CreateDiagram(randomPoints(40, 11), s.opts, s.log)
	s.Require().NoError(err)

	box := voronoi.NewBox(0.2, 0.3, 0.6, 0.7)
	s.Require().True(d.Intersect(box))
	s.Require().NoError(d.Validate())

	var total float64
	for _, face := range d.Faces() {
		for _, p := range face.Polygon() {
			s.True(box.Contains(p), "vertex %v is outside %v", p, box)
		}
		total += face.Area()
	}
	s.InDelta(box.Area(), total, 1e-9)
}

func (s *DiagramSuite) TestErrors() {
	_, err := voronoi.CreateDiagram(nil, s.opts, s.log)
	s.ErrorIs(err, voronoi.ErrNoSites)

	_, err = voronoi.CreateDiagram([]voronoi.Point{{X: math.NaN(), Y: 0.5}}, s.opts, s.log)
	s.ErrorIs(err, voronoi.ErrInvalidSite)

	// rejected before the sweep starts
	d, err := voronoi.CreateDiagram([]voronoi.Point{{X: 0.5, Y: 0.5}, {X: 1.2, Y: 0.5}}, s.opts, s.log)
	s.ErrorIs(err, voronoi.ErrBoxTooSmall)
	s.Nil(d)
	s.True(strings.HasPrefix(err.Error(), "site 1 "), err.Error())

	opts := s.opts
	opts.ClipBox = voronoi.NewBox(-1, 0, 1, 1)
	_, err = voronoi.CreateDiagram([]voronoi.Point{{X: 0.5, Y: 0.5}}, opts, s.log)
	s.ErrorIs(err, voronoi.ErrClipOutsideBound)

	opts = s.opts
	opts.BoundBox = voronoi.NewBox(1, 1, 0, 0)
	_, err = voronoi.CreateDiagram([]voronoi.Point{{X: 0.5, Y: 0.5}}, opts, s.log)
	s.ErrorIs(err, voronoi.ErrInvalidBox)

	fortune := voronoi.NewFortune([]voronoi.Point{{X: 0.5, Y: 0.5}}, nil)
	s.ErrorIs(fortune.Bound(s.opts.BoundBox), voronoi.ErrNotConstructed)
	s.Require().NoError(fortune.Construct())
	s.ErrorIs(fortune.Construct(), voronoi.ErrAlreadyConstructed)
	s.Require().NoError(fortune.Bound(s.opts.BoundBox))
	s.ErrorIs(fortune.Bound(s.opts.BoundBox), voronoi.ErrAlreadyConstructed)

	s.False(fortune.Diagram().Intersect(voronoi.NewBox(0, 0, 0, 1)))
}

func TestDiagramSuite(t *testing.T) {
	suite.Run(t, new(DiagramSuite))
}

func checkDiagram(t *testing.T, d *voronoi.Diagram, box voronoi.Box) {
	t.Helper()
	require.NoError(t, d.Validate())

	var total float64
	for _, face := range d.Faces() {
		require.False(t, face.Empty(), "face of site %d is empty", face.Site.Index)
		assert.True(t, face.Contains(face.Site.Point), "face %d does not contain its site", face.Site.Index)
		for _, p := range face.Polygon() {
			assert.True(t, box.Contains(p), "vertex %v is outside %v", p, box)
		}
		total += face.Area()
	}
	assert.InDelta(t, box.Area(), total, 1e-9)
}

func TestRandomDiagrams(t *testing.T) {
	opts := voronoi.DefaultOptions()
	for _, tc := range []struct {
		n    int
		seed int64
	}{
		{2, 1}, {3, 2}, {5, 3}, {10, 4}, {50, 5}, {200, 6}, {1000, 7},
	} {
		d, err := voronoi.CreateDiagram(randomPoints(tc.n, tc.seed), opts, nil)
		require.NoError(t, err)
		require.Equal(t, tc.n, d.NbSites())
		checkDiagram(t, d, opts.ClipBox)

		// every edge is shared by exactly two faces inside the box
		for _, h := range d.HalfEdges() {
			if h.Twin == nil {
				continue
			}
			assert.Same(t, h, h.Twin.Twin)
			assert.NotSame(t, h.IncidentFace, h.Twin.IncidentFace)
		}
	}
}

func TestBoundWithoutIntersect(t *testing.T) {
	box := voronoi.NewBox(-0.05, -0.05, 1.05, 1.05)
	fortune := voronoi.NewFortune(randomPoints(100, 9), nil)
	require.NoError(t, fortune.Construct())
	require.NoError(t, fortune.Bound(box))
	d := fortune.Diagram()
	require.NoError(t, d.Validate())

	// the box is extended to the vertices, its corners become vertices themselves
	extended := box
	for _, v := range d.Vertices() {
		extended = extended.Extend(v.Point)
	}

	var total float64
	for _, face := range d.Faces() {
		assert.True(t, face.Contains(face.Site.Point))
		total += face.Area()
	}
	assert.InDelta(t, extended.Area(), total, 1e-9)
}

func TestGridDiagram(t *testing.T) {
	var pts []voronoi.Point
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			pts = append(pts, voronoi.Point{X: 0.125 + 0.25*float64(j), Y: 0.125 + 0.25*float64(i)})
		}
	}
	opts := voronoi.DefaultOptions()
	d, err := voronoi.CreateDiagram(pts, opts, nil)
	require.NoError(t, err)
	checkDiagram(t, d, opts.ClipBox)

	for i, p := range d.ComputeLloydRelaxation(voronoi.KeepEmpty) {
		assert.InDelta(t, pts[i].X, p.X, 1e-9)
		assert.InDelta(t, pts[i].Y, p.Y, 1e-9)
	}
}

// one configuration shrunk around the centre of the box keeps its topology
func TestTightlySpacedSites(t *testing.T) {
	base := randomPoints(40, 11)
	opts := voronoi.DefaultOptions()
	center := voronoi.Point{X: 0.5, Y: 0.5}

	vertices := -1
	for _, scale := range []float64{1e-1, 1e-2, 1e-3, 1e-4, 1e-5, 1e-6, 1e-7} {
		pts := make([]voronoi.Point, len(base))
		for i, p := range base {
			pts[i] = center.Add(p.Sub(center).Scale(scale))
		}

		d, err := voronoi.CreateDiagram(pts, opts, nil)
		require.NoError(t, err, "scale %g", scale)
		checkDiagram(t, d, opts.ClipBox)
		if vertices < 0 {
			vertices = len(d.Vertices())
		}
		assert.Equal(t, vertices, len(d.Vertices()), "scale %g", scale)
	}
}

func TestClusteredSites(t *testing.T) {
	opts := voronoi.DefaultOptions()
	for seed := int64(0); seed < 5; seed++ {
		pts := randomPoints(300, seed)
		for i := range pts {
			pts[i] = voronoi.Point{X: 0.5 + pts[i].X*1e-4, Y: 0.5 + pts[i].Y*1e-4}
		}
		d, err := voronoi.CreateDiagram(pts, opts, nil)
		require.NoError(t, err, "seed %d", seed)
		checkDiagram(t, d, opts.ClipBox)
	}
}

func BenchmarkCreateDiagram(b *testing.B) {
	pts := randomPoints(10000, 1)
	opts := voronoi.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := voronoi.CreateDiagram(pts, opts, nil); err != nil {
			b.Fatal(err)
		}
	}
}
