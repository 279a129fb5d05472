package voronoi

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/pkg/errors"
)

const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
	rtreeTolerance   = 1e-12
)

type faceEntry struct {
	face *Face
	rect rtreego.Rect
}

func (e *faceEntry) Bounds() rtreego.Rect { return e.rect }

type siteEntry struct {
	site *Site
	rect rtreego.Rect
}

func (e *siteEntry) Bounds() rtreego.Rect { return e.rect }

// Locator ищет грань по точке: R-дерево по ограничивающим прямоугольникам граней
// и R-дерево по сайтам для поиска ближайшего
type Locator struct {
	faces *rtreego.Rtree
	sites *rtreego.Rtree
}

func NewLocator(d *Diagram) (*Locator, error) {
	l := &Locator{
		faces: rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren),
		sites: rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren),
	}

	for _, face := range d.Faces() {
		poly := face.Polygon()
		if len(poly) < 3 {
			continue
		}
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, p := range poly {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
		rect, err := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{
			math.Max(maxX-minX, rtreeTolerance),
			math.Max(maxY-minY, rtreeTolerance),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "face %d bounds", face.Site.Index)
		}
		l.faces.Insert(&faceEntry{face: face, rect: rect})

		site := face.Site
		rect, err = pointRect(site.Point)
		if err != nil {
			return nil, errors.Wrapf(err, "site %d", site.Index)
		}
		l.sites.Insert(&siteEntry{site: site, rect: rect})
	}
	return l, nil
}

func pointRect(p Point) (rtreego.Rect, error) {
	return rtreego.NewRect(rtreego.Point{p.X, p.Y}, []float64{rtreeTolerance, rtreeTolerance})
}

// FaceAt - грань, содержащая точку, или nil
func (l *Locator) FaceAt(p Point) *Face {
	rect, err := pointRect(p)
	if err != nil {
		return nil
	}
	for _, obj := range l.faces.SearchIntersect(rect) {
		face := obj.(*faceEntry).face
		if face.Contains(p) {
			return face
		}
	}
	return nil
}

// NearestSite - ближайший сайт с непустой гранью. Внутри прямоугольника отсечения
// его грань совпадает с FaceAt.
func (l *Locator) NearestSite(p Point) *Site {
	if l.sites.Size() == 0 {
		return nil
	}
	obj := l.sites.NearestNeighbor(rtreego.Point{p.X, p.Y})
	if obj == nil {
		return nil
	}
	return obj.(*siteEntry).site
}
