package voronoi

import (
	"fmt"
	"math"
)

const epsilon = 1e-9

// turnEpsilon - порог синуса угла между ребрами, ниже которого тройка точек считается коллинеарной
const turnEpsilon = 1e-10

// Point - точка (вектор) на плоскости
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Orthogonal поворачивает вектор на 90 градусов против часовой стрелки
func (p Point) Orthogonal() Point { return Point{-p.Y, p.X} }

func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Det - псевдоскалярное произведение
func (p Point) Det(q Point) float64 { return p.X*q.Y - p.Y*q.X }

func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

func (p Point) Distance(q Point) float64 { return p.Sub(q).Norm() }

func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.X, p.Y)
}

func (p Point) valid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) almostEqual(q Point) bool {
	return equalWithEpsilon(p.X, q.X) && equalWithEpsilon(p.Y, q.Y)
}

// Side - сторона прямоугольника. Порядок соответствует обходу против часовой стрелки:
// левая сторона сверху вниз, нижняя слева направо, правая снизу вверх, верхняя справа налево.
type Side int

const (
	SideLeft Side = iota
	SideBottom
	SideRight
	SideTop
)

func (s Side) next() Side { return (s + 1) % 4 }
func (s Side) prev() Side { return (s + 3) % 4 }

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideBottom:
		return "bottom"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	}
	return "unknown"
}

// Box - прямоугольник, ориентированный по осям
type Box struct {
	Left, Bottom, Right, Top float64
}

// Create new box
func NewBox(left, bottom, right, top float64) Box {
	return Box{left, bottom, right, top}
}

func (b Box) Width() float64  { return b.Right - b.Left }
func (b Box) Height() float64 { return b.Top - b.Bottom }
func (b Box) Area() float64   { return b.Width() * b.Height() }

// Valid - у прямоугольника ненулевая площадь и конечные границы
func (b Box) Valid() bool {
	for _, v := range []float64{b.Left, b.Bottom, b.Right, b.Top} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.Left < b.Right && b.Bottom < b.Top
}

// Contains проверяет точку с допуском epsilon (границы включаются)
func (b Box) Contains(p Point) bool {
	return p.X >= b.Left-epsilon && p.X <= b.Right+epsilon &&
		p.Y >= b.Bottom-epsilon && p.Y <= b.Top+epsilon
}

func (b Box) strictlyContains(p Point) bool {
	return p.X > b.Left && p.X < b.Right && p.Y > b.Bottom && p.Y < b.Top
}

func (b Box) ContainsBox(o Box) bool {
	return o.Left >= b.Left && o.Right <= b.Right && o.Bottom >= b.Bottom && o.Top <= b.Top
}

// Extend расширяет прямоугольник так, чтобы он содержал точку
func (b Box) Extend(p Point) Box {
	b.Left = math.Min(b.Left, p.X)
	b.Bottom = math.Min(b.Bottom, p.Y)
	b.Right = math.Max(b.Right, p.X)
	b.Top = math.Max(b.Top, p.Y)
	return b
}

// Corner - угол, с которого начинается сторона при обходе против часовой стрелки
func (b Box) Corner(side Side) Point {
	switch side {
	case SideLeft:
		return Point{b.Left, b.Top}
	case SideBottom:
		return Point{b.Left, b.Bottom}
	case SideRight:
		return Point{b.Right, b.Bottom}
	default:
		return Point{b.Right, b.Top}
	}
}

func (b Box) Corners() []Point {
	return []Point{b.Corner(SideLeft), b.Corner(SideBottom), b.Corner(SideRight), b.Corner(SideTop)}
}

func (b Box) String() string {
	return fmt.Sprintf("[%.4f, %.4f]x[%.4f, %.4f]", b.Left, b.Right, b.Bottom, b.Top)
}

// FirstIntersection - точка выхода луча из прямоугольника. Начало луча должно лежать внутри.
func (b Box) FirstIntersection(origin, direction Point) (Point, Side) {
	t := math.Inf(1)
	var side Side
	var point Point

	if direction.X > 0 {
		t = (b.Right - origin.X) / direction.X
		side = SideRight
		point = origin.Add(direction.Scale(t))
	} else if direction.X < 0 {
		t = (b.Left - origin.X) / direction.X
		side = SideLeft
		point = origin.Add(direction.Scale(t))
	}

	if direction.Y > 0 {
		if nt := (b.Top - origin.Y) / direction.Y; nt < t {
			side = SideTop
			point = origin.Add(direction.Scale(nt))
		}
	} else if direction.Y < 0 {
		if nt := (b.Bottom - origin.Y) / direction.Y; nt < t {
			side = SideBottom
			point = origin.Add(direction.Scale(nt))
		}
	}
	return point, side
}

// sideOf - сторона, на которой лежит точка границы
func (b Box) sideOf(p Point) Side {
	switch {
	case equalWithEpsilon(p.X, b.Left) && !equalWithEpsilon(p.Y, b.Bottom):
		return SideLeft
	case equalWithEpsilon(p.Y, b.Bottom) && !equalWithEpsilon(p.X, b.Right):
		return SideBottom
	case equalWithEpsilon(p.X, b.Right) && !equalWithEpsilon(p.Y, b.Top):
		return SideRight
	default:
		return SideTop
	}
}

// clipSegment - отсечение отрезка a-b прямоугольником (Лианг-Барски).
// t0/t1 - параметры входа и выхода, in/out - стороны, через которые отрезок входит и выходит.
func (b Box) clipSegment(a, c Point) (t0, t1 float64, in, out Side, ok bool) {
	t0, t1 = 0, 1
	d := c.Sub(a)

	planes := [4]struct {
		side Side
		p, q float64
	}{
		{SideLeft, -d.X, a.X - b.Left},
		{SideRight, d.X, b.Right - a.X},
		{SideBottom, -d.Y, a.Y - b.Bottom},
		{SideTop, d.Y, b.Top - a.Y},
	}

	for _, pl := range planes {
		if pl.p == 0 {
			// параллельно стороне
			if pl.q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := pl.q / pl.p
		if pl.p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			} else if r > t0 {
				t0 = r
				in = pl.side
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			} else if r < t1 {
				t1 = r
				out = pl.side
			}
		}
	}
	return t0, t1, in, out, true
}

func equalWithEpsilon(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// clockwiseTurn - поворот a-b-c по часовой стрелке вокруг b, с порогом относительно длин ребер
func clockwiseTurn(a, b, c Point) bool {
	ab := a.Sub(b)
	cb := c.Sub(b)
	return ab.Det(cb) > turnEpsilon*ab.Norm()*cb.Norm()
}

// circumcircle - центр окружности через три точки и её нижняя точка по y.
// ok == false для вырожденных троек (совпадающие или коллинеарные точки).
func circumcircle(a, b, c Point) (center Point, lowestY float64, ok bool) {
	ab := a.Sub(b)
	cb := c.Sub(b)
	d := 2 * ab.Det(cb)
	if math.Abs(d) <= 2*turnEpsilon*ab.Norm()*cb.Norm() {
		return Point{}, 0, false
	}
	ha := ab.Dot(ab)
	hc := cb.Dot(cb)
	x := (cb.Y*ha - ab.Y*hc) / d
	y := (ab.X*hc - cb.X*ha) / d
	center = Point{x + b.X, y + b.Y}
	return center, center.Y - math.Sqrt(x*x+y*y), true
}

// polygonArea - знаковая площадь (формула шнурков), положительна для обхода против часовой стрелки
func polygonArea(poly []Point) float64 {
	var area float64
	for i := range poly {
		j := (i + 1) % len(poly)
		area += poly[i].Det(poly[j])
	}
	return area / 2
}

// clockwisePolygon - обход по часовой стрелке. Площадь считается относительно первой вершины,
// порог масштабируется квадратом размера многоугольника.
func clockwisePolygon(poly []Point) bool {
	if len(poly) < 3 {
		return false
	}
	var area, size float64
	for i := 1; i < len(poly)-1; i++ {
		area += poly[i].Sub(poly[0]).Det(poly[i+1].Sub(poly[0]))
	}
	for _, p := range poly[1:] {
		size = math.Max(size, p.Distance(poly[0]))
	}
	return area/2 < -turnEpsilon*size*size
}

// polygonCentroid - центр масс многоугольника. ok == false для вырожденной площади.
func polygonCentroid(poly []Point) (Point, bool) {
	if len(poly) < 3 {
		return Point{}, false
	}
	var area, cx, cy float64
	for i := range poly {
		j := (i + 1) % len(poly)
		cross := poly[i].Det(poly[j])
		area += cross
		cx += (poly[i].X + poly[j].X) * cross
		cy += (poly[i].Y + poly[j].Y) * cross
	}
	area /= 2
	if math.Abs(area) < epsilon*epsilon {
		return Point{}, false
	}
	return Point{cx / (6 * area), cy / (6 * area)}, true
}
