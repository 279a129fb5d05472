package voronoi

// Site - входная точка диаграммы. Каждому сайту соответствует ровно одна грань.
type Site struct {
	Index int
	Point Point
	Face  *Face
}

// Face - ячейка диаграммы. OuterComponent == nil, если грань пуста
// (дубликат сайта или грань целиком вне прямоугольника отсечения).
type Face struct {
	Site           *Site
	OuterComponent *HalfEdge
}

// Vertex - вершина диаграммы
type Vertex struct {
	Point Point
}

// HalfEdge - полуребро. Грань лежит слева от полуребра, обход граней против часовой стрелки.
// У полуребер, лежащих на границе прямоугольника, Twin == nil.
type HalfEdge struct {
	Origin       *Vertex
	Destination  *Vertex
	Twin         *HalfEdge
	Prev         *HalfEdge
	Next         *HalfEdge
	IncidentFace *Face

	removed bool
}

// Diagram - DCEL диаграммы Вороного. Сайты и грани хранятся в срезах фиксированной длины,
// вершины и полуребра выделяются по одной и удерживаются срезами диаграммы.
type Diagram struct {
	sites     []Site
	faces     []Face
	vertices  []*Vertex
	halfEdges []*HalfEdge
}

func newDiagram(pts []Point) *Diagram {
	d := &Diagram{
		sites: make([]Site, len(pts)),
		faces: make([]Face, len(pts)),
	}
	for i, p := range pts {
		d.sites[i] = Site{Index: i, Point: p, Face: &d.faces[i]}
		d.faces[i] = Face{Site: &d.sites[i]}
	}
	return d
}

func (d *Diagram) NbSites() int { return len(d.sites) }

func (d *Diagram) Site(i int) *Site { return &d.sites[i] }

func (d *Diagram) Face(i int) *Face { return &d.faces[i] }

// Sites возвращает указатели на сайты в порядке индексов
func (d *Diagram) Sites() []*Site {
	ret := make([]*Site, len(d.sites))
	for i := range d.sites {
		ret[i] = &d.sites[i]
	}
	return ret
}

func (d *Diagram) Faces() []*Face {
	ret := make([]*Face, len(d.faces))
	for i := range d.faces {
		ret[i] = &d.faces[i]
	}
	return ret
}

func (d *Diagram) Vertices() []*Vertex { return d.vertices }

func (d *Diagram) HalfEdges() []*HalfEdge { return d.halfEdges }

// Points - координаты сайтов
func (d *Diagram) Points() []Point {
	ret := make([]Point, len(d.sites))
	for i, s := range d.sites {
		ret[i] = s.Point
	}
	return ret
}

func (d *Diagram) createVertex(p Point) *Vertex {
	v := &Vertex{Point: p}
	d.vertices = append(d.vertices, v)
	return v
}

func (d *Diagram) createCorner(box Box, side Side) *Vertex {
	return d.createVertex(box.Corner(side))
}

func (d *Diagram) createHalfEdge(face *Face) *HalfEdge {
	h := &HalfEdge{IncidentFace: face}
	d.halfEdges = append(d.halfEdges, h)
	if face.OuterComponent == nil {
		face.OuterComponent = h
	}
	return h
}

// removeHalfEdge помечает полуребро удаленным, срезы чистятся в compact
func (d *Diagram) removeHalfEdge(h *HalfEdge) {
	h.removed = true
}

// compact выбрасывает удаленные полуребра и вершины, на которые больше никто не ссылается
func (d *Diagram) compact() {
	halfEdges := d.halfEdges[:0]
	for _, h := range d.halfEdges {
		if h.removed {
			continue
		}
		halfEdges = append(halfEdges, h)
	}
	for i := len(halfEdges); i < len(d.halfEdges); i++ {
		d.halfEdges[i] = nil
	}
	d.halfEdges = halfEdges

	used := make(map[*Vertex]bool, len(d.vertices))
	for _, h := range d.halfEdges {
		if h.Twin != nil && h.Twin.removed {
			h.Twin = nil
		}
		used[h.Origin] = true
		used[h.Destination] = true
	}
	vertices := d.vertices[:0]
	for _, v := range d.vertices {
		if !used[v] {
			continue
		}
		vertices = append(vertices, v)
	}
	for i := len(vertices); i < len(d.vertices); i++ {
		d.vertices[i] = nil
	}
	d.vertices = vertices
}

// Empty - у грани нет границы
func (f *Face) Empty() bool { return f.OuterComponent == nil }

// HalfEdges - цикл полуребер грани начиная с OuterComponent
func (f *Face) HalfEdges() []*HalfEdge {
	if f.OuterComponent == nil {
		return nil
	}
	var ret []*HalfEdge
	h := f.OuterComponent
	for {
		ret = append(ret, h)
		h = h.Next
		if h == nil || h == f.OuterComponent {
			break
		}
	}
	return ret
}

// Polygon - вершины грани в порядке обхода (против часовой стрелки)
func (f *Face) Polygon() []Point {
	halfEdges := f.HalfEdges()
	ret := make([]Point, 0, len(halfEdges))
	for _, h := range halfEdges {
		if h.Origin == nil {
			continue
		}
		ret = append(ret, h.Origin.Point)
	}
	return ret
}

func (f *Face) Area() float64 {
	return polygonArea(f.Polygon())
}

func (f *Face) clockwise() bool {
	return clockwisePolygon(f.Polygon())
}

// Centroid - центр масс грани. ok == false для пустой или вырожденной грани.
func (f *Face) Centroid() (Point, bool) {
	return polygonCentroid(f.Polygon())
}

// Contains - точка внутри выпуклой грани (граница включается)
func (f *Face) Contains(p Point) bool {
	poly := f.Polygon()
	if len(poly) < 3 {
		return false
	}
	for i := range poly {
		j := (i + 1) % len(poly)
		if poly[j].Sub(poly[i]).Det(p.Sub(poly[i])) < -epsilon {
			return false
		}
	}
	return true
}

// Neighbors - индексы сайтов соседних граней
func (f *Face) Neighbors() []int {
	var ret []int
	for _, h := range f.HalfEdges() {
		if h.Twin == nil || h.Twin.IncidentFace == nil {
			continue
		}
		ret = append(ret, h.Twin.IncidentFace.Site.Index)
	}
	return ret
}
