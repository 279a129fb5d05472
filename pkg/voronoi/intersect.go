package voronoi

// clipper - состояние отсечения одной грани
type clipper struct {
	d         *Diagram
	box       Box
	processed map[*HalfEdge]bool

	face         *Face
	incoming     *HalfEdge // первое полуребро, входящее в прямоугольник
	incomingSide Side
	outgoing     *HalfEdge // выходящее полуребро, еще не соединенное со следующим входящим
	outgoingSide Side
	linked       bool
}

// Intersect отсекает диаграмму прямоугольником box. Грани целиком снаружи становятся пустыми.
// false - найдена топологическая несогласованность; диаграмма остается корректной DCEL,
// но часть граней может быть не отсечена.
// Повторный вызов с тем же прямоугольником ничего не меняет.
func (d *Diagram) Intersect(box Box) bool {
	if !box.Valid() {
		return false
	}
	success := true
	c := &clipper{d: d, box: box, processed: make(map[*HalfEdge]bool)}

	for i := range d.faces {
		face := &d.faces[i]
		if face.OuterComponent == nil {
			continue
		}
		halfEdges, closed := closedCycle(face)
		if !closed || face.clockwise() {
			success = false
			continue
		}

		inside := true
		for _, h := range halfEdges {
			if !box.Contains(h.Origin.Point) {
				inside = false
				break
			}
		}
		if inside {
			continue
		}

		// грань накрывает весь прямоугольник
		if face.containsAll(box.Corners()) {
			for _, h := range halfEdges {
				d.removeHalfEdge(h)
			}
			d.boxFace(face, box)
			continue
		}

		if !c.clipFace(face, halfEdges) {
			success = false
		}
	}

	d.compact()
	return success
}

// closedCycle - полуребра грани и признак того, что цикл замкнут и все концы известны
func closedCycle(face *Face) ([]*HalfEdge, bool) {
	halfEdges := face.HalfEdges()
	if len(halfEdges) == 0 || halfEdges[len(halfEdges)-1].Next != face.OuterComponent {
		return halfEdges, false
	}
	for _, h := range halfEdges {
		if h.Origin == nil || h.Destination == nil || h.Next.Prev != h {
			return halfEdges, false
		}
	}
	return halfEdges, true
}

func (f *Face) containsAll(pts []Point) bool {
	for _, p := range pts {
		if !f.Contains(p) {
			return false
		}
	}
	return true
}

func (c *clipper) clipFace(face *Face, halfEdges []*HalfEdge) bool {
	c.face = face
	c.incoming = nil
	c.outgoing = nil
	c.linked = false
	ok := true

	for _, h := range halfEdges {
		a := h.Origin.Point
		b := h.Destination.Point
		inA := c.box.Contains(a)
		inB := c.box.Contains(b)
		t0, t1, inSide, outSide, crosses := c.box.clipSegment(a, b)

		switch {
		case inA && inB:
			// ребро внутри

		case inA && !inB:
			// ребро выходит из прямоугольника
			if !crosses || t1 < 0 {
				t1, outSide = 0, c.box.sideOf(a)
			}
			if twin := h.Twin; twin != nil && c.processed[twin] {
				h.Destination = twin.Origin
			} else {
				h.Destination = c.d.createVertex(c.snap(lerp(a, b, t1), outSide))
			}
			c.outgoing = h
			c.outgoingSide = outSide
			c.processed[h] = true

		case !inA && inB:
			// ребро входит в прямоугольник
			if !crosses || t0 > 1 {
				t0, inSide = 1, c.box.sideOf(b)
			}
			if twin := h.Twin; twin != nil && c.processed[twin] {
				h.Origin = twin.Destination
			} else {
				h.Origin = c.d.createVertex(c.snap(lerp(a, b, t0), inSide))
			}
			c.enter(h, inSide)
			c.processed[h] = true

		default:
			// оба конца снаружи: ребро либо пересекает прямоугольник дважды, либо удаляется
			if !crosses || t1-t0 <= epsilon {
				c.d.removeHalfEdge(h)
				continue
			}
			if twin := h.Twin; twin != nil && c.processed[twin] {
				h.Origin = twin.Destination
				h.Destination = twin.Origin
			} else {
				h.Origin = c.d.createVertex(c.snap(lerp(a, b, t0), inSide))
				h.Destination = c.d.createVertex(c.snap(lerp(a, b, t1), outSide))
			}
			c.enter(h, inSide)
			c.outgoing = h
			c.outgoingSide = outSide
			c.processed[h] = true
		}
	}

	switch {
	case c.incoming != nil && c.outgoing != nil:
		c.link(c.outgoing, c.outgoingSide, c.incoming, c.incomingSide)
		face.OuterComponent = c.incoming
	case c.incoming != nil && c.linked:
		// последнее выходящее полуребро уже соединено с входящим
		face.OuterComponent = c.incoming
	case c.incoming == nil && c.outgoing == nil:
		// грань целиком снаружи
		face.OuterComponent = nil
		if c.box.strictlyContains(face.Site.Point) {
			ok = false
		}
	default:
		face.OuterComponent = nil
		ok = false
	}
	return ok
}

// enter - полуребро h входит в прямоугольник: соединяем его с предыдущим выходящим
func (c *clipper) enter(h *HalfEdge, side Side) {
	if c.outgoing != nil {
		c.link(c.outgoing, c.outgoingSide, h, side)
		c.outgoing = nil
		c.linked = true
	}
	if c.incoming == nil {
		c.incoming = h
		c.incomingSide = side
	}
}

// link соединяет выходящее полуребро start с входящим end вдоль границы прямоугольника
// против часовой стрелки, через углы
func (c *clipper) link(start *HalfEdge, startSide Side, end *HalfEdge, endSide Side) {
	halfEdge := start
	current := start.Destination
	side := startSide
	for side != endSide {
		side = side.next()
		corner := c.box.Corner(side)
		if corner.almostEqual(end.Origin.Point) {
			break
		}
		if corner.almostEqual(current.Point) {
			continue
		}
		halfEdge = c.boundaryHalfEdge(halfEdge, current, c.d.createVertex(corner))
		current = halfEdge.Destination
	}
	if current != end.Origin {
		halfEdge = c.boundaryHalfEdge(halfEdge, current, end.Origin)
	}
	setPrevHalfEdge(halfEdge, end)
}

func (c *clipper) boundaryHalfEdge(prev *HalfEdge, origin, destination *Vertex) *HalfEdge {
	h := c.d.createHalfEdge(c.face)
	h.Origin = origin
	h.Destination = destination
	setPrevHalfEdge(prev, h)
	return h
}

// snap кладет точку ровно на сторону прямоугольника
func (c *clipper) snap(p Point, side Side) Point {
	switch side {
	case SideLeft:
		p.X = c.box.Left
	case SideRight:
		p.X = c.box.Right
	case SideBottom:
		p.Y = c.box.Bottom
	case SideTop:
		p.Y = c.box.Top
	}
	return p
}

func lerp(a, b Point, t float64) Point {
	return a.Add(b.Sub(a).Scale(t))
}
