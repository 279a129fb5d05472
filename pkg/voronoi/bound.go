package voronoi

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// linkedVertex - вершина на границе прямоугольника и полуребра грани,
// которые в неё входят (prevHalfEdge) и из неё выходят (nextHalfEdge)
type linkedVertex struct {
	prevHalfEdge *HalfEdge
	vertex       *Vertex
	nextHalfEdge *HalfEdge
}

// boundarySlots - для каждой стороны: [2*side] - где граница грани приходит на сторону,
// [2*side+1] - где уходит с неё
type boundarySlots [8]*linkedVertex

// Bound замыкает неограниченные грани прямоугольником box.
// box должен строго содержать все сайты; он дополнительно расширяется до всех вершин диаграммы.
func (f *Fortune) Bound(box Box) error {
	if !f.constructed {
		return ErrNotConstructed
	}
	if f.bounded {
		return errors.Wrap(ErrAlreadyConstructed, "diagram is already bounded")
	}
	if !box.Valid() {
		return errors.Wrapf(ErrInvalidBox, "bounding box %v", box)
	}
	for i := range f.diagram.sites {
		if p := f.diagram.sites[i].Point; !box.strictlyContains(p) {
			return errors.Wrapf(ErrBoxTooSmall, "site %d %v is outside %v", i, p, box)
		}
	}
	f.bounded = true

	original := box
	for _, v := range f.diagram.vertices {
		box = box.Extend(v.Point)
	}
	if box != original {
		f.Logger.Debug("[f-bound] Прямоугольник расширен до вершин", zap.Stringer("box", box))
	}

	f.Logger.Info("[f-bound] Замыкаем грани", zap.Stringer("box", box), zap.Int("arcs", f.beachline.len()))

	// осталась одна дуга: все сайты совпадают, грань - весь прямоугольник
	if f.beachline.len() == 1 {
		f.diagram.boxFace(f.beachline.leftmost().site.Face, box)
		return nil
	}

	slots := make([]*boundarySlots, f.diagram.NbSites())
	slotsOf := func(site *Site) *boundarySlots {
		if slots[site.Index] == nil {
			slots[site.Index] = &boundarySlots{}
		}
		return slots[site.Index]
	}

	// лучи оставшихся точек излома
	for left := f.beachline.leftmost(); left != nil && left.next() != nil; left = left.next() {
		right := left.next()

		direction := left.site.Point.Sub(right.site.Point).Orthogonal()
		origin := left.site.Point.Add(right.site.Point).Scale(0.5)
		point, side := box.FirstIntersection(origin, direction)

		vertex := f.diagram.createVertex(point)
		setDestination(left, right, vertex)

		slotsOf(left.site)[2*side+1] = &linkedVertex{vertex: vertex, nextHalfEdge: left.rightHalfEdge}
		slotsOf(right.site)[2*side] = &linkedVertex{prevHalfEdge: right.leftHalfEdge, vertex: vertex}
	}

	// углы
	for _, cell := range slots {
		if cell == nil {
			continue
		}
		// первую сторону проходим дважды, чтобы добавить все нужные углы
		for i := 0; i < 5; i++ {
			side := Side(i % 4)
			nextSide := side.next()
			if cell[2*side] == nil && cell[2*side+1] != nil {
				corner := &linkedVertex{vertex: f.diagram.createCorner(box, side)}
				cell[2*side.prev()+1] = corner
				cell[2*side] = corner
			} else if cell[2*side] != nil && cell[2*side+1] == nil {
				corner := &linkedVertex{vertex: f.diagram.createCorner(box, nextSide)}
				cell[2*side+1] = corner
				cell[2*nextSide] = corner
			}
		}
	}

	// полуребра вдоль границы
	for i, cell := range slots {
		if cell == nil {
			continue
		}
		face := f.diagram.Face(i)
		for side := SideLeft; side <= SideTop; side++ {
			from := cell[2*side]
			to := cell[2*side+1]
			if from == nil {
				continue
			}
			halfEdge := f.diagram.createHalfEdge(face)
			halfEdge.Origin = from.vertex
			halfEdge.Destination = to.vertex

			from.nextHalfEdge = halfEdge
			halfEdge.Prev = from.prevHalfEdge
			if from.prevHalfEdge != nil {
				from.prevHalfEdge.Next = halfEdge
			}
			to.prevHalfEdge = halfEdge
			halfEdge.Next = to.nextHalfEdge
			if to.nextHalfEdge != nil {
				to.nextHalfEdge.Prev = halfEdge
			}
		}
	}
	return nil
}

// boxFace делает границей грани весь прямоугольник
func (d *Diagram) boxFace(face *Face, box Box) {
	face.OuterComponent = nil
	var first, prev *HalfEdge
	corners := make([]*Vertex, 4)
	for side := SideLeft; side <= SideTop; side++ {
		corners[side] = d.createCorner(box, side)
	}
	for side := SideLeft; side <= SideTop; side++ {
		h := d.createHalfEdge(face)
		h.Origin = corners[side]
		h.Destination = corners[side.next()]
		if prev != nil {
			setPrevHalfEdge(prev, h)
		} else {
			first = h
		}
		prev = h
	}
	setPrevHalfEdge(prev, first)
}
