package voronoi

import "math"

// beachArc - дуга пляжной линии. Существует только во время построения.
type beachArc struct {
	node  *rbtNode
	site  *Site
	event *sweepEvent
	// полуребра, которые прочерчивают левая и правая точки излома дуги
	leftHalfEdge  *HalfEdge
	rightHalfEdge *HalfEdge
}

func (a *beachArc) bindToNode(node *rbtNode) {
	a.node = node
}

func (a *beachArc) treeNode() *rbtNode {
	return a.node
}

func (a *beachArc) prev() *beachArc {
	if a.node.previous == nil {
		return nil
	}
	return a.node.previous.value.(*beachArc)
}

func (a *beachArc) next() *beachArc {
	if a.node.next == nil {
		return nil
	}
	return a.node.next.value.(*beachArc)
}

// beachline - дуги парабол, упорядоченные слева направо
type beachline struct {
	tree rbt
}

func (b *beachline) empty() bool { return b.tree.empty() }

func (b *beachline) leftmost() *beachArc {
	if b.tree.first == nil {
		return nil
	}
	return b.tree.first.value.(*beachArc)
}

// breakpoint - x точки пересечения дуги left (слева) и дуги right (справа)
// при положении линии заметания directrix.
// Линия заметания идет вниз; в зеркальной по y системе координат это обычная формула
// пересечения двух парабол с общей директрисой.
func breakpoint(left, right Point, directrix float64) float64 {
	if left.Y == right.Y {
		// фокусы на одной высоте: излом ровно посередине, если дуги упорядочены,
		// иначе это вырожденная дуга, вытолкнутая на бесконечность
		if left.X < right.X {
			return (left.X + right.X) / 2
		}
		return math.Inf(1)
	}

	rfocx := right.X
	rfocy := -right.Y
	pby2 := rfocy + directrix
	if pby2 == 0 {
		return rfocx
	}
	lfocx := left.X
	lfocy := -left.Y
	plby2 := lfocy + directrix
	if plby2 == 0 {
		return lfocx
	}
	hl := lfocx - rfocx
	aby2 := 1/pby2 - 1/plby2
	b := hl / plby2
	if aby2 == 0 {
		return (rfocx + lfocx) / 2
	}
	delta := b*b - 2*aby2*(hl*hl/(-2*plby2)-lfocy+plby2/2+rfocy-pby2/2)
	return (-b+math.Sqrt(math.Max(delta, 0)))/aby2 + rfocx
}

func (a *beachArc) leftBreakpoint(directrix float64) float64 {
	prev := a.prev()
	if prev == nil {
		return math.Inf(-1)
	}
	return breakpoint(prev.site.Point, a.site.Point, directrix)
}

func (a *beachArc) rightBreakpoint(directrix float64) float64 {
	next := a.next()
	if next == nil {
		return math.Inf(1)
	}
	return breakpoint(a.site.Point, next.site.Point, directrix)
}

// locateArc ищет дугу, лежащую над x при положении линии заметания directrix
func (b *beachline) locateArc(x, directrix float64) *beachArc {
	node := b.tree.root
	for node != nil {
		arc := node.value.(*beachArc)
		if x < arc.leftBreakpoint(directrix) {
			if node.left == nil {
				return arc
			}
			node = node.left
		} else if x > arc.rightBreakpoint(directrix) {
			if node.right == nil {
				return arc
			}
			node = node.right
		} else {
			return arc
		}
	}
	return nil
}

// insertFirst - первая дуга пляжной линии
func (b *beachline) insertFirst(site *Site) *beachArc {
	arc := &beachArc{site: site}
	b.tree.insertSuccessor(nil, arc)
	return arc
}

// breakArc разбивает дугу arc новой дугой site.
// arc становится левой копией, справа вставляются новая дуга и правая копия.
// Возвращает новую (среднюю) дугу.
func (b *beachline) breakArc(arc *beachArc, site *Site) *beachArc {
	middle := &beachArc{site: site}
	b.tree.insertSuccessor(arc.node, middle)

	right := &beachArc{site: arc.site, rightHalfEdge: arc.rightHalfEdge}
	b.tree.insertSuccessor(middle.node, right)
	arc.rightHalfEdge = nil
	return middle
}

func (b *beachline) remove(arc *beachArc) {
	b.tree.removeNode(arc.node)
	arc.node = nil
}

func (b *beachline) len() int { return b.tree.size }
