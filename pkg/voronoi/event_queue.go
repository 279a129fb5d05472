package voronoi

type eventKind int

const (
	siteEvent eventKind = iota
	circleEvent
)

func (k eventKind) String() string {
	if k == siteEvent {
		return "site"
	}
	return "circle"
}

// sweepEvent - событие точки или событие круга.
// Для события круга y - нижняя точка окружности, point - её центр (будущая вершина).
type sweepEvent struct {
	node  *rbtNode
	kind  eventKind
	y     float64
	x     float64
	site  *Site
	point Point
	arc   *beachArc
	valid bool
	seq   int
}

func (e *sweepEvent) bindToNode(node *rbtNode) {
	e.node = node
}

func (e *sweepEvent) treeNode() *rbtNode {
	return e.node
}

// before - порядок очереди: линия заметания движется сверху вниз, поэтому раньше
// обрабатывается большее y, затем меньшее x, затем события точек, затем порядок вставки
func (e *sweepEvent) before(o *sweepEvent) bool {
	if e.y != o.y {
		return e.y > o.y
	}
	if e.x != o.x {
		return e.x < o.x
	}
	if e.kind != o.kind {
		return e.kind == siteEvent
	}
	return e.seq < o.seq
}

// eventQueue - очередь с приоритетом поверх красно-черного дерева.
// Устаревшие события круга не удаляются, а помечаются и пропускаются при извлечении.
type eventQueue struct {
	tree rbt
	seq  int
}

func (q *eventQueue) push(e *sweepEvent) {
	e.seq = q.seq
	q.seq++

	var predecessor *rbtNode
	node := q.tree.root
	for node != nil {
		if e.before(node.value.(*sweepEvent)) {
			if node.left == nil {
				predecessor = node.previous
				break
			}
			node = node.left
		} else {
			if node.right == nil {
				predecessor = node
				break
			}
			node = node.right
		}
	}
	q.tree.insertSuccessor(predecessor, e)
}

// pop возвращает первое актуальное событие или nil, если очередь пуста
func (q *eventQueue) pop() *sweepEvent {
	for q.tree.first != nil {
		first := q.tree.first
		q.tree.removeNode(first)
		e := first.value.(*sweepEvent)
		e.node = nil
		if e.kind == circleEvent && !e.valid {
			continue
		}
		return e
	}
	return nil
}

// invalidate помечает событие круга устаревшим, в дереве оно остается до извлечения
func (q *eventQueue) invalidate(e *sweepEvent) {
	if e == nil {
		return
	}
	e.valid = false
	if e.arc != nil && e.arc.event == e {
		e.arc.event = nil
	}
}

func (q *eventQueue) len() int { return q.tree.size }
