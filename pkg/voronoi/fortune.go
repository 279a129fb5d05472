package voronoi

import (
	"github.com/0x0FACED/fortune-dcel/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Fortune - построение диаграммы Вороного заметающей прямой.
// Один экземпляр строит одну диаграмму: Construct, затем Bound, затем Diagram.
type Fortune struct {
	diagram *Diagram

	// Пляжная линия (красно-черное дерево дуг)
	beachline beachline
	// События точек и кругов
	events eventQueue
	// текущее положение линии заметания
	sweepY float64

	constructed bool
	bounded     bool

	Logger *logger.ZapLogger
}

// NewFortune готовит построение по набору точек. Точки копируются.
func NewFortune(pts []Point, log *logger.ZapLogger) *Fortune {
	if log == nil {
		log = logger.NewNop()
	}
	return &Fortune{
		diagram: newDiagram(pts),
		Logger:  log,
	}
}

// Diagram - построенная диаграмма
func (f *Fortune) Diagram() *Diagram {
	return f.diagram
}

// Construct - основной цикл алгоритма Форчуна
func (f *Fortune) Construct() error {
	if f.constructed {
		return ErrAlreadyConstructed
	}
	if f.diagram.NbSites() == 0 {
		return ErrNoSites
	}
	for i := range f.diagram.sites {
		site := &f.diagram.sites[i]
		if !site.Point.valid() {
			return errors.Wrapf(ErrInvalidSite, "site %d %v", i, site.Point)
		}
	}
	f.constructed = true

	f.Logger.Info("[f] Алгоритм Форчуна запущен", zap.Int("sites", f.diagram.NbSites()))

	for i := range f.diagram.sites {
		site := &f.diagram.sites[i]
		f.events.push(&sweepEvent{kind: siteEvent, y: site.Point.Y, x: site.Point.X, site: site})
	}

	var prev *Site
	var counter int
	for {
		event := f.events.pop()
		if event == nil {
			break
		}
		counter++
		f.sweepY = event.y

		if event.kind == siteEvent {
			// дубликаты идут в очереди подряд; грань дубликата остается пустой
			if prev != nil && prev.Point == event.site.Point {
				f.Logger.Warn("[f-for-site] Найден дубликат!", zap.Int("site", event.site.Index), zap.Stringer("point", event.site.Point))
				continue
			}
			f.Logger.Debug("[f-for-site] Событие точки", zap.Int("site", event.site.Index), zap.Stringer("point", event.site.Point))
			f.handleSiteEvent(event)
			prev = event.site
		} else {
			f.Logger.Debug("[f-for-circle] Событие круга", zap.Stringer("center", event.point), zap.Float64("y", event.y))
			f.handleCircleEvent(event)
		}
	}

	f.Logger.Info("[f] Алгоритм завершен!",
		zap.Int("events", counter),
		zap.Int("vertices", len(f.diagram.vertices)),
		zap.Int("halfEdges", len(f.diagram.halfEdges)))
	return nil
}

func (f *Fortune) handleSiteEvent(event *sweepEvent) {
	site := event.site
	if f.beachline.empty() {
		f.beachline.insertFirst(site)
		return
	}

	// дуга над новой точкой
	arcToBreak := f.beachline.locateArc(site.Point.X, f.sweepY)
	f.events.invalidate(arcToBreak.event)

	middle := f.beachline.breakArc(arcToBreak, site)
	left := middle.prev()
	right := middle.next()

	// обе точки излома новой дуги прочерчивают одно и то же ребро
	f.addEdge(left, middle)
	middle.rightHalfEdge = middle.leftHalfEdge
	right.leftHalfEdge = left.rightHalfEdge

	if prev := left.prev(); prev != nil {
		f.addCircleEvent(prev, left, middle)
	}
	if next := right.next(); next != nil {
		f.addCircleEvent(middle, right, next)
	}
}

func (f *Fortune) handleCircleEvent(event *sweepEvent) {
	arc := event.arc
	vertex := f.diagram.createVertex(event.point)

	left := arc.prev()
	right := arc.next()
	f.events.invalidate(left.event)
	f.events.invalidate(right.event)

	f.removeArc(arc, left, right, vertex)

	if prev := left.prev(); prev != nil {
		f.addCircleEvent(prev, left, right)
	}
	if next := right.next(); next != nil {
		f.addCircleEvent(left, right, next)
	}
}

// removeArc убирает исчезающую дугу: замыкает её полуребра в вершине
// и начинает новое ребро между соседями
func (f *Fortune) removeArc(arc, left, right *beachArc, vertex *Vertex) {
	setDestination(left, arc, vertex)
	setDestination(arc, right, vertex)
	arc.leftHalfEdge.Next = arc.rightHalfEdge
	arc.rightHalfEdge.Prev = arc.leftHalfEdge

	f.beachline.remove(arc)

	prevHalfEdge := left.rightHalfEdge
	nextHalfEdge := right.leftHalfEdge
	f.addEdge(left, right)
	setOrigin(left, right, vertex)
	setPrevHalfEdge(left.rightHalfEdge, prevHalfEdge)
	setPrevHalfEdge(nextHalfEdge, right.leftHalfEdge)
}

// addCircleEvent планирует исчезновение средней дуги тройки.
// Вырожденные тройки (одна точка с двух сторон, коллинеарные или совпадающие точки)
// и расходящиеся точки излома отбрасываются.
func (f *Fortune) addCircleEvent(left, middle, right *beachArc) {
	lp := left.site.Point
	mp := middle.site.Point
	rp := right.site.Point
	if left.site == right.site || lp == rp {
		return
	}

	// точки излома сходятся только при повороте left-middle-right по часовой стрелке
	if !clockwiseTurn(lp, mp, rp) {
		f.Logger.Debug("[f-circle] Точки излома расходятся", zap.Stringer("left", lp), zap.Stringer("middle", mp), zap.Stringer("right", rp))
		return
	}

	center, y, ok := circumcircle(lp, mp, rp)
	if !ok {
		f.Logger.Debug("[f-circle] Вырожденная окружность", zap.Stringer("middle", mp))
		return
	}
	if y > f.sweepY+epsilon {
		return
	}

	event := &sweepEvent{
		kind:  circleEvent,
		y:     y,
		x:     center.X,
		point: center,
		arc:   middle,
		valid: true,
	}
	middle.event = event
	f.events.push(event)
}

// addEdge создает пару полуребер для точки излома между left и right
func (f *Fortune) addEdge(left, right *beachArc) {
	left.rightHalfEdge = f.diagram.createHalfEdge(left.site.Face)
	right.leftHalfEdge = f.diagram.createHalfEdge(right.site.Face)
	left.rightHalfEdge.Twin = right.leftHalfEdge
	right.leftHalfEdge.Twin = left.rightHalfEdge
}

// setOrigin - ребро между left и right начинается в vertex
func setOrigin(left, right *beachArc, vertex *Vertex) {
	left.rightHalfEdge.Destination = vertex
	right.leftHalfEdge.Origin = vertex
}

// setDestination - ребро между left и right заканчивается в vertex
func setDestination(left, right *beachArc, vertex *Vertex) {
	left.rightHalfEdge.Origin = vertex
	right.leftHalfEdge.Destination = vertex
}

func setPrevHalfEdge(prev, next *HalfEdge) {
	prev.Next = next
	next.Prev = prev
}
