package voronoi

import (
	"github.com/0x0FACED/fortune-dcel/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Options - прямоугольники построения и политика релаксации
type Options struct {
	// BoundBox замыкает бесконечные ребра, должен строго содержать все сайты
	BoundBox Box
	// ClipBox - итоговая область диаграммы, лежит внутри BoundBox
	ClipBox    Box
	EmptyFaces EmptyFacePolicy
}

func DefaultOptions() Options {
	return Options{
		BoundBox: NewBox(-0.05, -0.05, 1.05, 1.05),
		ClipBox:  NewBox(0, 0, 1, 1),
	}
}

func (o Options) Validate() error {
	if !o.BoundBox.Valid() {
		return errors.Wrapf(ErrInvalidBox, "bounding box %v", o.BoundBox)
	}
	if !o.ClipBox.Valid() {
		return errors.Wrapf(ErrInvalidBox, "intersection box %v", o.ClipBox)
	}
	if !o.BoundBox.ContainsBox(o.ClipBox) {
		return errors.Wrapf(ErrClipOutsideBound, "%v is not inside %v", o.ClipBox, o.BoundBox)
	}
	return nil
}

// checkSites отклоняет сайты вне BoundBox до запуска заметающей прямой
func (o Options) checkSites(pts []Point) error {
	for i, p := range pts {
		if !p.valid() {
			return errors.Wrapf(ErrInvalidSite, "site %d %v", i, p)
		}
		if !o.BoundBox.strictlyContains(p) {
			return errors.Wrapf(ErrBoxTooSmall, "site %d %v is outside %v", i, p, o.BoundBox)
		}
	}
	return nil
}

// CreateDiagram - основная функция: построение, замыкание гранями BoundBox, отсечение ClipBox
func CreateDiagram(pts []Point, opts Options, log *logger.ZapLogger) (*Diagram, error) {
	if log == nil {
		log = logger.NewNop()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := opts.checkSites(pts); err != nil {
		return nil, err
	}

	fortune := NewFortune(pts, log)
	if err := fortune.Construct(); err != nil {
		return nil, errors.Wrap(err, "construct")
	}
	if err := fortune.Bound(opts.BoundBox); err != nil {
		return nil, errors.Wrap(err, "bound")
	}

	diagram := fortune.Diagram()
	if !diagram.Intersect(opts.ClipBox) {
		log.Error("[f-intersect] Ошибка отсечения", zap.Stringer("box", opts.ClipBox))
		return diagram, errors.Wrapf(ErrIntersectionFailed, "intersect with %v", opts.ClipBox)
	}
	log.Info("[f-intersect] Диаграмма отсечена",
		zap.Stringer("box", opts.ClipBox),
		zap.Int("vertices", len(diagram.vertices)),
		zap.Int("halfEdges", len(diagram.halfEdges)))
	return diagram, nil
}

// Relax строит диаграмму и выполняет iterations шагов релаксации Ллойда,
// каждый раз строя новую диаграмму по центрам масс граней
func Relax(pts []Point, opts Options, iterations int, log *logger.ZapLogger) (*Diagram, error) {
	if log == nil {
		log = logger.NewNop()
	}
	diagram, err := CreateDiagram(pts, opts, log)
	if err != nil {
		return diagram, err
	}
	for i := 0; i < iterations; i++ {
		next := diagram.ComputeLloydRelaxation(opts.EmptyFaces)
		log.Info("[f-lloyd] Итерация релаксации", zap.Int("iteration", i+1), zap.Int("sites", len(next)))
		diagram, err = CreateDiagram(next, opts, log)
		if err != nil {
			return diagram, errors.Wrapf(err, "lloyd iteration %d", i+1)
		}
	}
	return diagram, nil
}
