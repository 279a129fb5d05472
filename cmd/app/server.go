package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/0x0FACED/fortune-dcel/pkg/config"
	"github.com/0x0FACED/fortune-dcel/pkg/logger"
	"github.com/0x0FACED/fortune-dcel/pkg/render"
	"github.com/0x0FACED/fortune-dcel/pkg/voronoi"
	"github.com/0x0FACED/fortune-dcel/static"
	"go.uber.org/zap"
)

type server struct {
	conf *config.Config
	log  *logger.ZapLogger
}

type request struct {
	sites         int
	iterations    int
	seed          int64
	random        bool
	triangulation bool
}

// параметры из формы поверх конфигурации
func (s *server) parseRequest(r *http.Request) request {
	req := request{
		sites:      s.conf.Sites,
		iterations: s.conf.Iterations,
		seed:       s.conf.Seed,
		random:     s.conf.Random,
	}
	if err := r.ParseForm(); err != nil {
		return req
	}
	if v, err := strconv.Atoi(r.FormValue("sites")); err == nil && v > 0 {
		req.sites = v
	}
	if v, err := strconv.Atoi(r.FormValue("iterations")); err == nil && v >= 0 {
		req.iterations = v
	}
	if v, err := strconv.ParseInt(r.FormValue("seed"), 10, 64); err == nil {
		req.seed = v
	}
	if r.Method == http.MethodPost {
		req.random = r.FormValue("random") == "true"
	}
	req.triangulation = r.FormValue("triangulation") == "true"
	return req
}

func (s *server) build(req request, log *logger.ZapLogger) (*voronoi.Diagram, error) {
	opts := s.conf.Options()
	points := generatePoints(req.sites, req.random, req.seed, opts.ClipBox)
	return voronoi.Relax(points, opts, req.iterations, log)
}

// http обработчик страницы с диаграммой и формой для ввода данных
func (s *server) diagramHandler(w http.ResponseWriter, r *http.Request) {
	req := s.parseRequest(r)

	// логи одного построения показываются на странице
	pageLog := logger.New(logger.Options{Level: zap.DebugLevel})
	diagram, err := s.build(req, pageLog)

	fmt.Fprintln(w, static.Part1)
	if err != nil {
		s.log.Error("[http] Ошибка построения диаграммы", zap.Error(err))
		fmt.Fprintf(w, "<p style=\"color: red;\">%s</p>\n", err)
	}
	if diagram != nil {
		chart := render.Chart(diagram, "Диаграмма Вороного (Форчун)", req.triangulation)
		if err := chart.Render(w); err != nil {
			s.log.Error("[http] Ошибка рендеринга диаграммы", zap.Error(err))
		}
	}
	fmt.Fprintln(w, static.Part2)
	fmt.Fprintln(w, pageLog.HTML())
	fmt.Fprintln(w, static.Part3)
}

func (s *server) svgHandler(w http.ResponseWriter, r *http.Request) {
	req := s.parseRequest(r)
	diagram, err := s.build(req, s.log)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	render.WriteSVG(w, diagram, render.SVGOptions{
		Width:         800,
		Height:        800,
		Box:           s.conf.ClipBox.Box(),
		Triangulation: req.triangulation,
	})
}

type locateResponse struct {
	Site      int             `json:"site"`
	Point     voronoi.Point   `json:"point"`
	Polygon   []voronoi.Point `json:"polygon"`
	Neighbors []int           `json:"neighbors"`
}

// грань, в которую попадает точка (x, y)
func (s *server) locateHandler(w http.ResponseWriter, r *http.Request) {
	req := s.parseRequest(r)
	x, errX := strconv.ParseFloat(r.FormValue("x"), 64)
	y, errY := strconv.ParseFloat(r.FormValue("y"), 64)
	if errX != nil || errY != nil {
		http.Error(w, "x and y are required", http.StatusBadRequest)
		return
	}

	diagram, err := s.build(req, s.log)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	locator, err := voronoi.NewLocator(diagram)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	face := locator.FaceAt(voronoi.Point{X: x, Y: y})
	if face == nil {
		http.Error(w, "point is outside the diagram", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(locateResponse{
		Site:      face.Site.Index,
		Point:     face.Site.Point,
		Polygon:   face.Polygon(),
		Neighbors: face.Neighbors(),
	})
	if err != nil {
		s.log.Error("[http] Ошибка записи ответа", zap.Error(err))
	}
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.diagramHandler)
	mux.HandleFunc("/svg", s.svgHandler)
	mux.HandleFunc("/locate", s.locateHandler)
	return mux
}
