package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/0x0FACED/fortune-dcel/pkg/config"
	"github.com/0x0FACED/fortune-dcel/pkg/logger"
	"github.com/0x0FACED/fortune-dcel/pkg/render"
	"github.com/0x0FACED/fortune-dcel/pkg/voronoi"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "fortune"
	app.Usage = "Voronoi diagrams with Fortune's algorithm and Lloyd's relaxation"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "path to JSON config (defaults to $" + config.EnvConfigPath + ")",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn or error",
		},
		cli.BoolFlag{
			Name:  "log-stdout",
			Usage: "mirror logs to stdout",
		},
	}

	diagramFlags := []cli.Flag{
		cli.IntFlag{Name: "sites", Usage: "number of sites"},
		cli.IntFlag{Name: "iterations", Usage: "number of Lloyd's relaxation iterations"},
		cli.Int64Flag{Name: "seed", Usage: "seed for random sites"},
		cli.BoolFlag{Name: "grid", Usage: "place sites on a grid instead of randomly"},
	}

	app.Commands = []cli.Command{
		{
			Name:  "serve",
			Usage: "start the web page with the diagram",
			Flags: append([]cli.Flag{
				cli.StringFlag{Name: "addr", Usage: "listen address"},
			}, diagramFlags...),
			Action: serveAction,
		},
		{
			Name:  "svg",
			Usage: "write the diagram to an SVG file",
			Flags: append([]cli.Flag{
				cli.StringFlag{Name: "out", Value: "voronoi.svg", Usage: "output file"},
				cli.IntFlag{Name: "size", Value: 800, Usage: "canvas size in pixels"},
				cli.BoolFlag{Name: "triangulation", Usage: "draw the Delaunay triangulation"},
			}, diagramFlags...),
			Action: svgAction,
		},
		{
			Name:   "stats",
			Usage:  "build the diagram and print its statistics",
			Flags:  diagramFlags,
			Action: statsAction,
		},
	}
	app.Action = serveAction
	return app
}

// конфигурация из файла с переопределениями из флагов
func loadConfig(c *cli.Context) (*config.Config, error) {
	conf, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return nil, err
	}
	if v := c.GlobalString("log-level"); v != "" {
		conf.LogLevel = v
	}
	if c.GlobalBool("log-stdout") {
		conf.LogStdout = true
	}
	if c.IsSet("addr") {
		conf.Addr = c.String("addr")
	}
	if c.IsSet("sites") {
		conf.Sites = c.Int("sites")
	}
	if c.IsSet("iterations") {
		conf.Iterations = c.Int("iterations")
	}
	if c.IsSet("seed") {
		conf.Seed = c.Int64("seed")
	}
	if c.Bool("grid") {
		conf.Random = false
	}
	return conf, conf.Validate()
}

func newLogger(conf *config.Config) (*logger.ZapLogger, error) {
	level, err := logger.ParseLevel(conf.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", conf.LogLevel)
	}
	return logger.New(logger.Options{Level: level, Stdout: conf.LogStdout}), nil
}

func setup(c *cli.Context) (*config.Config, *logger.ZapLogger, error) {
	conf, err := loadConfig(c)
	if err != nil {
		return nil, nil, err
	}
	log, err := newLogger(conf)
	if err != nil {
		return nil, nil, err
	}
	return conf, log, nil
}

func buildFromConfig(conf *config.Config, log *logger.ZapLogger) (*voronoi.Diagram, error) {
	opts := conf.Options()
	points := generatePoints(conf.Sites, conf.Random, conf.Seed, opts.ClipBox)
	return voronoi.Relax(points, opts, conf.Iterations, log)
}

func serveAction(c *cli.Context) error {
	conf, log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Sync()

	s := &server{conf: conf, log: log}
	log.Info("[http] Сервер запущен", zap.String("addr", conf.Addr))
	if err := http.ListenAndServe(conf.Addr, s.routes()); err != nil {
		return errors.Wrap(err, "listen and serve")
	}
	return nil
}

func svgAction(c *cli.Context) (err error) {
	conf, log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Sync()

	diagram, err := buildFromConfig(conf, log)
	if err != nil {
		return err
	}

	out := c.String("out")
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "cannot create %s", out)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "cannot close %s", out)
		}
	}()

	size := c.Int("size")
	render.WriteSVG(f, diagram, render.SVGOptions{
		Width:         size,
		Height:        size,
		Box:           conf.ClipBox.Box(),
		Triangulation: c.Bool("triangulation"),
	})
	log.Info("[svg] Диаграмма записана", zap.String("file", out))
	return nil
}

func statsAction(c *cli.Context) error {
	conf, log, err := setup(c)
	if err != nil {
		return err
	}
	defer log.Sync()

	diagram, err := buildFromConfig(conf, log)
	if err != nil {
		return err
	}

	var (
		total, minArea, maxArea float64
		empty                   int
	)
	minArea = conf.ClipBox.Box().Area()
	for _, face := range diagram.Faces() {
		if face.Empty() {
			empty++
			continue
		}
		area := face.Area()
		total += area
		if area < minArea {
			minArea = area
		}
		if area > maxArea {
			maxArea = area
		}
	}

	fmt.Printf("sites:       %d\n", diagram.NbSites())
	fmt.Printf("empty faces: %d\n", empty)
	fmt.Printf("vertices:    %d\n", len(diagram.Vertices()))
	fmt.Printf("half-edges:  %d\n", len(diagram.HalfEdges()))
	fmt.Printf("delaunay:    %d edges\n", len(diagram.ComputeTriangulation().Edges()))
	fmt.Printf("area:        total %.6f, min %.6f, max %.6f\n", total, minArea, maxArea)

	if err := diagram.Validate(); err != nil {
		fmt.Printf("dcel:        %v\n", err)
		return err
	}
	fmt.Println("dcel:        ok")
	return nil
}
