package render

import (
	"github.com/0x0FACED/fortune-dcel/pkg/voronoi"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Chart - сайты точками, грани замкнутыми ломаными, по желанию ребра триангуляции Делоне
func Chart(d *voronoi.Diagram, title string, triangulation bool) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, title)

	sites := make([]opts.ScatterData, 0, d.NbSites())
	for _, site := range d.Sites() {
		sites = append(sites, opts.ScatterData{
			Value: []float64{site.Point.X, site.Point.Y},
		})
	}
	scatter.AddSeries("Сайты", sites).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, face := range d.Faces() {
		polygon := face.Polygon()
		if len(polygon) == 0 {
			continue
		}
		data := make([]opts.LineData, 0, len(polygon)+1)
		for _, p := range append(polygon, polygon[0]) {
			data = append(data, opts.LineData{Value: []float64{p.X, p.Y}})
		}
		scatter.Overlap(polyline("Грани", data, "red"))
	}

	if triangulation {
		points := d.Points()
		for _, e := range d.ComputeTriangulation().Edges() {
			a, b := points[e[0]], points[e[1]]
			scatter.Overlap(polyline("Делоне", []opts.LineData{
				{Value: []float64{a.X, a.Y}},
				{Value: []float64{b.X, b.Y}},
			}, "steelblue"))
		}
	}

	return scatter
}

func polyline(name string, data []opts.LineData, color string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)
	line.AddSeries(name, data).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{
			Width: 2,
			Color: color,
		}),
	)
	return line
}
