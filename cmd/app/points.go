package main

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/fortune-dcel/pkg/voronoi"
)

// Случайные точки внутри прямоугольника (границы не включаются)
func generateRandPoints(n int, box voronoi.Box, seed int64) []voronoi.Point {
	rnd := rand.New(rand.NewSource(seed))
	points := make([]voronoi.Point, n)
	for i := range points {
		points[i] = voronoi.Point{
			X: box.Left + (0.001+0.998*rnd.Float64())*box.Width(),
			Y: box.Bottom + (0.001+0.998*rnd.Float64())*box.Height(),
		}
	}
	return points
}

// Точки по сетке, по центрам клеток
func generateFixPoints(n int, box voronoi.Box) []voronoi.Point {
	points := make([]voronoi.Point, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := box.Width() / float64(cols)
	yStep := box.Height() / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// строк и столбцов может быть больше, чем нужно точек
			if len(points) == n {
				return points
			}
			points = append(points, voronoi.Point{
				X: box.Left + xStep/2 + float64(j)*xStep,
				Y: box.Bottom + yStep/2 + float64(i)*yStep,
			})
		}
	}
	return points
}

func generatePoints(n int, random bool, seed int64, box voronoi.Box) []voronoi.Point {
	if random {
		return generateRandPoints(n, box, seed)
	}
	return generateFixPoints(n, box)
}
