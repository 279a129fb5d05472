package voronoi

import "sort"

// Triangulation - триангуляция Делоне, двойственная диаграмме: соседи каждого сайта
type Triangulation struct {
	neighbors [][]int
}

// ComputeTriangulation - два сайта соседние, если их грани разделяет ребро диаграммы
func (d *Diagram) ComputeTriangulation() *Triangulation {
	t := &Triangulation{neighbors: make([][]int, len(d.sites))}
	for i := range d.faces {
		t.neighbors[i] = d.faces[i].Neighbors()
	}
	return t
}

func (t *Triangulation) NbSites() int { return len(t.neighbors) }

// Neighbors - индексы соседей сайта i в порядке обхода его грани
func (t *Triangulation) Neighbors(i int) []int { return t.neighbors[i] }

// Edges - ребра триангуляции без повторов, i < j, отсортированы
func (t *Triangulation) Edges() [][2]int {
	var ret [][2]int
	for i, neighbors := range t.neighbors {
		for _, j := range neighbors {
			if i < j {
				ret = append(ret, [2]int{i, j})
			}
		}
	}
	sort.Slice(ret, func(a, b int) bool {
		if ret[a][0] != ret[b][0] {
			return ret[a][0] < ret[b][0]
		}
		return ret[a][1] < ret[b][1]
	})
	return ret
}
