package voronoi

// EmptyFacePolicy - что делать с пустыми (или вырожденными) гранями при релаксации Ллойда
type EmptyFacePolicy int

const (
	// KeepEmpty оставляет сайт пустой грани на прежнем месте: число и порядок сайтов сохраняются
	KeepEmpty EmptyFacePolicy = iota
	// SkipEmpty выбрасывает сайты пустых граней
	SkipEmpty
)

func (p EmptyFacePolicy) String() string {
	if p == SkipEmpty {
		return "skip"
	}
	return "keep"
}

// ParseEmptyFacePolicy - "keep" или "skip"
func ParseEmptyFacePolicy(s string) (EmptyFacePolicy, bool) {
	switch s {
	case "", "keep":
		return KeepEmpty, true
	case "skip":
		return SkipEmpty, true
	}
	return KeepEmpty, false
}

// ComputeLloydRelaxation - центры масс граней как новые сайты
func (d *Diagram) ComputeLloydRelaxation(policy EmptyFacePolicy) []Point {
	ret := make([]Point, 0, len(d.sites))
	for i := range d.sites {
		site := &d.sites[i]
		centroid, ok := site.Face.Centroid()
		if ok {
			ret = append(ret, centroid)
			continue
		}
		if policy == KeepEmpty {
			ret = append(ret, site.Point)
		}
	}
	return ret
}
