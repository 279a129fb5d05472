package voronoi

import "github.com/pkg/errors"

var (
	ErrNoSites            = errors.New("voronoi: no sites")
	ErrInvalidSite        = errors.New("voronoi: site coordinates must be finite")
	ErrInvalidBox         = errors.New("voronoi: box must have finite bounds and a positive area")
	ErrBoxTooSmall        = errors.New("voronoi: bounding box must strictly contain every site")
	ErrClipOutsideBound   = errors.New("voronoi: intersection box must lie inside the bounding box")
	ErrNotConstructed     = errors.New("voronoi: diagram is not constructed")
	ErrAlreadyConstructed = errors.New("voronoi: diagram is already constructed")
	ErrIntersectionFailed = errors.New("voronoi: box intersection produced an inconsistent diagram")
	ErrInvalidDCEL        = errors.New("voronoi: invalid edge list")
)
