package voronoi

import "github.com/pkg/errors"

// Validate проверяет инварианты DCEL: циклы граней замкнуты, twin симметричны,
// концы соседних полуребер совпадают, каждое полуребро принадлежит ровно одной грани,
// грани обходятся против часовой стрелки.
func (d *Diagram) Validate() error {
	seen := make(map[*HalfEdge]int, len(d.halfEdges))

	for i := range d.faces {
		face := &d.faces[i]
		if face.Site != &d.sites[i] || d.sites[i].Face != face {
			return errors.Wrapf(ErrInvalidDCEL, "face %d is not bound to its site", i)
		}
		if face.OuterComponent == nil {
			continue
		}

		halfEdges, closed := closedCycle(face)
		if !closed {
			return errors.Wrapf(ErrInvalidDCEL, "face %d boundary is not closed", i)
		}
		if len(halfEdges) < 3 {
			return errors.Wrapf(ErrInvalidDCEL, "face %d has %d half-edges", i, len(halfEdges))
		}
		for _, h := range halfEdges {
			if h.removed {
				return errors.Wrapf(ErrInvalidDCEL, "face %d references a removed half-edge", i)
			}
			if h.IncidentFace != face {
				return errors.Wrapf(ErrInvalidDCEL, "half-edge of face %d points to another face", i)
			}
			if h.Destination != h.Next.Origin {
				return errors.Wrapf(ErrInvalidDCEL, "face %d: destination %v is not the origin of the next half-edge %v",
					i, h.Destination.Point, h.Next.Origin.Point)
			}
			if h.Twin != nil {
				if h.Twin.Twin != h {
					return errors.Wrapf(ErrInvalidDCEL, "face %d: twin relation is not symmetric", i)
				}
				if !h.Twin.Origin.Point.almostEqual(h.Destination.Point) || !h.Twin.Destination.Point.almostEqual(h.Origin.Point) {
					return errors.Wrapf(ErrInvalidDCEL, "face %d: twin %v-%v does not match %v-%v",
						i, h.Twin.Origin.Point, h.Twin.Destination.Point, h.Origin.Point, h.Destination.Point)
				}
			}
			seen[h]++
		}
		if face.clockwise() {
			return errors.Wrapf(ErrInvalidDCEL, "face %d is clockwise (area %g)", i, face.Area())
		}
	}

	for _, h := range d.halfEdges {
		if seen[h] != 1 {
			return errors.Wrapf(ErrInvalidDCEL, "half-edge %v-%v belongs to %d face cycles", h.Origin, h.Destination, seen[h])
		}
	}
	return nil
}
