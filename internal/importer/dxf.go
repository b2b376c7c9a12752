package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

type vec struct {
	X, Y float64
}

// segment is a line between two points, used to chain loose LINE entities
// into closed outlines.
type segment struct {
	start vec
	end   vec
}

const chainTolerance = 0.01

// ImportDXF imports boxes from a DXF drawing. Each closed shape (LWPOLYLINE,
// CIRCLE or a closed chain of LINEs) becomes one item whose size is its
// bounding box rounded up to whole units.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var shapes [][]vec
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			pts := lwPolylinePoints(e)
			if len(pts) >= 3 {
				shapes = append(shapes, pts)
			} else {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			cx, cy, r := e.Center[0], e.Center[1], e.Radius
			shapes = append(shapes, []vec{{cx - r, cy - r}, {cx + r, cy + r}})

		case *entity.Line:
			segments = append(segments, segment{
				start: vec{e.Start[0], e.Start[1]},
				end:   vec{e.End[0], e.End[1]},
			})
		}
	}

	closed, open := chainSegments(segments, chainTolerance)
	shapes = append(shapes, closed...)
	if open > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped %d open LINE chain(s)", open))
	}

	if len(shapes) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	for i, pts := range shapes {
		w, h := boundingSize(pts)
		if w < chainTolerance || h < chainTolerance {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f)", w, h))
			continue
		}
		result.Items = append(result.Items, Item{
			Label:    fmt.Sprintf("DXF Box %d", i+1),
			Width:    int(math.Ceil(w - 1e-9)),
			Height:   int(math.Ceil(h - 1e-9)),
			Quantity: 1,
		})
	}

	return result
}

// lwPolylinePoints returns the vertices of a polyline, with bulged segments
// sampled so that arcs contribute to the bounding box.
func lwPolylinePoints(lw *entity.LwPolyline) []vec {
	var pts []vec
	for i, v := range lw.Vertices {
		current := vec{v[0], v[1]}
		pts = append(pts, current)

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}
		if math.Abs(bulge) > 1e-9 {
			n := lw.Vertices[(i+1)%len(lw.Vertices)]
			pts = append(pts, bulgeArcPoints(current, vec{n[0], n[1]}, bulge, 32)...)
		}
	}
	return pts
}

// bulgeArcPoints samples the arc between p1 and p2 described by a DXF bulge,
// the tangent of a quarter of the included angle.
func bulgeArcPoints(p1, p2 vec, bulge float64, numSegments int) []vec {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	chord := math.Hypot(dx, dy)
	if chord < 1e-9 {
		return nil
	}

	sagitta := math.Abs(bulge) * chord / 2
	radius := (chord*chord/(4*sagitta) + sagitta) / 2

	perpX, perpY := -dy/chord, dx/chord
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	dist := radius - sagitta
	cx := (p1.X+p2.X)/2 + perpX*dist
	cy := (p1.Y+p2.Y)/2 + perpY*dist

	start := math.Atan2(p1.Y-cy, p1.X-cx)
	end := math.Atan2(p2.Y-cy, p2.X-cx)
	if bulge < 0 && end > start {
		end -= 2 * math.Pi
	} else if bulge > 0 && end < start {
		end += 2 * math.Pi
	}

	pts := make([]vec, 0, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		a := start + float64(i)/float64(numSegments)*(end-start)
		pts = append(pts, vec{cx + radius*math.Cos(a), cy + radius*math.Sin(a)})
	}
	return pts
}

// chainSegments joins segments end to end. It returns the closed chains and
// the number of chains that never closed.
func chainSegments(segs []segment, tolerance float64) ([][]vec, int) {
	used := make([]bool, len(segs))
	var closed [][]vec
	open := 0

	for start := range segs {
		if used[start] {
			continue
		}
		used[start] = true
		chain := []vec{segs[start].start, segs[start].end}

		for extended := true; extended; {
			extended = false
			tail := chain[len(chain)-1]
			for i, s := range segs {
				if used[i] {
					continue
				}
				switch {
				case pointsClose(tail, s.start, tolerance):
					chain = append(chain, s.end)
				case pointsClose(tail, s.end, tolerance):
					chain = append(chain, s.start)
				default:
					continue
				}
				used[i] = true
				extended = true
				break
			}
		}

		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			closed = append(closed, chain[:len(chain)-1])
		} else {
			open++
		}
	}
	return closed, open
}

func pointsClose(a, b vec, tolerance float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= tolerance
}

func boundingSize(pts []vec) (w, h float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return maxX - minX, maxY - minY
}
