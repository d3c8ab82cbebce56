package report

import (
	"math"
	"strconv"
	"strings"
)

const maxSweep = 359.99

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Arc struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Start      Point   `json:"start"`
	End        Point   `json:"end"`
	LargeArc   bool    `json:"large_arc"`
	Path       string  `json:"path"`
}

// PieArcs lays shares out clockwise from 12 o'clock. A single share covering the
// whole circle is drawn as a 359.99 degree arc so the path stays drawable.
func PieArcs(shares []Share, cx, cy, radius float64) []Arc {
	arcs := make([]Arc, 0, len(shares))
	angle := 0.0

	for _, share := range shares {
		sweep := 360 * share.Percentage / 100
		startAngle := angle
		angle += sweep

		if sweep >= 360 {
			sweep = maxSweep
		}
		endAngle := startAngle + sweep

		arc := Arc{
			Category:   share.Category,
			Percentage: share.Percentage,
			StartAngle: startAngle,
			EndAngle:   endAngle,
			Start:      polarToCartesian(cx, cy, radius, startAngle),
			End:        polarToCartesian(cx, cy, radius, endAngle),
			LargeArc:   sweep > 180,
		}
		arc.Path = arcPath(arc, cx, cy, radius)

		arcs = append(arcs, arc)
	}

	return arcs
}

func polarToCartesian(cx, cy, radius, angle float64) Point {
	rad := (angle - 90) * math.Pi / 180
	return Point{
		X: cx + radius*math.Cos(rad),
		Y: cy + radius*math.Sin(rad),
	}
}

// arcPath draws from the end point back to the start point (sweep flag 0) and
// closes through the centre.
func arcPath(arc Arc, cx, cy, radius float64) string {
	large := "0"
	if arc.LargeArc {
		large = "1"
	}

	parts := []string{
		"M", num(arc.End.X), num(arc.End.Y),
		"A", num(radius), num(radius), "0", large, "0", num(arc.Start.X), num(arc.Start.Y),
		"L", num(cx), num(cy), "Z",
	}
	return strings.Join(parts, " ")
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
