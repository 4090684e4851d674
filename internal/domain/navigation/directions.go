package navigation

import (
	"fmt"
	"math"

	"github.com/SHARMA1525/v0-campus-map-integration/internal/geo"
)

// Directions narrates a path as an ordered list of human-readable
// steps: an opening line, one line per segment with the rounded
// distance and compass direction, a closing line and a total-distance
// summary. A path shorter than two nodes yields nil.
//
// The persona injects at most one flavor line at its fixed segment
// position and has no effect on the route itself.
func Directions(path []PathNode, persona Persona) []string {
	if len(path) < 2 {
		return nil
	}

	segments := len(path) - 1
	lines := make([]string, 0, segments+3)
	lines = append(lines, fmt.Sprintf("Start at %s.", path[0].Name))

	flavor := persona.flavorLine()
	flavorAt := persona.flavorSegment(segments)

	var total float64
	for i := 0; i < segments; i++ {
		from, to := path[i], path[i+1]
		dist := geo.Distance(from.Point(), to.Point())
		total += dist

		meters := int(math.Round(dist))
		dir := geo.DirectionLabel(geo.Bearing(from.Point(), to.Point()))

		switch {
		case i == 0:
			lines = append(lines, fmt.Sprintf("Head %s for about %d meters.", dir, meters))
		case i == segments-1:
			lines = append(lines, fmt.Sprintf("Walk the final %d meters %s.", meters, dir))
		default:
			lines = append(lines, fmt.Sprintf("Continue %s for another %d meters.", dir, meters))
		}

		if flavor != "" && i == flavorAt {
			lines = append(lines, flavor)
			flavor = ""
		}
	}

	lines = append(lines, fmt.Sprintf("Arrive at %s.", path[len(path)-1].Name))
	lines = append(lines, fmt.Sprintf("Total distance: %d meters.", int(math.Round(total))))

	return lines
}
