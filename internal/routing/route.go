// Package routing plans the sleigh delivery route over order addresses.
//
// Coordinates are derived from an FNV-1a hash of the address rather than
// drawn at random, so the same workshop always produces the same route and
// the planner stays testable.
package routing

import (
	"hash/fnv"
	"math"
)

// GridSize bounds both coordinate axes; addresses land on a 0..100 grid.
const GridSize = 101

type Point struct {
	X int
	Y int
}

// Stop is one visit on the route. LegDistance is the distance travelled from
// the previous stop (zero for the first).
type Stop struct {
	Address     string
	Point       Point
	LegDistance float64
}

type Route struct {
	Stops         []Stop
	TotalDistance float64
}

// Coordinates maps an address onto the delivery grid.
func Coordinates(address string) Point {
	h := fnv.New64a()
	_, _ = h.Write([]byte(address))
	sum := h.Sum64()
	return Point{
		X: int(sum % GridSize),
		Y: int((sum / GridSize) % GridSize),
	}
}

func distance(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// NearestNeighbour greedily visits addresses starting from the first one,
// always hopping to the closest unvisited stop. Ties go to the earlier
// address in the input, keeping the walk deterministic.
func NearestNeighbour(addresses []string) Route {
	if len(addresses) == 0 {
		return Route{}
	}

	points := make(map[string]Point, len(addresses))
	for _, addr := range addresses {
		points[addr] = Coordinates(addr)
	}

	route := Route{
		Stops: []Stop{{Address: addresses[0], Point: points[addresses[0]]}},
	}

	visited := make(map[string]bool, len(addresses))
	visited[addresses[0]] = true
	current := addresses[0]

	for len(route.Stops) < len(points) {
		next := ""
		best := 0.0
		for _, addr := range addresses {
			if visited[addr] {
				continue
			}
			d := distance(points[current], points[addr])
			if next == "" || d < best {
				next = addr
				best = d
			}
		}
		if next == "" {
			break
		}
		visited[next] = true
		route.Stops = append(route.Stops, Stop{
			Address:     next,
			Point:       points[next],
			LegDistance: best,
		})
		route.TotalDistance += best
		current = next
	}
	return route
}
