// Package navigation implements the route computation behind the
// campus map: the three-node placeholder path, its narrated walking
// directions, and the keyword matcher used by the assistant.
package navigation

import (
	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain/campus"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/geo"
)

// NodeType classifies a path node.
type NodeType string

const (
	NodeTypeIntersection NodeType = "intersection"
	NodeTypeLocation     NodeType = "location"
	NodeTypeWaypoint     NodeType = "waypoint"
)

// IsValid returns true if the node type is recognized.
func (t NodeType) IsValid() bool {
	switch t {
	case NodeTypeIntersection, NodeTypeLocation, NodeTypeWaypoint:
		return true
	}
	return false
}

// PathNode is one point on a computed route. Nodes are built per
// request and never persisted.
type PathNode struct {
	ID   string   `json:"id"`
	Lat  float64  `json:"lat"`
	Lng  float64  `json:"lng"`
	Name string   `json:"name"`
	Type NodeType `json:"type"`
}

// Point returns the node's coordinates.
func (n PathNode) Point() geo.Point {
	return geo.Point{Lat: n.Lat, Lng: n.Lng}
}

// BuildPath looks up both names in the registry (exact, case-sensitive)
// and returns the three-node path start -> midpoint -> end. A missing
// name yields (nil, false): no route, not an error.
//
// The midpoint is the arithmetic mean of the endpoints. This is a
// drawing aid for the map line, not a road-aware route.
func BuildPath(reg *campus.Registry, fromName, toName string) ([]PathNode, bool) {
	from, ok := reg.Get(fromName)
	if !ok {
		return nil, false
	}
	to, ok := reg.Get(toName)
	if !ok {
		return nil, false
	}

	mid := geo.Midpoint(from.Point(), to.Point())

	return []PathNode{
		{ID: "start", Lat: from.Lat, Lng: from.Lng, Name: from.Name, Type: NodeTypeLocation},
		{ID: "mid", Lat: mid.Lat, Lng: mid.Lng, Name: "Midpoint", Type: NodeTypeWaypoint},
		{ID: "end", Lat: to.Lat, Lng: to.Lng, Name: to.Name, Type: NodeTypeLocation},
	}, true
}

// TotalDistance sums the great-circle distances of consecutive node
// pairs along the path, in meters.
func TotalDistance(path []PathNode) float64 {
	var total float64
	for i := 0; i < len(path)-1; i++ {
		total += geo.Distance(path[i].Point(), path[i+1].Point())
	}
	return total
}
