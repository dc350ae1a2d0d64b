// Package hexgrid provides cube-coordinate math for the hex battle grid.
// Coordinates satisfy q + r + s = 0; all functions are pure.
package hexgrid

// Hex is a position on the grid in cube coordinates.
// The zero value is the origin. Hex is comparable and used as a map key.
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
	S int `json:"s"`
}

// New builds a Hex from axial (q, r), deriving s.
func New(q, r int) Hex {
	return Hex{Q: q, R: r, S: -q - r}
}

// Valid reports whether the cube constraint q+r+s = 0 holds.
// A false result indicates a programming error upstream.
func (h Hex) Valid() bool {
	return h.Q+h.R+h.S == 0
}

// Add returns h + o componentwise.
func (h Hex) Add(o Hex) Hex {
	return Hex{Q: h.Q + o.Q, R: h.R + o.R, S: h.S + o.S}
}

// Sub returns h - o componentwise.
func (h Hex) Sub(o Hex) Hex {
	return Hex{Q: h.Q - o.Q, R: h.R - o.R, S: h.S - o.S}
}

// Scale returns h * k componentwise.
func (h Hex) Scale(k int) Hex {
	return Hex{Q: h.Q * k, R: h.R * k, S: h.S * k}
}

// Directions are the six unit direction vectors, clockwise from east.
var Directions = [6]Hex{
	{Q: 1, R: -1, S: 0},
	{Q: 1, R: 0, S: -1},
	{Q: 0, R: 1, S: -1},
	{Q: -1, R: 1, S: 0},
	{Q: -1, R: 0, S: 1},
	{Q: 0, R: -1, S: 1},
}

// Neighbors returns the six adjacent coordinates.
func (h Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range Directions {
		result[i] = h.Add(dir)
	}
	return result
}

// Distance returns the hex distance between two coordinates:
// half the sum of the absolute cube deltas.
func Distance(a, b Hex) int {
	return (abs(a.Q-b.Q) + abs(a.R-b.R) + abs(a.S-b.S)) / 2
}

// HexesInRange returns every coordinate within radius of center,
// center included. Radius 0 yields just the center.
func HexesInRange(center Hex, radius int) []Hex {
	if radius < 0 {
		return nil
	}
	result := make([]Hex, 0, 1+3*radius*(radius+1))
	for q := -radius; q <= radius; q++ {
		lo := max(-radius, -q-radius)
		hi := min(radius, -q+radius)
		for r := lo; r <= hi; r++ {
			result = append(result, center.Add(Hex{Q: q, R: r, S: -q - r}))
		}
	}
	return result
}

// Ring returns the coordinates at exactly radius from center.
// Radius 0 yields just the center.
func Ring(center Hex, radius int) []Hex {
	if radius < 0 {
		return nil
	}
	if radius == 0 {
		return []Hex{center}
	}
	result := make([]Hex, 0, 6*radius)
	// Start at the SW corner and walk each of the six edges.
	cur := center.Add(Directions[4].Scale(radius))
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			result = append(result, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return result
}

// OnRay reports whether target lies at origin + direction*k for some k >= 1.
// direction must be one of the six unit directions.
func OnRay(origin, direction, target Hex) bool {
	delta := target.Sub(origin)
	if delta == (Hex{}) {
		return false
	}
	dir, steps, ok := DirectionOf(delta)
	return ok && steps >= 1 && dir == direction
}

// DirectionOf decomposes a delta vector into a unit direction and a
// positive step count. ok is false when the delta is zero or does not
// lie along any of the six directions.
func DirectionOf(delta Hex) (dir Hex, steps int, ok bool) {
	if delta == (Hex{}) {
		return Hex{}, 0, false
	}
	steps = Distance(Hex{}, delta)
	for _, d := range Directions {
		if d.Scale(steps) == delta {
			return d, steps, true
		}
	}
	return Hex{}, 0, false
}

// Between returns the coordinates strictly between a and b, walking the
// straight line from a toward b. ok is false when a and b are not on a
// common line (or are equal), in which case no tiles are returned.
func Between(a, b Hex) (tiles []Hex, ok bool) {
	dir, steps, ok := DirectionOf(b.Sub(a))
	if !ok {
		return nil, false
	}
	for k := 1; k < steps; k++ {
		tiles = append(tiles, a.Add(dir.Scale(k)))
	}
	return tiles, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
