package hexgrid

import "testing"

func TestDistanceSymmetry(t *testing.T) {
	coords := []Hex{
		New(0, 0),
		New(1, -1),
		New(3, -3),
		New(-2, 5),
		New(4, 0),
		New(-1, -1),
	}
	for _, a := range coords {
		if Distance(a, a) != 0 {
			t.Errorf("Distance(%v, %v) = %d, want 0", a, a, Distance(a, a))
		}
		for _, b := range coords {
			if Distance(a, b) != Distance(b, a) {
				t.Errorf("Distance(%v, %v) = %d but Distance(%v, %v) = %d",
					a, b, Distance(a, b), b, a, Distance(b, a))
			}
		}
	}
}

func TestDistanceKnownValues(t *testing.T) {
	cases := []struct {
		a, b Hex
		want int
	}{
		{New(0, 0), New(1, -1), 1},
		{New(0, 0), New(2, -1), 2},
		{New(0, 0), New(3, -3), 3},
		{New(1, 1), New(-1, -1), 4},
		{New(0, 0), New(0, 5), 5},
	}
	for _, tc := range cases {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNeighbors(t *testing.T) {
	center := New(2, -1)
	seen := make(map[Hex]bool)
	for _, n := range center.Neighbors() {
		if !n.Valid() {
			t.Errorf("neighbor %v violates cube constraint", n)
		}
		if Distance(center, n) != 1 {
			t.Errorf("neighbor %v at distance %d, want 1", n, Distance(center, n))
		}
		seen[n] = true
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 distinct neighbors, got %d", len(seen))
	}
}

func TestHexesInRange(t *testing.T) {
	center := New(0, 0)

	if got := HexesInRange(center, 0); len(got) != 1 || got[0] != center {
		t.Fatalf("radius 0 should return only the center, got %v", got)
	}

	// Count for radius r is 1 + 3r(r+1).
	for r := 0; r <= 4; r++ {
		got := HexesInRange(center, r)
		want := 1 + 3*r*(r+1)
		if len(got) != want {
			t.Errorf("radius %d: %d hexes, want %d", r, len(got), want)
		}
		for _, h := range got {
			if !h.Valid() {
				t.Errorf("radius %d produced invalid hex %v", r, h)
			}
			if Distance(center, h) > r {
				t.Errorf("radius %d produced out-of-range hex %v", r, h)
			}
		}
	}
}

func TestHexesInRangeMonotonic(t *testing.T) {
	center := New(1, -2)
	for r := 0; r <= 3; r++ {
		inner := make(map[Hex]bool)
		for _, h := range HexesInRange(center, r) {
			inner[h] = true
		}
		outer := make(map[Hex]bool)
		for _, h := range HexesInRange(center, r+1) {
			outer[h] = true
		}
		for h := range inner {
			if !outer[h] {
				t.Errorf("hex %v in range %d but missing from range %d", h, r, r+1)
			}
		}
	}
}

func TestRing(t *testing.T) {
	center := New(0, 0)
	for r := 1; r <= 3; r++ {
		ring := Ring(center, r)
		if len(ring) != 6*r {
			t.Errorf("ring %d has %d hexes, want %d", r, len(ring), 6*r)
		}
		for _, h := range ring {
			if Distance(center, h) != r {
				t.Errorf("ring %d contains %v at distance %d", r, h, Distance(center, h))
			}
		}
	}
}

func TestOnRay(t *testing.T) {
	origin := New(0, 0)
	dir := Directions[1] // (1, 0, -1)

	for k := 1; k <= 5; k++ {
		target := origin.Add(dir.Scale(k))
		if !OnRay(origin, dir, target) {
			t.Errorf("expected %v on ray %v from origin", target, dir)
		}
	}

	if OnRay(origin, dir, origin) {
		t.Error("origin itself must not be on its own ray")
	}
	if OnRay(origin, dir, origin.Sub(dir)) {
		t.Error("negative multiples must not be on the ray")
	}
	if OnRay(origin, dir, New(2, -1)) {
		t.Error("off-axis coordinate must not be on the ray")
	}
}

func TestDirectionOf(t *testing.T) {
	for _, d := range Directions {
		got, steps, ok := DirectionOf(d.Scale(3))
		if !ok || got != d || steps != 3 {
			t.Errorf("DirectionOf(%v*3) = %v, %d, %v", d, got, steps, ok)
		}
	}
	if _, _, ok := DirectionOf(Hex{}); ok {
		t.Error("zero delta must not decompose")
	}
	if _, _, ok := DirectionOf(New(2, -1)); ok {
		t.Error("off-axis delta must not decompose")
	}
}

func TestBetween(t *testing.T) {
	a := New(0, 0)
	b := a.Add(Directions[0].Scale(4))
	tiles, ok := Between(a, b)
	if !ok {
		t.Fatal("expected a straight line")
	}
	if len(tiles) != 3 {
		t.Fatalf("expected 3 intermediate tiles, got %d", len(tiles))
	}
	for i, tile := range tiles {
		if want := a.Add(Directions[0].Scale(i + 1)); tile != want {
			t.Errorf("tile %d = %v, want %v", i, tile, want)
		}
	}

	if _, ok := Between(a, New(2, -1)); ok {
		t.Error("off-axis pair must not produce a line")
	}
	if _, ok := Between(a, a); ok {
		t.Error("equal coordinates must not produce a line")
	}
}
