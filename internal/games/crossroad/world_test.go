package crossroad

import (
	"testing"

	"github.com/vovakirdan/tui-crossroad/internal/config"
	"github.com/vovakirdan/tui-crossroad/internal/core"
)

func newTestWorld(seed int64) *World {
	cfg := config.DefaultCrossroadConfig()
	w := NewWorld(cfg, core.NewRNG(seed))
	w.Init(cfg.World.Width, cfg.World.Tile)
	return w
}

// singleCarWorld builds a world whose only car sits in lane 1.
func singleCarWorld(car Car) *World {
	cfg := config.DefaultCrossroadConfig()
	cfg.World.WrapMargin = 0
	w := NewWorld(cfg, core.NewRNG(1))
	w.width = 800
	w.tile = 48
	w.laneCount = 2
	w.lanes[0] = Lane{Index: 0, YTop: 0}
	w.lanes[1] = Lane{Index: 1, YTop: -48, IsRoad: true, carCount: 1}
	w.lanes[1].cars[0] = car
	return w
}

func TestWorldLaneLayout(t *testing.T) {
	w := newTestWorld(7)

	if w.LaneCount() != 48 {
		t.Fatalf("LaneCount = %d, want 48", w.LaneCount())
	}

	for i := 0; i < w.LaneCount(); i++ {
		ln, ok := w.Lane(i)
		if !ok {
			t.Fatalf("Lane(%d) missing", i)
		}
		if ln.YTop != -float64(i)*48 {
			t.Errorf("lane %d YTop = %v, want %v", i, ln.YTop, -float64(i)*48)
		}
		if ln.IsRoad != (i%2 == 1) {
			t.Errorf("lane %d IsRoad = %v", i, ln.IsRoad)
		}
		if !ln.IsRoad && ln.CarCount() != 0 {
			t.Errorf("safe lane %d has %d cars", i, ln.CarCount())
		}
		if ln.IsRoad && (ln.CarCount() < 2 || ln.CarCount() > 4) {
			t.Errorf("road lane %d has %d cars, want 2..4", i, ln.CarCount())
		}
	}

	if _, ok := w.Lane(-1); ok {
		t.Error("Lane(-1) should not exist")
	}
	if _, ok := w.Lane(w.LaneCount()); ok {
		t.Error("Lane(LaneCount) should not exist")
	}
}

func TestWorldCarsShareLaneDirection(t *testing.T) {
	w := newTestWorld(99)

	for i := 1; i < w.LaneCount(); i += 2 {
		ln, _ := w.Lane(i)
		cars := ln.Cars()
		for _, car := range cars {
			if car.Dir != cars[0].Dir {
				t.Fatalf("lane %d mixes directions", i)
			}
			if car.Dir != 1 && car.Dir != -1 {
				t.Errorf("lane %d dir = %d", i, car.Dir)
			}
			if car.Box.X < -car.Box.W || car.Box.X > w.Width() {
				t.Errorf("lane %d car starts outside the playfield at x=%v", i, car.Box.X)
			}
			if car.Box.Y < ln.YTop || car.Box.Bottom() > ln.YTop+w.Tile() {
				t.Errorf("lane %d car not inside its lane", i)
			}
			if car.Variant < 0 || car.Variant >= config.CarVariants {
				t.Errorf("lane %d car variant %d out of range", i, car.Variant)
			}
		}
	}
}

func TestWorldGenerationIsDeterministic(t *testing.T) {
	a := newTestWorld(2024)
	b := newTestWorld(2024)

	for i := 0; i < a.LaneCount(); i++ {
		la, _ := a.Lane(i)
		lb, _ := b.Lane(i)
		ca, cb := la.Cars(), lb.Cars()
		if len(ca) != len(cb) {
			t.Fatalf("lane %d car count differs", i)
		}
		for c := range ca {
			if ca[c] != cb[c] {
				t.Fatalf("lane %d car %d differs: %+v vs %+v", i, c, ca[c], cb[c])
			}
		}
	}
}

func TestWorldLaneCountClamped(t *testing.T) {
	tests := []struct {
		name  string
		lanes int
		want  int
	}{
		{"too few", 0, config.MinLanes},
		{"too many", 1000, config.MaxLanes},
		{"in range", 12, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultCrossroadConfig()
			cfg.World.LaneCount = tt.lanes
			w := NewWorld(cfg, core.NewRNG(1))
			w.Init(cfg.World.Width, cfg.World.Tile)
			if w.LaneCount() != tt.want {
				t.Errorf("LaneCount = %d, want %d", w.LaneCount(), tt.want)
			}
		})
	}
}

func TestWorldUpdateMovesCars(t *testing.T) {
	w := singleCarWorld(Car{
		Box:       core.NewRectF(100, -43, 60, 38),
		BaseSpeed: 100,
		Dir:       -1,
		Active:    true,
	})

	w.Update(0.5, 2.0)

	ln, _ := w.Lane(1)
	if got := ln.Cars()[0].Box.X; got != 0 {
		t.Errorf("x = %v, want 0 (100 - 100*2*0.5)", got)
	}

	w.Update(0, 1)
	w.Update(-1, 1)
	ln, _ = w.Lane(1)
	if got := ln.Cars()[0].Box.X; got != 0 {
		t.Errorf("non-positive dt moved the car to %v", got)
	}
}

func TestWorldWrapRight(t *testing.T) {
	const width = 60.0
	w := singleCarWorld(Car{
		Box:       core.NewRectF(0, -43, width, 38),
		BaseSpeed: 100,
		Dir:       1,
		Active:    true,
	})

	w.Update(8.0, 1.0)

	ln, _ := w.Lane(1)
	x := ln.Cars()[0].Box.X
	if x < -width || x > -width+2*48 {
		t.Errorf("wrapped x = %v, want in [%v, %v]", x, -width, -width+2*48)
	}
	if ln.Cars()[0].BaseSpeed != 100 || ln.Cars()[0].Box.W != width {
		t.Error("wrap must keep speed and size")
	}
}

func TestWorldWrapLeft(t *testing.T) {
	w := singleCarWorld(Car{
		Box:       core.NewRectF(10, -43, 60, 38),
		BaseSpeed: 100,
		Dir:       -1,
		Active:    true,
	})

	w.Update(1.0, 1.0)

	ln, _ := w.Lane(1)
	x := ln.Cars()[0].Box.X
	if x < 800-2*48 || x > 800 {
		t.Errorf("wrapped x = %v, want in [%v, 800]", x, 800-2*48)
	}
}

func TestWorldNoCarStaysOutside(t *testing.T) {
	w := newTestWorld(5)

	for frame := 0; frame < 2000; frame++ {
		w.Update(1.0/60, 3.0)
		for i := 1; i < w.LaneCount(); i += 2 {
			ln, _ := w.Lane(i)
			for _, car := range ln.Cars() {
				if car.Box.X >= w.Width()+w.wrapMargin || car.Box.Right() <= -w.wrapMargin {
					t.Fatalf("frame %d lane %d: car left at x=%v", frame, i, car.Box.X)
				}
			}
		}
	}
}

func TestWorldInactiveCarsIgnored(t *testing.T) {
	w := singleCarWorld(Car{
		Box:       core.NewRectF(100, -43, 60, 38),
		BaseSpeed: 100,
		Dir:       1,
		Active:    false,
	})

	w.Update(1, 1)
	ln, _ := w.Lane(1)
	if ln.Cars()[0].Box.X != 100 {
		t.Error("inactive car moved")
	}
	if w.CheckCollision(core.NewRectF(110, -40, 10, 10)) {
		t.Error("inactive car collided")
	}
}

func TestWorldCheckCollision(t *testing.T) {
	w := singleCarWorld(Car{
		Box:       core.NewRectF(100, -48, 100, 48),
		BaseSpeed: 0,
		Dir:       1,
		Active:    true,
	})

	tests := []struct {
		name string
		box  core.RectF
		want bool
	}{
		{"fully inside", core.NewRectF(120, -40, 20, 20), true},
		{"partial overlap", core.NewRectF(190, -30, 48, 48), true},
		{"shares right edge", core.NewRectF(200, -48, 48, 48), false},
		{"shares bottom edge", core.NewRectF(120, 0, 48, 48), false},
		{"far away", core.NewRectF(500, 0, 48, 48), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.CheckCollision(tt.box); got != tt.want {
				t.Errorf("CheckCollision = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWorldCheckCollisionInset(t *testing.T) {
	w := newTestWorld(11)

	// Inset 0 matches the plain query everywhere.
	for y := 0.0; y > -10*48; y -= 12 {
		for x := -48.0; x < 848; x += 16 {
			box := core.NewRectF(x, y, 48, 48)
			if w.CheckCollisionInset(box, 0) != w.CheckCollision(box) {
				t.Fatalf("inset 0 differs at (%v, %v)", x, y)
			}
		}
	}

	// A box clipping a car by less than the inset does not collide.
	s := singleCarWorld(Car{
		Box:    core.NewRectF(100, -48, 100, 48),
		Dir:    1,
		Active: true,
	})
	box := core.NewRectF(197, -48, 48, 48)
	if !s.CheckCollision(box) {
		t.Fatal("full box should touch the car")
	}
	if s.CheckCollisionInset(box, 4) {
		t.Error("inset box should clear the car")
	}
}

func TestWorldLanesIn(t *testing.T) {
	w := newTestWorld(3)

	lanes := w.LanesIn(-3*48, 48)
	if len(lanes) != 4 {
		t.Fatalf("LanesIn returned %d lanes, want 4", len(lanes))
	}
	for i, ln := range lanes {
		if ln.Index != i {
			t.Errorf("lanes[%d].Index = %d", i, ln.Index)
		}
	}

	if got := w.LanesIn(-1e6, -1e5); len(got) != 0 {
		t.Errorf("band above the world returned %d lanes", len(got))
	}
}
