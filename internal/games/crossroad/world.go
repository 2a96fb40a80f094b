package crossroad

import (
	"github.com/vovakirdan/tui-crossroad/internal/config"
	"github.com/vovakirdan/tui-crossroad/internal/core"
)

// Car is an obstacle confined to one road lane. Only its X changes after
// generation; when it leaves the playfield it is wrapped back to the other side.
type Car struct {
	Box       core.RectF
	BaseSpeed float64 // px/s before the difficulty multiplier
	Dir       int     // -1 left, +1 right
	Active    bool
	Variant   int // Cosmetic, in [0, config.CarVariants)
}

// Lane is one tile-high horizontal strip of the world.
type Lane struct {
	Index    int
	YTop     float64
	IsRoad   bool
	carCount int
	cars     [config.MaxCarsPerLane]Car
}

// CarCount returns the number of cars generated for the lane.
func (l *Lane) CarCount() int {
	return l.carCount
}

// Cars returns a copy of the lane's cars.
func (l *Lane) Cars() []Car {
	out := make([]Car, l.carCount)
	copy(out, l.cars[:l.carCount])
	return out
}

// World owns the lane grid and every car in it.
// Lanes and cars live in fixed-capacity arrays; nothing is allocated per frame.
type World struct {
	rng        core.RNG
	cars       config.CrossroadCars
	laneCount  int
	wrapMargin float64

	width float64
	tile  float64
	lanes [config.MaxLanes]Lane
}

// NewWorld creates an empty world. Init must be called before use.
func NewWorld(cfg config.CrossroadConfig, rng core.RNG) *World {
	return &World{
		rng:        rng,
		cars:       cfg.Cars,
		laneCount:  core.Clamp(cfg.World.LaneCount, config.MinLanes, config.MaxLanes),
		wrapMargin: cfg.World.WrapMargin,
	}
}

// Init generates all lanes and cars. Lane i sits at y = -i*tile, so higher
// rows are further up the screen. Odd lanes are roads; lane 0 is always grass.
func (w *World) Init(width, tile float64) {
	w.width = width
	w.tile = tile

	for i := 0; i < w.laneCount; i++ {
		ln := &w.lanes[i]
		*ln = Lane{
			Index:  i,
			YTop:   -float64(i) * tile,
			IsRoad: i%2 == 1,
		}
		if ln.IsRoad {
			w.populate(ln)
		}
	}
	for i := w.laneCount; i < config.MaxLanes; i++ {
		w.lanes[i] = Lane{}
	}
}

// populate fills a road lane with cars sharing one direction and a lane speed.
func (w *World) populate(ln *Lane) {
	count := w.rng.UniformInt(w.cars.MinPerLane, w.cars.MaxPerLane)
	ln.carCount = core.Clamp(count, 0, config.MaxCarsPerLane)

	dir := 1
	if w.rng.UniformInt(0, 1) == 0 {
		dir = -1
	}
	laneSpeed := w.rng.UniformFloat(w.cars.MinLaneSpeed, w.cars.MaxLaneSpeed)
	height := w.tile * w.cars.Height

	for c := 0; c < ln.carCount; c++ {
		length := w.tile * w.rng.UniformFloat(w.cars.MinLength, w.cars.MaxLength)
		x := w.rng.UniformFloat(-length, w.width)

		ln.cars[c] = Car{
			Box:       core.NewRectF(x, ln.YTop+(w.tile-height)*0.5, length, height),
			BaseSpeed: laneSpeed * w.rng.UniformFloat(w.cars.MinSpeedFactor, w.cars.MaxSpeedFactor),
			Dir:       dir,
			Active:    true,
			Variant:   w.rng.UniformInt(0, config.CarVariants-1),
		}
	}
}

// Update moves every active car by dir*speed*difficulty*dt and wraps cars
// whose trailing edge has passed the far bound.
func (w *World) Update(dt, difficulty float64) {
	if dt <= 0 {
		return
	}

	for i := 0; i < w.laneCount; i++ {
		ln := &w.lanes[i]
		if !ln.IsRoad {
			continue
		}
		for c := 0; c < ln.carCount; c++ {
			car := &ln.cars[c]
			if !car.Active {
				continue
			}
			car.Box.X += float64(car.Dir) * car.BaseSpeed * difficulty * dt
			w.wrap(car)
		}
	}
}

// wrap recycles a car that has left the playfield. It re-enters on the side
// it came from, up to two tiles in. Speed, size and identity are kept.
func (w *World) wrap(car *Car) {
	switch {
	case car.Dir > 0 && car.Box.X >= w.width+w.wrapMargin:
		car.Box.X = -car.Box.W + w.rng.UniformFloat(0, 2*w.tile)
	case car.Dir < 0 && car.Box.Right() <= -w.wrapMargin:
		car.Box.X = w.width - w.rng.UniformFloat(0, 2*w.tile)
	}
}

// CheckCollision reports whether box overlaps any active car with positive area.
func (w *World) CheckCollision(box core.RectF) bool {
	for i := 0; i < w.laneCount; i++ {
		ln := &w.lanes[i]
		if !ln.IsRoad {
			continue
		}
		for c := 0; c < ln.carCount; c++ {
			car := &ln.cars[c]
			if car.Active && box.Intersects(car.Box) {
				return true
			}
		}
	}
	return false
}

// CheckCollisionInset is CheckCollision with box shrunk by inset on each side.
func (w *World) CheckCollisionInset(box core.RectF, inset float64) bool {
	return w.CheckCollision(box.Inset(inset))
}

// LaneCount returns the number of generated lanes.
func (w *World) LaneCount() int {
	return w.laneCount
}

// Width returns the horizontal extent of the playfield.
func (w *World) Width() float64 {
	return w.width
}

// Tile returns the lane height.
func (w *World) Tile() float64 {
	return w.tile
}

// Lane returns a copy of lane i. Out-of-range indices return false.
func (w *World) Lane(i int) (Lane, bool) {
	if i < 0 || i >= w.laneCount {
		return Lane{}, false
	}
	return w.lanes[i], true
}

// LanesIn returns copies of the lanes overlapping the vertical band [top, bottom).
func (w *World) LanesIn(top, bottom float64) []Lane {
	out := make([]Lane, 0, 16)
	for i := 0; i < w.laneCount; i++ {
		ln := w.lanes[i]
		if ln.YTop+w.tile <= top || ln.YTop >= bottom {
			continue
		}
		out = append(out, ln)
	}
	return out
}
