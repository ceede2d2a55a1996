package parking

import (
	"fmt"
	"sort"
	"sync"
)

// AutoLevel selects the first level with a free matching slot, scanning in
// ascending level-number order.
const AutoLevel = 0

// Placement addresses one slot within the lot.
type Placement struct {
	Level int
	Slot  int
}

// LevelStatus is the per-level occupancy summary.
type LevelStatus struct {
	LevelNumber  int
	RegularFree  int
	RegularTotal int
	EVFree       int
	EVTotal      int
}

// LotStatus aggregates level summaries with lot-wide totals.
type LotStatus struct {
	Levels          []LevelStatus
	RegularOccupied int
	RegularCapacity int
	EVOccupied      int
	EVCapacity      int
}

// ParkingLot owns an ordered collection of levels and serializes every
// operation behind one mutex: allocation binds a vehicle in two steps and a
// concurrent caller must not win the same slot.
type ParkingLot struct {
	mu       sync.Mutex
	levels   map[int]*Level
	order    []int
	factory  *VehicleFactory
	searcher *VehicleSearcher
}

func NewParkingLot() *ParkingLot {
	return &ParkingLot{
		levels:   make(map[int]*Level),
		factory:  NewVehicleFactory(),
		searcher: NewVehicleSearcher(ColorStrategy{}),
	}
}

// AddLevel creates a level with fixed regular and EV capacities and returns
// the assigned level number. Passing AutoLevel assigns the next number after
// the current highest.
func (pl *ParkingLot) AddLevel(levelNumber, regularCapacity, evCapacity int) (int, error) {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	if levelNumber < 0 {
		return 0, fmt.Errorf("%w: level number must not be negative", ErrInvalidInput)
	}
	if levelNumber == AutoLevel {
		levelNumber = 1
		if n := len(pl.order); n > 0 {
			levelNumber = pl.order[n-1] + 1
		}
	}
	if _, exists := pl.levels[levelNumber]; exists {
		return 0, fmt.Errorf("%w: level %d already exists", ErrInvalidInput, levelNumber)
	}

	level, err := NewLevel(levelNumber, regularCapacity, evCapacity)
	if err != nil {
		return 0, err
	}

	pl.levels[levelNumber] = level
	i := sort.SearchInts(pl.order, levelNumber)
	pl.order = append(pl.order, 0)
	copy(pl.order[i+1:], pl.order[i:])
	pl.order[i] = levelNumber

	return levelNumber, nil
}

// Park constructs the vehicle and binds it to a free slot of the matching
// class. With AutoLevel, levels are scanned in ascending number order and the
// first with room wins; Park fails with ErrFull only when no level has room.
// Binding is all-or-nothing: on any failure no slot state changes.
func (pl *ParkingLot) Park(levelNumber int, registrationNumber, make, model, color string, electric, motorcycle bool) (Placement, error) {
	return pl.ParkWithCharge(levelNumber, registrationNumber, make, model, color, electric, motorcycle, nil)
}

// ParkWithCharge parks a vehicle and, for electric vehicles, applies an
// initial charge within the same critical section as the allocation, so no
// other caller can rebind the slot between the two steps. A nil charge leaves
// the default of zero.
func (pl *ParkingLot) ParkWithCharge(levelNumber int, registrationNumber, make, model, color string, electric, motorcycle bool, charge *int) (Placement, error) {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	vehicle, err := pl.factory.Create(registrationNumber, make, model, color, electric, motorcycle)
	if err != nil {
		return Placement{}, err
	}
	if pl.registrationParked(vehicle.RegistrationNumber) {
		return Placement{}, fmt.Errorf("%w: registration %s is already parked", ErrInvalidInput, vehicle.RegistrationNumber)
	}
	if charge != nil {
		if !vehicle.Electric() {
			return Placement{}, fmt.Errorf("%w: charge only applies to electric vehicles", ErrInvalidInput)
		}
		vehicle.SetCharge(*charge)
	}

	if levelNumber != AutoLevel {
		level, ok := pl.levels[levelNumber]
		if !ok {
			return Placement{}, fmt.Errorf("%w: level %d", ErrLevelNotFound, levelNumber)
		}
		slotNumber, err := level.Allocate(vehicle)
		if err != nil {
			return Placement{}, err
		}
		return Placement{Level: levelNumber, Slot: slotNumber}, nil
	}

	for _, number := range pl.order {
		slotNumber, err := pl.levels[number].Allocate(vehicle)
		if err == nil {
			return Placement{Level: number, Slot: slotNumber}, nil
		}
	}
	return Placement{}, ErrFull
}

// registrationParked reports whether any occupied slot of either class on
// any level holds the registration. Registrations identify a vehicle, so
// they are unique within the lot while parked.
func (pl *ParkingLot) registrationParked(registrationNumber string) bool {
	for _, number := range pl.order {
		level := pl.levels[number]
		for _, electric := range []bool{false, true} {
			for _, slot := range level.Slots(electric) {
				if slot.Occupied() && slot.Vehicle.RegistrationNumber == registrationNumber {
					return true
				}
			}
		}
	}
	return false
}

// Remove releases the addressed slot and returns the vehicle that left.
func (pl *ParkingLot) Remove(levelNumber, slotNumber int, electric bool) (*Vehicle, error) {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	level, ok := pl.levels[levelNumber]
	if !ok {
		return nil, fmt.Errorf("%w: level %d", ErrLevelNotFound, levelNumber)
	}
	return level.Release(slotNumber, electric)
}

// Find matches parked vehicles of one class against a criterion, returning
// placements ordered by ascending level number then slot number. No matches
// is not an error.
func (pl *ParkingLot) Find(criterion Criterion, value string, electric bool) ([]Placement, error) {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	strategy, err := strategyFor(criterion)
	if err != nil {
		return nil, err
	}
	pl.searcher.SetStrategy(strategy)

	var placements []Placement
	for _, number := range pl.order {
		level := pl.levels[number]
		for _, slotNumber := range pl.searcher.Search(level.Slots(electric), value) {
			placements = append(placements, Placement{Level: number, Slot: slotNumber})
		}
	}
	return placements, nil
}

// Status summarizes occupancy per level plus lot-wide totals.
func (pl *ParkingLot) Status() LotStatus {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	status := LotStatus{Levels: make([]LevelStatus, 0, len(pl.order))}
	for _, number := range pl.order {
		level := pl.levels[number]
		regularFree, regularTotal := level.Counts(false)
		evFree, evTotal := level.Counts(true)

		status.Levels = append(status.Levels, LevelStatus{
			LevelNumber:  number,
			RegularFree:  regularFree,
			RegularTotal: regularTotal,
			EVFree:       evFree,
			EVTotal:      evTotal,
		})
		status.RegularOccupied += regularTotal - regularFree
		status.RegularCapacity += regularTotal
		status.EVOccupied += evTotal - evFree
		status.EVCapacity += evTotal
	}
	return status
}

// SetCharge updates the charge of the vehicle occupying the addressed slot.
// The value is clamped to [0,100].
func (pl *ParkingLot) SetCharge(levelNumber, slotNumber int, electric bool, percent int) error {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	level, ok := pl.levels[levelNumber]
	if !ok {
		return fmt.Errorf("%w: level %d", ErrLevelNotFound, levelNumber)
	}

	slots := level.Slots(electric)
	if slotNumber < 1 || slotNumber > len(slots) || !slots[slotNumber-1].Occupied() {
		return fmt.Errorf("%w: slot %d", ErrNotFound, slotNumber)
	}

	slots[slotNumber-1].Vehicle.SetCharge(percent)
	return nil
}
