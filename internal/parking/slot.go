package parking

// Slot is a single addressable parking space. Numbers are 1-based and stable
// within a level's class; a slot holds at most one vehicle.
type Slot struct {
	Number   int
	Electric bool
	Vehicle  *Vehicle
}

func NewSlot(number int, electric bool) *Slot {
	return &Slot{
		Number:   number,
		Electric: electric,
	}
}

// Occupied reports whether a vehicle is bound to this slot.
func (s *Slot) Occupied() bool {
	return s.Vehicle != nil
}

func (s *Slot) Park(vehicle *Vehicle) {
	s.Vehicle = vehicle
}

func (s *Slot) Leave() *Vehicle {
	vehicle := s.Vehicle
	s.Vehicle = nil
	return vehicle
}
