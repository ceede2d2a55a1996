package parking

import "fmt"

// Level is a partition of the lot with fixed regular and EV slot counts,
// sized at creation and never resized. Slot numbers within each class are
// contiguous starting at 1.
type Level struct {
	Number  int
	regular []*Slot
	ev      []*Slot
}

func NewLevel(number, regularCapacity, evCapacity int) (*Level, error) {
	if regularCapacity < 0 || evCapacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}

	regular := make([]*Slot, regularCapacity)
	for i := range regular {
		regular[i] = NewSlot(i+1, false)
	}

	ev := make([]*Slot, evCapacity)
	for i := range ev {
		ev[i] = NewSlot(i+1, true)
	}

	return &Level{
		Number:  number,
		regular: regular,
		ev:      ev,
	}, nil
}

// Slots returns the slot sequence of the requested class, in slot order.
func (l *Level) Slots(electric bool) []*Slot {
	if electric {
		return l.ev
	}
	return l.regular
}

// Allocate binds the vehicle to the lowest-numbered free slot of the matching
// class. An electric vehicle never takes a regular slot and vice versa.
func (l *Level) Allocate(vehicle *Vehicle) (int, error) {
	for _, slot := range l.Slots(vehicle.Electric()) {
		if !slot.Occupied() {
			slot.Park(vehicle)
			return slot.Number, nil
		}
	}
	return 0, ErrFull
}

// Release clears the addressed slot and returns the vehicle that occupied it.
func (l *Level) Release(slotNumber int, electric bool) (*Vehicle, error) {
	slots := l.Slots(electric)
	if slotNumber < 1 || slotNumber > len(slots) {
		return nil, fmt.Errorf("%w: slot %d does not exist", ErrNotFound, slotNumber)
	}

	slot := slots[slotNumber-1]
	if !slot.Occupied() {
		return nil, fmt.Errorf("%w: slot %d is already empty", ErrNotFound, slotNumber)
	}

	return slot.Leave(), nil
}

// Counts returns the free and total slot counts for the requested class.
func (l *Level) Counts(electric bool) (free, total int) {
	slots := l.Slots(electric)
	for _, slot := range slots {
		if !slot.Occupied() {
			free++
		}
	}
	return free, len(slots)
}
