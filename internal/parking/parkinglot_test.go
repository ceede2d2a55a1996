package parking

import (
	"errors"
	"testing"
)

func newTestLot(t *testing.T) *ParkingLot {
	t.Helper()
	pl := NewParkingLot()
	if _, err := pl.AddLevel(1, 3, 2); err != nil {
		t.Fatalf("Unexpected error adding level 1: %s", err.Error())
	}
	if _, err := pl.AddLevel(2, 2, 1); err != nil {
		t.Fatalf("Unexpected error adding level 2: %s", err.Error())
	}
	return pl
}

func TestAddLevel(t *testing.T) {
	pl := NewParkingLot()

	number, err := pl.AddLevel(5, 2, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if number != 5 {
		t.Errorf("Expected level number 5, got %d", number)
	}

	number, err = pl.AddLevel(AutoLevel, 2, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if number != 6 {
		t.Errorf("Expected auto-assigned level number 6, got %d", number)
	}

	if _, err := pl.AddLevel(5, 1, 1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for duplicate level, got %v", err)
	}
	if _, err := pl.AddLevel(7, -1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for negative capacity, got %v", err)
	}
}

func TestParkExplicitLevel(t *testing.T) {
	pl := newTestLot(t)

	placement, err := pl.Park(2, "KA01HH1234", "Toyota", "Corolla", "White", false, false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if placement.Level != 2 || placement.Slot != 1 {
		t.Errorf("Expected placement {2 1}, got %+v", placement)
	}

	_, err = pl.Park(9, "KA01HH9999", "Toyota", "Corolla", "Black", false, false)
	if !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("Expected ErrLevelNotFound, got %v", err)
	}
}

func TestParkAutoScansAscendingLevels(t *testing.T) {
	pl := NewParkingLot()
	// Insert out of order; the scan must still go 1, 2, 3.
	pl.AddLevel(3, 1, 0)
	pl.AddLevel(1, 1, 0)
	pl.AddLevel(2, 1, 0)

	expected := []Placement{{1, 1}, {2, 1}, {3, 1}}
	for i, want := range expected {
		placement, err := pl.Park(AutoLevel, "CAR", "Honda", "Civic", "Blue", false, false)
		if err != nil {
			t.Fatalf("Unexpected error on park %d: %s", i+1, err.Error())
		}
		if placement != want {
			t.Errorf("Expected placement %+v, got %+v", want, placement)
		}
	}

	_, err := pl.Park(AutoLevel, "CAR4", "Honda", "Civic", "Blue", false, false)
	if !errors.Is(err, ErrFull) {
		t.Errorf("Expected ErrFull when every level is full, got %v", err)
	}
}

func TestParkFullClass(t *testing.T) {
	pl := NewParkingLot()
	pl.AddLevel(1, 1, 0)

	if _, err := pl.Park(1, "CAR1", "", "", "Red", false, false); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if _, err := pl.Park(1, "CAR2", "", "", "Red", false, false); !errors.Is(err, ErrFull) {
		t.Errorf("Expected ErrFull, got %v", err)
	}
	// No EV slots anywhere: an EV must not take the regular space.
	if _, err := pl.Park(AutoLevel, "EV1", "", "", "Red", true, false); !errors.Is(err, ErrFull) {
		t.Errorf("Expected ErrFull for EV, got %v", err)
	}
}

func TestParkDuplicateRegistration(t *testing.T) {
	pl := newTestLot(t)

	if _, err := pl.Park(1, "ABC123", "Toyota", "Corolla", "White", false, false); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	// Same registration again, on any level and in either class.
	if _, err := pl.Park(1, "ABC123", "Honda", "Civic", "Blue", false, false); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for duplicate registration, got %v", err)
	}
	if _, err := pl.Park(2, "ABC123", "Honda", "Civic", "Blue", false, false); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for duplicate on another level, got %v", err)
	}
	if _, err := pl.Park(1, "ABC123", "Tesla", "Model 3", "Red", true, false); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for duplicate in the EV class, got %v", err)
	}

	// A registration search must keep returning a single slot.
	placements, err := pl.Find(CriterionRegistration, "ABC123", false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if len(placements) != 1 {
		t.Errorf("Expected exactly one slot for ABC123, got %v", placements)
	}

	// Once removed, the registration may be parked again.
	if _, err := pl.Remove(1, 1, false); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if _, err := pl.Park(2, "ABC123", "Toyota", "Corolla", "White", false, false); err != nil {
		t.Errorf("Unexpected error re-parking after removal: %v", err)
	}
}

func TestParkWithCharge(t *testing.T) {
	pl := newTestLot(t)

	charge := 130
	placement, err := pl.ParkWithCharge(1, "EV001", "Tesla", "Model 3", "Red", true, false, &charge)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	vehicle, err := pl.Remove(placement.Level, placement.Slot, true)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if vehicle.Charge != 100 {
		t.Errorf("Expected charge clamped to 100, got %d", vehicle.Charge)
	}

	// Charge on a non-electric vehicle fails without binding a slot.
	if _, err := pl.ParkWithCharge(1, "CAR1", "Honda", "Civic", "Blue", false, false, &charge); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for charge on non-electric vehicle, got %v", err)
	}
	status := pl.Status()
	if status.RegularOccupied != 0 || status.EVOccupied != 0 {
		t.Errorf("Expected no occupancy after failed park, got %+v", status)
	}
}

func TestParkInvalidRegistration(t *testing.T) {
	pl := newTestLot(t)

	_, err := pl.Park(1, "", "Toyota", "Corolla", "White", false, false)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}

	// Nothing may be bound on a failed park.
	status := pl.Status()
	if status.RegularOccupied != 0 || status.EVOccupied != 0 {
		t.Errorf("Expected no occupancy after failed park, got %+v", status)
	}
}

func TestRemoveRoundTrip(t *testing.T) {
	pl := newTestLot(t)

	before := pl.Status()

	placement, err := pl.Park(1, "EV001", "Tesla", "Model 3", "Red", true, false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	vehicle, err := pl.Remove(placement.Level, placement.Slot, true)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if vehicle.RegistrationNumber != "EV001" || vehicle.Kind != KindElectricCar {
		t.Errorf("Expected removed vehicle EV001 electric car, got %+v", vehicle)
	}

	after := pl.Status()
	if after.RegularOccupied != before.RegularOccupied || after.EVOccupied != before.EVOccupied {
		t.Errorf("Expected occupancy to return to pre-park value, got %+v", after)
	}
	for i, level := range after.Levels {
		if level != before.Levels[i] {
			t.Errorf("Expected level status %+v, got %+v", before.Levels[i], level)
		}
	}
}

func TestRemoveErrors(t *testing.T) {
	pl := newTestLot(t)

	if _, err := pl.Remove(9, 1, false); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("Expected ErrLevelNotFound, got %v", err)
	}
	if _, err := pl.Remove(1, 1, false); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for empty slot, got %v", err)
	}
	if _, err := pl.Remove(1, 99, false); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for out-of-range slot, got %v", err)
	}
}

func TestFindAcrossLevels(t *testing.T) {
	pl := newTestLot(t)

	pl.Park(1, "REG1", "Toyota", "Corolla", "Red", false, false)
	pl.Park(1, "REG2", "Honda", "Civic", "Blue", false, false)
	pl.Park(1, "REG3", "Toyota", "Camry", "Red", false, false)
	pl.Park(2, "REG4", "Toyota", "Corolla", "red", false, false)

	placements, err := pl.Find(CriterionColor, "RED", false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	expected := []Placement{{1, 1}, {1, 3}, {2, 1}}
	if len(placements) != len(expected) {
		t.Fatalf("Expected %d placements, got %d: %v", len(expected), len(placements), placements)
	}
	for i, want := range expected {
		if placements[i] != want {
			t.Errorf("Expected placement %+v at position %d, got %+v", want, i, placements[i])
		}
	}
}

func TestFindClassIsolation(t *testing.T) {
	pl := newTestLot(t)

	// Same color in regular slot 1 and EV slot 1 on the same level.
	pl.Park(1, "REG1", "Toyota", "Corolla", "Red", false, false)
	pl.Park(1, "EV001", "Tesla", "Model 3", "Red", true, false)

	regular, err := pl.Find(CriterionColor, "red", false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if len(regular) != 1 || regular[0] != (Placement{1, 1}) {
		t.Errorf("Expected regular search to return [{1 1}], got %v", regular)
	}

	ev, err := pl.Find(CriterionColor, "red", true)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if len(ev) != 1 || ev[0] != (Placement{1, 1}) {
		t.Errorf("Expected EV search to return [{1 1}], got %v", ev)
	}
}

func TestFindByRegistration(t *testing.T) {
	pl := newTestLot(t)
	pl.Park(1, "ABC123", "Toyota", "Corolla", "White", false, false)

	placements, err := pl.Find(CriterionRegistration, "ABC123", false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if len(placements) != 1 {
		t.Errorf("Expected at most one match for a registration, got %v", placements)
	}

	placements, err = pl.Find(CriterionRegistration, "abc123", false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if len(placements) != 0 {
		t.Errorf("Expected registration match to be case-sensitive, got %v", placements)
	}
}

func TestFindNoMatchesIsNotAnError(t *testing.T) {
	pl := newTestLot(t)

	placements, err := pl.Find(CriterionColor, "chartreuse", false)
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if len(placements) != 0 {
		t.Errorf("Expected empty result, got %v", placements)
	}
}

func TestFindUnknownCriterion(t *testing.T) {
	pl := newTestLot(t)

	_, err := pl.Find(Criterion("weight"), "heavy", false)
	if !errors.Is(err, ErrUnknownCriterion) {
		t.Errorf("Expected ErrUnknownCriterion, got %v", err)
	}
}

func TestStatusAggregation(t *testing.T) {
	pl := newTestLot(t)

	pl.Park(1, "REG1", "", "", "Red", false, false)
	pl.Park(1, "EV001", "", "", "Red", true, false)
	pl.Park(2, "REG2", "", "", "Blue", false, false)

	status := pl.Status()

	if len(status.Levels) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(status.Levels))
	}

	l1, l2 := status.Levels[0], status.Levels[1]
	if l1.LevelNumber != 1 || l1.RegularFree != 2 || l1.RegularTotal != 3 || l1.EVFree != 1 || l1.EVTotal != 2 {
		t.Errorf("Unexpected level 1 status: %+v", l1)
	}
	if l2.LevelNumber != 2 || l2.RegularFree != 1 || l2.RegularTotal != 2 || l2.EVFree != 1 || l2.EVTotal != 1 {
		t.Errorf("Unexpected level 2 status: %+v", l2)
	}

	// Lot-wide totals must equal the sums over levels.
	wantRegularOccupied := (l1.RegularTotal - l1.RegularFree) + (l2.RegularTotal - l2.RegularFree)
	wantEVOccupied := (l1.EVTotal - l1.EVFree) + (l2.EVTotal - l2.EVFree)
	if status.RegularOccupied != wantRegularOccupied {
		t.Errorf("Expected %d regular occupied, got %d", wantRegularOccupied, status.RegularOccupied)
	}
	if status.RegularCapacity != 5 {
		t.Errorf("Expected regular capacity 5, got %d", status.RegularCapacity)
	}
	if status.EVOccupied != wantEVOccupied {
		t.Errorf("Expected %d EV occupied, got %d", wantEVOccupied, status.EVOccupied)
	}
	if status.EVCapacity != 3 {
		t.Errorf("Expected EV capacity 3, got %d", status.EVCapacity)
	}
}

func TestSetCharge(t *testing.T) {
	pl := newTestLot(t)

	placement, err := pl.Park(1, "EV001", "Tesla", "Model 3", "Red", true, false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	if err := pl.SetCharge(placement.Level, placement.Slot, true, 130); err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	vehicle, err := pl.Remove(placement.Level, placement.Slot, true)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if vehicle.Charge != 100 {
		t.Errorf("Expected charge clamped to 100, got %d", vehicle.Charge)
	}

	if err := pl.SetCharge(9, 1, true, 50); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("Expected ErrLevelNotFound, got %v", err)
	}
	if err := pl.SetCharge(placement.Level, placement.Slot, true, 50); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for emptied slot, got %v", err)
	}
}

func TestReuseFreedSlot(t *testing.T) {
	pl := NewParkingLot()
	pl.AddLevel(1, 3, 0)

	pl.Park(1, "CAR1", "", "", "White", false, false)
	pl.Park(1, "CAR2", "", "", "Black", false, false)
	pl.Remove(1, 1, false)

	placement, err := pl.Park(1, "CAR3", "", "", "Red", false, false)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if placement.Slot != 1 {
		t.Errorf("Expected to reuse slot 1, got slot %d", placement.Slot)
	}
}
