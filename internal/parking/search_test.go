package parking

import (
	"errors"
	"testing"
)

func occupiedSlots(t *testing.T, colors ...string) []*Slot {
	t.Helper()
	slots := make([]*Slot, len(colors))
	for i, color := range colors {
		slots[i] = NewSlot(i+1, false)
		if color != "" {
			slots[i].Park(NewVehicle("REG"+color, "Make", "Model", color, KindCar))
		}
	}
	return slots
}

func TestColorSearchCaseInsensitive(t *testing.T) {
	slots := occupiedSlots(t, "Red", "Blue", "Red")
	searcher := NewVehicleSearcher(ColorStrategy{})

	for _, query := range []string{"red", "RED", "Red"} {
		matches := searcher.Search(slots, query)
		if len(matches) != 2 || matches[0] != 1 || matches[1] != 3 {
			t.Errorf("Expected [1 3] for query %q, got %v", query, matches)
		}
	}
}

func TestSearchSkipsEmptySlots(t *testing.T) {
	slots := occupiedSlots(t, "Red", "", "Red")
	searcher := NewVehicleSearcher(ColorStrategy{})

	matches := searcher.Search(slots, "red")
	if len(matches) != 2 || matches[0] != 1 || matches[1] != 3 {
		t.Errorf("Expected [1 3], got %v", matches)
	}
}

func TestRegistrationSearchCaseSensitive(t *testing.T) {
	slots := []*Slot{NewSlot(1, false)}
	slots[0].Park(NewVehicle("ABC123", "Make", "Model", "Red", KindCar))
	searcher := NewVehicleSearcher(RegistrationStrategy{})

	if matches := searcher.Search(slots, "ABC123"); len(matches) != 1 || matches[0] != 1 {
		t.Errorf("Expected [1], got %v", matches)
	}
	if matches := searcher.Search(slots, "abc123"); len(matches) != 0 {
		t.Errorf("Expected no matches for lowercased registration, got %v", matches)
	}
}

func TestMakeAndModelStrategies(t *testing.T) {
	slot := NewSlot(1, false)
	slot.Park(NewVehicle("REG1", "Toyota", "Corolla", "White", KindCar))
	slots := []*Slot{slot}

	searcher := NewVehicleSearcher(MakeStrategy{})
	if matches := searcher.Search(slots, "toyota"); len(matches) != 1 {
		t.Errorf("Expected make match, got %v", matches)
	}

	searcher.SetStrategy(ModelStrategy{})
	if matches := searcher.Search(slots, "COROLLA"); len(matches) != 1 {
		t.Errorf("Expected model match after strategy swap, got %v", matches)
	}
	if matches := searcher.Search(slots, "Camry"); len(matches) != 0 {
		t.Errorf("Expected no model match, got %v", matches)
	}
}

func TestStrategyForUnknownCriterion(t *testing.T) {
	if _, err := strategyFor(Criterion("weight")); !errors.Is(err, ErrUnknownCriterion) {
		t.Errorf("Expected ErrUnknownCriterion, got %v", err)
	}

	for _, criterion := range []Criterion{CriterionColor, CriterionMake, CriterionModel, CriterionRegistration} {
		if _, err := strategyFor(criterion); err != nil {
			t.Errorf("Unexpected error for criterion %q: %v", criterion, err)
		}
	}
}
