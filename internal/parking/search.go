package parking

import "strings"

// Criterion names the vehicle attribute a search matches against.
type Criterion string

const (
	CriterionColor        Criterion = "color"
	CriterionMake         Criterion = "make"
	CriterionModel        Criterion = "model"
	CriterionRegistration Criterion = "registration"
)

// SearchStrategy is a swappable predicate matching a vehicle against a
// criterion value.
type SearchStrategy interface {
	Match(vehicle *Vehicle, criterion string) bool
}

// ColorStrategy matches the vehicle color, case-insensitively.
type ColorStrategy struct{}

func (ColorStrategy) Match(vehicle *Vehicle, criterion string) bool {
	return strings.EqualFold(vehicle.Color, criterion)
}

// MakeStrategy matches the vehicle make, case-insensitively.
type MakeStrategy struct{}

func (MakeStrategy) Match(vehicle *Vehicle, criterion string) bool {
	return strings.EqualFold(vehicle.Make, criterion)
}

// ModelStrategy matches the vehicle model, case-insensitively.
type ModelStrategy struct{}

func (ModelStrategy) Match(vehicle *Vehicle, criterion string) bool {
	return strings.EqualFold(vehicle.Model, criterion)
}

// RegistrationStrategy matches the registration number exactly. Registration
// numbers are identifiers, so the comparison is case-sensitive.
type RegistrationStrategy struct{}

func (RegistrationStrategy) Match(vehicle *Vehicle, criterion string) bool {
	return vehicle.RegistrationNumber == criterion
}

// strategyFor resolves a criterion to its strategy. Unknown criteria are
// rejected here, before the searcher runs.
func strategyFor(criterion Criterion) (SearchStrategy, error) {
	switch criterion {
	case CriterionColor:
		return ColorStrategy{}, nil
	case CriterionMake:
		return MakeStrategy{}, nil
	case CriterionModel:
		return ModelStrategy{}, nil
	case CriterionRegistration:
		return RegistrationStrategy{}, nil
	default:
		return nil, ErrUnknownCriterion
	}
}

// VehicleSearcher runs its current strategy over a slot sequence. The
// strategy can be swapped between searches.
type VehicleSearcher struct {
	strategy SearchStrategy
}

func NewVehicleSearcher(strategy SearchStrategy) *VehicleSearcher {
	return &VehicleSearcher{strategy: strategy}
}

func (vs *VehicleSearcher) SetStrategy(strategy SearchStrategy) {
	vs.strategy = strategy
}

// Search returns the numbers of occupied slots whose vehicle matches the
// criterion, in ascending slot order. Empty slots are skipped.
func (vs *VehicleSearcher) Search(slots []*Slot, criterion string) []int {
	var matches []int
	for _, slot := range slots {
		if slot.Occupied() && vs.strategy.Match(slot.Vehicle, criterion) {
			matches = append(matches, slot.Number)
		}
	}
	return matches
}
