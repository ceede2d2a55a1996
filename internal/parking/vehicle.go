package parking

// Kind identifies the variant of a parked vehicle. Electric-ness is a
// property of the kind rather than a parallel type hierarchy.
type Kind int

const (
	KindCar Kind = iota
	KindMotorcycle
	KindTruck
	KindBus
	KindElectricCar
	KindElectricBike
)

func (k Kind) String() string {
	switch k {
	case KindCar:
		return "car"
	case KindMotorcycle:
		return "motorcycle"
	case KindTruck:
		return "truck"
	case KindBus:
		return "bus"
	case KindElectricCar:
		return "electric_car"
	case KindElectricBike:
		return "electric_bike"
	default:
		return "unknown"
	}
}

// Electric reports whether vehicles of this kind occupy EV slots.
func (k Kind) Electric() bool {
	return k == KindElectricCar || k == KindElectricBike
}

type Vehicle struct {
	RegistrationNumber string
	Make               string
	Model              string
	Color              string
	Kind               Kind
	Charge             int // percent, meaningful only for electric kinds
}

func NewVehicle(registrationNumber, make, model, color string, kind Kind) *Vehicle {
	return &Vehicle{
		RegistrationNumber: registrationNumber,
		Make:               make,
		Model:              model,
		Color:              color,
		Kind:               kind,
	}
}

// Electric reports whether the vehicle must be parked in an EV slot.
func (v *Vehicle) Electric() bool {
	return v.Kind.Electric()
}

// SetCharge updates the charge level, clamped to [0,100].
func (v *Vehicle) SetCharge(percent int) {
	v.Charge = clampCharge(percent)
}

func clampCharge(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
