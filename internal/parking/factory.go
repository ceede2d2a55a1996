package parking

import (
	"fmt"
	"strings"
)

// VehicleFactory is the single creation entry point for vehicles. New vehicle
// kinds are added here and in the Kind enum; nothing else needs to change.
type VehicleFactory struct{}

func NewVehicleFactory() *VehicleFactory {
	return &VehicleFactory{}
}

// Create builds a vehicle from raw attributes, selecting the concrete kind
// from the two discriminator flags.
func (f *VehicleFactory) Create(registrationNumber, make, model, color string, electric, motorcycle bool) (*Vehicle, error) {
	kind := KindCar
	switch {
	case electric && motorcycle:
		kind = KindElectricBike
	case electric:
		kind = KindElectricCar
	case motorcycle:
		kind = KindMotorcycle
	}
	return f.CreateKind(registrationNumber, make, model, color, kind)
}

// CreateKind builds a vehicle of an explicit kind. Trucks and buses have no
// discriminator flag and are constructed through this path.
func (f *VehicleFactory) CreateKind(registrationNumber, make, model, color string, kind Kind) (*Vehicle, error) {
	if strings.TrimSpace(registrationNumber) == "" {
		return nil, fmt.Errorf("%w: registration number is required", ErrInvalidInput)
	}
	return NewVehicle(registrationNumber, make, model, color, kind), nil
}
