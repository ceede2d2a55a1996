package parking

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentedParkingLot wraps every lot operation in a span and records
// operation counters, per-class occupancy, and durations.
type InstrumentedParkingLot struct {
	*ParkingLot
	telemetry *TelemetryProvider

	parkOperations    metric.Int64Counter
	removeOperations  metric.Int64Counter
	searchOperations  metric.Int64Counter
	occupancyGauge    metric.Int64UpDownCounter
	capacityGauge     metric.Int64UpDownCounter
	operationDuration metric.Float64Histogram
}

func NewInstrumentedParkingLot(telemetry *TelemetryProvider) (*InstrumentedParkingLot, error) {
	meter := telemetry.Meter()

	parkOperations, err := meter.Int64Counter("garage_park_operations_total",
		metric.WithDescription("Total number of park operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	removeOperations, err := meter.Int64Counter("garage_remove_operations_total",
		metric.WithDescription("Total number of remove operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	searchOperations, err := meter.Int64Counter("garage_search_operations_total",
		metric.WithDescription("Total number of vehicle searches"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	occupancyGauge, err := meter.Int64UpDownCounter("garage_occupancy",
		metric.WithDescription("Current number of occupied slots per class"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	capacityGauge, err := meter.Int64UpDownCounter("garage_capacity",
		metric.WithDescription("Total number of slots per class"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram("garage_operation_duration_seconds",
		metric.WithDescription("Duration of garage operations"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &InstrumentedParkingLot{
		ParkingLot:        NewParkingLot(),
		telemetry:         telemetry,
		parkOperations:    parkOperations,
		removeOperations:  removeOperations,
		searchOperations:  searchOperations,
		occupancyGauge:    occupancyGauge,
		capacityGauge:     capacityGauge,
		operationDuration: operationDuration,
	}, nil
}

func classAttribute(electric bool) attribute.KeyValue {
	if electric {
		return attribute.String("slot_class", "ev")
	}
	return attribute.String("slot_class", "regular")
}

func (ipl *InstrumentedParkingLot) AddLevel(ctx context.Context, levelNumber, regularCapacity, evCapacity int) (int, error) {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "garage.add_level",
		trace.WithAttributes(
			attribute.Int("level.number", levelNumber),
			attribute.Int("level.regular_capacity", regularCapacity),
			attribute.Int("level.ev_capacity", evCapacity),
		))
	defer span.End()

	assigned, err := ipl.ParkingLot.AddLevel(levelNumber, regularCapacity, evCapacity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int("level.assigned_number", assigned))
	ipl.capacityGauge.Add(ctx, int64(regularCapacity), metric.WithAttributes(classAttribute(false)))
	ipl.capacityGauge.Add(ctx, int64(evCapacity), metric.WithAttributes(classAttribute(true)))

	return assigned, nil
}

func (ipl *InstrumentedParkingLot) Park(ctx context.Context, levelNumber int, registrationNumber, make, model, color string, electric, motorcycle bool) (Placement, error) {
	return ipl.ParkWithCharge(ctx, levelNumber, registrationNumber, make, model, color, electric, motorcycle, nil)
}

func (ipl *InstrumentedParkingLot) ParkWithCharge(ctx context.Context, levelNumber int, registrationNumber, make, model, color string, electric, motorcycle bool, charge *int) (Placement, error) {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "garage.park",
		trace.WithAttributes(
			attribute.String("vehicle.registration_number", registrationNumber),
			attribute.String("vehicle.color", color),
			attribute.Bool("vehicle.electric", electric),
			attribute.Bool("vehicle.motorcycle", motorcycle),
		))
	defer span.End()

	start := time.Now()
	placement, err := ipl.ParkingLot.ParkWithCharge(levelNumber, registrationNumber, make, model, color, electric, motorcycle, charge)
	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "park"),
		classAttribute(electric),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels, attribute.String("status", "success"))
		span.SetAttributes(
			attribute.Int("allocated_level", placement.Level),
			attribute.Int("allocated_slot", placement.Slot),
		)
		span.AddEvent("slot_allocated", trace.WithAttributes(
			attribute.Int("level_number", placement.Level),
			attribute.Int("slot_number", placement.Slot),
		))
		ipl.occupancyGauge.Add(ctx, 1, metric.WithAttributes(classAttribute(electric)))
	}

	ipl.parkOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return placement, err
}

func (ipl *InstrumentedParkingLot) Remove(ctx context.Context, levelNumber, slotNumber int, electric bool) (*Vehicle, error) {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "garage.remove",
		trace.WithAttributes(
			attribute.Int("level_number", levelNumber),
			attribute.Int("slot_number", slotNumber),
			classAttribute(electric),
		))
	defer span.End()

	start := time.Now()
	vehicle, err := ipl.ParkingLot.Remove(levelNumber, slotNumber, electric)
	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "remove"),
		classAttribute(electric),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels, attribute.String("status", "success"))
		span.SetAttributes(attribute.String("vehicle.registration_number", vehicle.RegistrationNumber))
		span.AddEvent("slot_released")
		ipl.occupancyGauge.Add(ctx, -1, metric.WithAttributes(classAttribute(electric)))
	}

	ipl.removeOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return vehicle, err
}

func (ipl *InstrumentedParkingLot) Find(ctx context.Context, criterion Criterion, value string, electric bool) ([]Placement, error) {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "garage.find",
		trace.WithAttributes(
			attribute.String("search.criterion", string(criterion)),
			attribute.String("search.value", value),
			classAttribute(electric),
		))
	defer span.End()

	start := time.Now()
	placements, err := ipl.ParkingLot.Find(criterion, value, electric)
	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "find"),
		attribute.String("criterion", string(criterion)),
		classAttribute(electric),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels, attribute.String("status", "success"))
		span.SetAttributes(attribute.Int("search.matches", len(placements)))
	}

	ipl.searchOperations.Add(ctx, 1, metric.WithAttributes(labels...))
	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return placements, err
}

func (ipl *InstrumentedParkingLot) Status(ctx context.Context) LotStatus {
	tracer := ipl.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "garage.status")
	defer span.End()

	start := time.Now()
	status := ipl.ParkingLot.Status()
	duration := time.Since(start).Seconds()

	span.SetAttributes(
		attribute.Int("levels", len(status.Levels)),
		attribute.Int("regular_occupied", status.RegularOccupied),
		attribute.Int("ev_occupied", status.EVOccupied),
	)

	ipl.operationDuration.Record(ctx, duration, metric.WithAttributes(
		attribute.String("operation", "status"),
		attribute.String("status", "success"),
	))

	return status
}
