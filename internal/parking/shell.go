package parking

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Shell is the interactive command loop over one garage instance.
type Shell struct {
	garage    *InstrumentedParkingLot
	scanner   *bufio.Scanner
	telemetry *TelemetryProvider
}

func NewShell(garage *InstrumentedParkingLot, telemetry *TelemetryProvider) *Shell {
	return &Shell{
		garage:    garage,
		scanner:   bufio.NewScanner(os.Stdin),
		telemetry: telemetry,
	}
}

func (s *Shell) Run(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.run")
	defer span.End()

	span.AddEvent("shell_started")

	for {
		if !s.scanner.Scan() {
			break
		}

		input := strings.TrimSpace(s.scanner.Text())
		if input == "" {
			continue
		}

		cmdCtx, cmdSpan := tracer.Start(ctx, "shell.process_command",
			trace.WithAttributes(attribute.String("command.input", input)))
		s.processCommand(cmdCtx, input)
		cmdSpan.End()
	}

	span.AddEvent("shell_ended")
}

func (s *Shell) processCommand(ctx context.Context, input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "add_level":
		s.handleAddLevel(ctx, parts)
	case "park":
		s.handlePark(ctx, parts)
	case "leave":
		s.handleLeave(ctx, parts)
	case "status":
		s.handleStatus(ctx)
	case "find":
		s.handleFind(ctx, parts)
	case "help":
		s.printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", parts[0])
	}
}

func (s *Shell) printUsage() {
	fmt.Println("Commands:")
	fmt.Println("  add_level <level|auto> <regular_capacity> <ev_capacity>")
	fmt.Println("  park <level|auto> <registration> <make> <model> <color> [electric] [motorcycle]")
	fmt.Println("  leave <level> <slot> <regular|ev>")
	fmt.Println("  find <color|make|model|registration> <value> <regular|ev>")
	fmt.Println("  status")
}

// parseLevel accepts a level number or the word "auto".
func parseLevel(arg string) (int, error) {
	if arg == "auto" {
		return AutoLevel, nil
	}
	return strconv.Atoi(arg)
}

func parseClass(arg string) (bool, error) {
	switch arg {
	case "ev":
		return true, nil
	case "regular":
		return false, nil
	default:
		return false, fmt.Errorf("unknown slot class %q", arg)
	}
}

func (s *Shell) handleAddLevel(ctx context.Context, parts []string) {
	if len(parts) != 4 {
		fmt.Println("Usage: add_level <level|auto> <regular_capacity> <ev_capacity>")
		return
	}

	levelNumber, err := parseLevel(parts[1])
	if err != nil {
		fmt.Println("Invalid level number")
		return
	}
	regularCapacity, err := strconv.Atoi(parts[2])
	if err != nil {
		fmt.Println("Invalid regular capacity")
		return
	}
	evCapacity, err := strconv.Atoi(parts[3])
	if err != nil {
		fmt.Println("Invalid EV capacity")
		return
	}

	assigned, err := s.garage.AddLevel(ctx, levelNumber, regularCapacity, evCapacity)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	fmt.Printf("Added level %d with %d regular and %d EV slots\n", assigned, regularCapacity, evCapacity)
}

type parkCommand struct {
	level        int
	registration string
	make         string
	model        string
	color        string
	electric     bool
	motorcycle   bool
}

// parseParkCommand parses the arguments of
// "park <level|auto> <registration> <make> <model> <color> [electric] [motorcycle]".
// A flag word in the color position means the color was omitted.
func parseParkCommand(parts []string) (parkCommand, error) {
	if len(parts) < 6 || len(parts) > 8 {
		return parkCommand{}, fmt.Errorf("expected 5 to 7 arguments, got %d", len(parts)-1)
	}

	levelNumber, err := parseLevel(parts[1])
	if err != nil {
		return parkCommand{}, fmt.Errorf("invalid level number %q", parts[1])
	}

	cmd := parkCommand{
		level:        levelNumber,
		registration: parts[2],
		make:         parts[3],
		model:        parts[4],
		color:        parts[5],
	}
	if cmd.color == "electric" || cmd.color == "motorcycle" {
		return parkCommand{}, fmt.Errorf("missing color before %q flag", cmd.color)
	}

	for _, flag := range parts[6:] {
		switch flag {
		case "electric":
			cmd.electric = true
		case "motorcycle":
			cmd.motorcycle = true
		default:
			return parkCommand{}, fmt.Errorf("unknown flag %q", flag)
		}
	}
	return cmd, nil
}

func (s *Shell) handlePark(ctx context.Context, parts []string) {
	cmd, err := parseParkCommand(parts)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		fmt.Println("Usage: park <level|auto> <registration> <make> <model> <color> [electric] [motorcycle]")
		return
	}

	placement, err := s.garage.Park(ctx, cmd.level, cmd.registration, cmd.make, cmd.model, cmd.color, cmd.electric, cmd.motorcycle)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	fmt.Printf("Allocated level %d slot %d\n", placement.Level, placement.Slot)
}

func (s *Shell) handleLeave(ctx context.Context, parts []string) {
	if len(parts) != 4 {
		fmt.Println("Usage: leave <level> <slot> <regular|ev>")
		return
	}

	levelNumber, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Println("Invalid level number")
		return
	}
	slotNumber, err := strconv.Atoi(parts[2])
	if err != nil {
		fmt.Println("Invalid slot number")
		return
	}
	electric, err := parseClass(parts[3])
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	vehicle, err := s.garage.Remove(ctx, levelNumber, slotNumber, electric)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	fmt.Printf("Level %d slot %d is free (%s left)\n", levelNumber, slotNumber, vehicle.RegistrationNumber)
}

func (s *Shell) handleStatus(ctx context.Context) {
	status := s.garage.Status(ctx)
	if len(status.Levels) == 0 {
		fmt.Println("No levels added")
		return
	}

	fmt.Println("Level\tRegular (free/total)\tEV (free/total)")
	for _, level := range status.Levels {
		fmt.Printf("%d\t%d/%d\t\t\t%d/%d\n",
			level.LevelNumber,
			level.RegularFree, level.RegularTotal,
			level.EVFree, level.EVTotal)
	}
	fmt.Printf("Totals: regular %d/%d occupied, EV %d/%d occupied\n",
		status.RegularOccupied, status.RegularCapacity,
		status.EVOccupied, status.EVCapacity)
}

func (s *Shell) handleFind(ctx context.Context, parts []string) {
	if len(parts) != 4 {
		fmt.Println("Usage: find <color|make|model|registration> <value> <regular|ev>")
		return
	}

	electric, err := parseClass(parts[3])
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	placements, err := s.garage.Find(ctx, Criterion(parts[1]), parts[2], electric)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	if len(placements) == 0 {
		fmt.Println("Not found")
		return
	}

	for _, p := range placements {
		fmt.Printf("Level %d slot %d\n", p.Level, p.Slot)
	}
}
