package parking

import (
	"strings"
	"testing"
)

func TestParseParkCommand(t *testing.T) {
	cmd, err := parseParkCommand(strings.Fields("park 2 KA01HH1234 Toyota Corolla White"))
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if cmd.level != 2 {
		t.Errorf("Expected level 2, got %d", cmd.level)
	}
	if cmd.registration != "KA01HH1234" || cmd.make != "Toyota" || cmd.model != "Corolla" || cmd.color != "White" {
		t.Errorf("Unexpected command fields: %+v", cmd)
	}
	if cmd.electric || cmd.motorcycle {
		t.Errorf("Expected no flags, got %+v", cmd)
	}

	cmd, err = parseParkCommand(strings.Fields("park auto EB001 Zero SRF Black electric motorcycle"))
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if cmd.level != AutoLevel {
		t.Errorf("Expected AutoLevel, got %d", cmd.level)
	}
	if !cmd.electric || !cmd.motorcycle {
		t.Errorf("Expected both flags set, got %+v", cmd)
	}
}

func TestParseParkCommandErrors(t *testing.T) {
	// A flag word in the color position means the color was omitted.
	if _, err := parseParkCommand(strings.Fields("park auto EV001 Tesla Model3 electric")); err == nil {
		t.Error("Expected error when a flag word lands in the color position")
	}
	if _, err := parseParkCommand(strings.Fields("park auto KA01 Toyota Corolla White sidecar")); err == nil {
		t.Error("Expected error for an unknown flag")
	}
	if _, err := parseParkCommand(strings.Fields("park auto KA01 Toyota Corolla")); err == nil {
		t.Error("Expected error for too few arguments")
	}
	if _, err := parseParkCommand(strings.Fields("park three KA01 Toyota Corolla White")); err == nil {
		t.Error("Expected error for a non-numeric level")
	}
}
