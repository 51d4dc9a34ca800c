package registry

import (
	"testing"

	"github.com/simonhull/popmeter/internal/types"
)

func TestRegisterAndLookup(t *testing.T) {
	// Use a frame type that's unlikely to conflict with real registrations
	id := types.FrameID(999)
	parse := func(v types.Version, flags, payload []byte) (types.Frame, error) {
		return types.NewUnknown("TEST", v, flags, payload), nil
	}

	Register(id, parse)

	got, ok := Lookup(id)
	if !ok {
		t.Fatal("Lookup() reported no parser for registered frame type")
	}
	if got == nil {
		t.Fatal("Lookup() returned nil for registered frame type")
	}

	frame, err := got(types.Version24, nil, []byte{0x01})
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if frame.Header().Size != 1 {
		t.Errorf("parsed frame size = %d, want 1", frame.Header().Size)
	}
}

func TestLookup_Unregistered(t *testing.T) {
	// Use a frame type that's definitely not registered
	id := types.FrameID(998)

	got, ok := Lookup(id)
	if ok {
		t.Error("Lookup() reported a parser for an unregistered frame type")
	}
	if got != nil {
		t.Errorf("Lookup() = %v for unregistered frame type, want nil", got)
	}
}

func TestRegister_Overwrites(t *testing.T) {
	id := types.FrameID(997)
	first := func(v types.Version, flags, payload []byte) (types.Frame, error) {
		return types.NewUnknown("FST", v, flags, payload), nil
	}
	second := func(v types.Version, flags, payload []byte) (types.Frame, error) {
		return types.NewUnknown("SND", v, flags, payload), nil
	}

	Register(id, first)
	Register(id, second)

	got, ok := Lookup(id)
	if !ok {
		t.Fatal("Lookup() reported no parser after re-registration")
	}
	frame, err := got(types.Version24, nil, nil)
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	u, ok := frame.(*types.Unknown)
	if !ok {
		t.Fatalf("parse returned %T, want *types.Unknown", frame)
	}
	if u.WireID() != "SND" {
		t.Errorf("WireID() = %q, want %q (should be overwritten)", u.WireID(), "SND")
	}
}
