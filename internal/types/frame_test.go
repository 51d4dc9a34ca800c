package types

import (
	"bytes"
	"testing"
)

func TestFrameID_WireID(t *testing.T) {
	tests := []struct {
		id      FrameID
		version Version
		want    string
	}{
		{FrameIDPopularimeter, Version22, "POP"},
		{FrameIDPopularimeter, Version23, "POPM"},
		{FrameIDPopularimeter, Version24, "POPM"},
		{FrameIDUnknown, Version24, ""},
	}

	for _, tc := range tests {
		got := tc.id.WireID(tc.version)
		if got != tc.want {
			t.Errorf("%v.WireID(%v) = %q, want %q", tc.id, tc.version, got, tc.want)
		}
	}
}

func TestParseFrameID(t *testing.T) {
	tests := []struct {
		wireID  string
		version Version
		want    FrameID
	}{
		{"POPM", Version24, FrameIDPopularimeter},
		{"POPM", Version23, FrameIDPopularimeter},
		{"POP", Version22, FrameIDPopularimeter},
		// Identifiers from the wrong version's naming scheme stay unknown.
		{"POP", Version24, FrameIDUnknown},
		{"POPM", Version22, FrameIDUnknown},
		{"TIT2", Version24, FrameIDUnknown},
		{"", Version24, FrameIDUnknown},
	}

	for _, tc := range tests {
		got := ParseFrameID(tc.wireID, tc.version)
		if got != tc.want {
			t.Errorf("ParseFrameID(%q, %v) = %v, want %v", tc.wireID, tc.version, got, tc.want)
		}
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"ID3v2.2", Version22, false},
		{"ID3v2.3", Version23, false},
		{"ID3v2.4", Version24, false},
		{"ID3v2.5", VersionUnknown, true},
		{"id3v2.4", VersionUnknown, true},
		{"", VersionUnknown, true},
	}

	for _, tc := range tests {
		got, err := ParseVersion(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseVersion(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseVersion(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestVersion_RoundTrip(t *testing.T) {
	for _, v := range []Version{Version22, Version23, Version24} {
		got, err := ParseVersion(v.String())
		if err != nil {
			t.Fatalf("ParseVersion(%q) error = %v", v.String(), err)
		}
		if got != v {
			t.Errorf("ParseVersion(%q) = %v, want %v", v.String(), got, v)
		}
	}
}

func TestVersion_DefaultFrameFlags(t *testing.T) {
	if got := Version22.DefaultFrameFlags(); got != nil {
		t.Errorf("Version22.DefaultFrameFlags() = %v, want nil", got)
	}
	for _, v := range []Version{Version23, Version24} {
		got := v.DefaultFrameFlags()
		if !bytes.Equal(got, []byte{0x00, 0x00}) {
			t.Errorf("%v.DefaultFrameFlags() = %v, want two zero bytes", v, got)
		}
	}
}
