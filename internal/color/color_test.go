package color

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestHexToHSLKnownValues(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#fcfaf8", "30 40% 98%"},
		{"#1a1511", "27 21% 8%"},
		{"#ff0000", "0 100% 50%"},
		{"#00ff00", "120 100% 50%"},
		{"#0000ff", "240 100% 50%"},
		{"#ff00ff", "300 100% 50%"},
		{"#ffffff", "0 0% 100%"},
		{"#000000", "0 0% 0%"},
		{"#808080", "0 0% 50%"},
		{"#FCFAF8", "30 40% 98%"},
	}
	for _, tt := range tests {
		got, err := HexToHSL(tt.hex)
		if err != nil {
			t.Fatalf("HexToHSL(%q): %v", tt.hex, err)
		}
		if got != tt.want {
			t.Errorf("HexToHSL(%q) = %q, want %q", tt.hex, got, tt.want)
		}
	}
}

func TestHueWrapsBelow360(t *testing.T) {
	// Red max with blue one step above green rounds to 360.
	got, err := HexToHSL("#ff0001")
	if err != nil {
		t.Fatal(err)
	}
	if got != "0 100% 50%" {
		t.Fatalf("expected hue to wrap to 0, got %q", got)
	}
}

func TestInvalidFormat(t *testing.T) {
	bad := []string{"", "#fff", "fcfaf8", "#fcfaf", "#fcfaf80", "#gggggg", "#12345z", "##12345", "#+1+2+3"}
	for _, hex := range bad {
		if _, err := HexToHSL(hex); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("HexToHSL(%q): expected ErrInvalidFormat, got %v", hex, err)
		}
		if err := Validate(hex); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Validate(%q): expected ErrInvalidFormat, got %v", hex, err)
		}
	}
}

func sampleHexes() []string {
	var out []string
	steps := []int{0, 17, 51, 128, 200, 254, 255}
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				out = append(out, fmt.Sprintf("#%02x%02x%02x", r, g, b))
			}
		}
	}
	return out
}

func TestRangesHold(t *testing.T) {
	for _, hex := range sampleHexes() {
		c, err := Parse(hex)
		if err != nil {
			t.Fatal(err)
		}
		if c.H < 0 || c.H >= 360 {
			t.Fatalf("%s: hue %v out of range", hex, c.H)
		}
		if c.S < 0 || c.S > 1 || c.L < 0 || c.L > 1 {
			t.Fatalf("%s: s=%v l=%v out of range", hex, c.S, c.L)
		}

		var h, s, l int
		if _, err := fmt.Sscanf(c.String(), "%d %d%% %d%%", &h, &s, &l); err != nil {
			t.Fatalf("%s: unparsable %q", hex, c.String())
		}
		if h < 0 || h >= 360 || s < 0 || s > 100 || l < 0 || l > 100 {
			t.Fatalf("%s: rendered %q out of range", hex, c.String())
		}
	}
}

func TestAgreesWithColorful(t *testing.T) {
	for _, hex := range sampleHexes() {
		ours, err := Parse(hex)
		if err != nil {
			t.Fatal(err)
		}
		ref, err := colorful.Hex(hex)
		if err != nil {
			t.Fatal(err)
		}
		h, s, l := ref.Hsl()
		if math.Abs(ours.H-h) > 1e-9 || math.Abs(ours.S-s) > 1e-9 || math.Abs(ours.L-l) > 1e-9 {
			t.Fatalf("%s: ours %+v, colorful %v %v %v", hex, ours, h, s, l)
		}
	}
}

func TestRoundTripThroughHex(t *testing.T) {
	for _, hex := range sampleHexes() {
		c, _ := Parse(hex)
		back := colorful.Hsl(c.H, c.S, c.L).Hex()
		if back != hex {
			t.Fatalf("round trip %s -> %+v -> %s", hex, c, back)
		}
		again, err := HexToHSL(back)
		if err != nil {
			t.Fatal(err)
		}
		if again != c.String() {
			t.Fatalf("%s: %q != %q after round trip", hex, again, c.String())
		}
	}
}
