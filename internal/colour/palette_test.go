package colour

import (
	"errors"
	"strings"
	"testing"
)

func TestNewPalette(t *testing.T) {
	palette := NewPalette([]RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	})

	if palette == nil {
		t.Fatal("NewPalette returned nil")
	}

	if palette.Len() != 3 {
		t.Errorf("Expected palette length 3, got %d", palette.Len())
	}
}

func TestToRGB(t *testing.T) {
	tests := []struct {
		name  string
		color RGB
		want  RGB
	}{
		{name: "red", color: RGB{R: 255}, want: RGB{R: 255, G: 0, B: 0}},
		{name: "white", color: RGB{R: 255, G: 255, B: 255}, want: RGB{R: 255, G: 255, B: 255}},
		{name: "black", color: RGB{}, want: RGB{}},
		{name: "odd channels", color: RGB{R: 26, G: 43, B: 60}, want: RGB{R: 26, G: 43, B: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// RGB satisfies color.Color, so ToRGB must be lossless on it.
			got := ToRGB(tt.color)
			if got != tt.want {
				t.Errorf("ToRGB() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "#ff0000"},
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}, want: "#000000"},
		{name: "grey", rgb: RGB{R: 128, G: 128, B: 128}, want: "#808080"},
		{name: "zero padded lowercase", rgb: RGB{R: 26, G: 43, B: 60}, want: "#1a2b3c"},
		{name: "single digit channels", rgb: RGB{R: 1, G: 2, B: 3}, want: "#010203"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rgb.Hex()
			if got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", input: "#1a2b3c", want: RGB{R: 26, G: 43, B: 60}},
		{name: "without hash", input: "1a2b3c", want: RGB{R: 26, G: 43, B: 60}},
		{name: "upper case", input: "#FF8000", want: RGB{R: 255, G: 128, B: 0}},
		{name: "short form", input: "#f80", want: RGB{R: 255, G: 136, B: 0}},
		{name: "surrounding space", input: "  #000000 ", want: RGB{}},
		{name: "too short", input: "#12345", wantErr: true},
		{name: "not hex", input: "#zzzzzz", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("ParseHex() error = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseHex() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 51 {
				in := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				out, err := ParseHex(in.Hex())
				if err != nil {
					t.Fatalf("ParseHex(%s) error = %v", in.Hex(), err)
				}
				if out != in {
					t.Errorf("ParseHex(%s) = %+v, want %+v", in.Hex(), out, in)
				}
			}
		}
	}
}

func TestRGBString(t *testing.T) {
	got := RGB{R: 255, G: 0, B: 0}.String()
	if got != "rgb(255, 0, 0)" {
		t.Errorf("String() = %s, want rgb(255, 0, 0)", got)
	}
}

func TestPaletteToHex(t *testing.T) {
	palette := NewPalette([]RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	})
	hexColors := palette.ToHex()

	want := []string{"#ff0000", "#00ff00", "#0000ff"}

	if len(hexColors) != len(want) {
		t.Fatalf("ToHex() returned %d colours, want %d", len(hexColors), len(want))
	}

	for i, got := range hexColors {
		if got != want[i] {
			t.Errorf("ToHex()[%d] = %s, want %s", i, got, want[i])
		}
	}
}

func TestPaletteToJSON(t *testing.T) {
	palette := NewPalette([]RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
	})
	jsonBytes, err := palette.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	jsonStr := string(jsonBytes)
	expectedStrings := []string{
		`"count": 2`,
		`"hex": "#ff0000"`,
		`"hex": "#00ff00"`,
		`"r": 255`,
		`"g": 255`,
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(jsonStr, expected) {
			t.Errorf("ToJSON() output missing expected string: %s", expected)
		}
	}
}

func TestPaletteGet(t *testing.T) {
	palette := NewPalette([]RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	})

	tests := []struct {
		name    string
		index   int
		wantErr bool
	}{
		{name: "valid index 0", index: 0, wantErr: false},
		{name: "valid index 2", index: 2, wantErr: false},
		{name: "negative index", index: -1, wantErr: true},
		{name: "index out of bounds", index: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := palette.Get(tt.index)
			if (err != nil) != tt.wantErr {
				t.Errorf("Get() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPaletteAll(t *testing.T) {
	palette := NewPalette([]RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	})

	count := 0
	for i, c := range palette.All() {
		if i != count {
			t.Errorf("Expected index %d, got %d", count, i)
		}
		if c != palette.Colors[i] {
			t.Errorf("All() yielded %+v at %d, want %+v", c, i, palette.Colors[i])
		}
		count++
	}

	if count != 3 {
		t.Errorf("Expected to iterate over 3 colours, got %d", count)
	}
}

func TestPaletteString(t *testing.T) {
	if got := NewPalette(nil).String(); got != "Empty palette" {
		t.Errorf("String() = %q, want %q", got, "Empty palette")
	}

	got := NewPalette([]RGB{{R: 26, G: 43, B: 60}}).String()
	if !strings.Contains(got, "#1a2b3c") || !strings.Contains(got, "rgb(26, 43, 60)") {
		t.Errorf("String() = %q, missing hex or rgb form", got)
	}
}
