package colour

import (
	"errors"
	"image"
	"image/color"
	"slices"
	"testing"
)

// solidImage returns a w x h image filled with c.
func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// stripeImage returns an image split into vertical stripes, one column per
// colour in order.
func stripeImage(h int, colours ...color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(colours), h))
	for y := 0; y < h; y++ {
		for x, c := range colours {
			img.Set(x, y, c)
		}
	}
	return img
}

// gradientImage returns a 256x64 image covering many distinct colours.
func gradientImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 256, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 256; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y * 4), B: uint8(255 - x), A: 255})
		}
	}
	return img
}

func TestQuantizerMonochrome(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	sizes := []image.Point{{1, 1}, {7, 3}, {150, 150}, {640, 480}}

	for _, size := range sizes {
		palette, err := NewQuantizer().Extract(solidImage(size.X, size.Y, red), 5)
		if err != nil {
			t.Fatalf("Extract(%v) error = %v", size, err)
		}
		want := []RGB{{R: 255, G: 0, B: 0}}
		if !slices.Equal(palette.Colors, want) {
			t.Errorf("Extract(%v) = %v, want %v", size, palette.Colors, want)
		}
	}
}

func TestQuantizerTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))

	palette, err := NewQuantizer().Extract(img, 5)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := []RGB{{}}
	if !slices.Equal(palette.Colors, want) {
		t.Errorf("Extract() = %v, want %v", palette.Colors, want)
	}
}

func TestQuantizerFewerColoursThanRequested(t *testing.T) {
	img := stripeImage(10,
		color.RGBA{R: 255, A: 255},
		color.RGBA{R: 255, A: 255},
		color.RGBA{R: 255, A: 255},
		color.RGBA{B: 255, A: 255},
	)

	palette, err := NewQuantizer().Extract(img, 5)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := []RGB{{R: 255}, {B: 255}}
	if !slices.Equal(palette.Colors, want) {
		t.Errorf("Extract() = %v, want %v", palette.Colors, want)
	}
}

func TestQuantizerTieOrdering(t *testing.T) {
	// Two equal halves: equal counts are ordered by descending colour.
	img := stripeImage(4, color.RGBA{B: 255, A: 255}, color.RGBA{R: 255, A: 255})

	palette, err := NewQuantizer().Extract(img, 5)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := []RGB{{R: 255}, {B: 255}}
	if !slices.Equal(palette.Colors, want) {
		t.Errorf("Extract() = %v, want %v", palette.Colors, want)
	}
}

func TestQuantizerCountBound(t *testing.T) {
	img := gradientImage()

	for _, k := range []int{1, 2, 3, 5, 8, 16, 64} {
		palette, err := NewQuantizer().Extract(img, k)
		if err != nil {
			t.Fatalf("Extract(k=%d) error = %v", k, err)
		}
		if palette.Len() > k {
			t.Errorf("Extract(k=%d) returned %d colours", k, palette.Len())
		}
		if palette.Len() == 0 {
			t.Errorf("Extract(k=%d) returned an empty palette", k)
		}
	}
}

func TestQuantizerDeterministic(t *testing.T) {
	img := gradientImage()
	q := NewQuantizer()

	first, err := q.Extract(img, 5)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := q.Extract(img, 5)
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}
		if !slices.Equal(first.Colors, again.Colors) {
			t.Fatalf("Extract() run %d = %v, want %v", i, again.Colors, first.Colors)
		}
	}
}

func TestQuantizerDominantFirst(t *testing.T) {
	green := color.RGBA{G: 200, A: 255}
	white := color.RGBA{R: 250, G: 250, B: 250, A: 255}
	img := stripeImage(8, green, green, green, green, green, white, white, color.RGBA{R: 20, A: 255})

	palette, err := NewQuantizer().Extract(img, 3)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := []RGB{{G: 200}, {R: 250, G: 250, B: 250}, {R: 20}}
	if !slices.Equal(palette.Colors, want) {
		t.Errorf("Extract() = %v, want %v", palette.Colors, want)
	}
}

func TestQuantizerErrors(t *testing.T) {
	tests := []struct {
		name    string
		img     image.Image
		count   int
		wantErr error
	}{
		{name: "nil image", img: nil, count: 5, wantErr: ErrInput},
		{name: "zero area", img: image.NewRGBA(image.Rect(0, 0, 0, 10)), count: 5, wantErr: ErrInput},
		{name: "zero count", img: solidImage(2, 2, color.Black), count: 0, wantErr: ErrInvalidArgument},
		{name: "count too large", img: solidImage(2, 2, color.Black), count: 257, wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			palette, err := NewQuantizer().Extract(tt.img, tt.count)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Extract() error = %v, want %v", err, tt.wantErr)
			}
			if palette != nil {
				t.Errorf("Extract() palette = %v, want nil", palette)
			}
		})
	}
}

func TestMedianCutSplitsDistinctColours(t *testing.T) {
	hist := []colourCount{
		{rgb: RGB{R: 10}, count: 4},
		{rgb: RGB{R: 200}, count: 1},
		{rgb: RGB{G: 90}, count: 2},
	}

	got := medianCut(hist, 3)
	if len(got) != 3 {
		t.Fatalf("medianCut() returned %d colours, want 3", len(got))
	}
	for _, want := range []RGB{{R: 10}, {R: 200}, {G: 90}} {
		if !slices.Contains(got, want) {
			t.Errorf("medianCut() = %v, missing %v", got, want)
		}
	}
}

func TestMedianCutMergesToMean(t *testing.T) {
	hist := []colourCount{
		{rgb: RGB{R: 100, G: 100, B: 100}, count: 1},
		{rgb: RGB{R: 200, G: 100, B: 100}, count: 3},
	}

	got := medianCut(hist, 1)
	want := []RGB{{R: 175, G: 100, B: 100}}
	if !slices.Equal(got, want) {
		t.Errorf("medianCut() = %v, want %v", got, want)
	}
}

func TestRank(t *testing.T) {
	got := rank(map[RGB]int{
		{R: 1}:  5,
		{G: 9}:  7,
		{R: 3}:  5,
		{B: 40}: 1,
	})

	want := []RGB{{G: 9}, {R: 3}, {R: 1}, {B: 40}}
	for i, cc := range got {
		if cc.rgb != want[i] {
			t.Errorf("rank()[%d] = %v, want %v", i, cc.rgb, want[i])
		}
	}
}

func TestNearestPrefersLowestIndex(t *testing.T) {
	reps := []RGB{{R: 10}, {R: 30}}
	if got := nearest(RGB{R: 20}, reps); got != 0 {
		t.Errorf("nearest() = %d, want 0", got)
	}
	if got := nearest(RGB{R: 29}, reps); got != 1 {
		t.Errorf("nearest() = %d, want 1", got)
	}
}

func TestNewExtractor(t *testing.T) {
	ext, err := NewExtractor(AlgorithmMedianCut)
	if err != nil {
		t.Fatalf("NewExtractor() error = %v", err)
	}
	if _, ok := ext.(*Quantizer); !ok {
		t.Errorf("NewExtractor() = %T, want *Quantizer", ext)
	}

	if _, err := NewExtractor("kmeans"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewExtractor(kmeans) error = %v, want ErrInvalidArgument", err)
	}
}

func TestExtractorConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  ExtractorConfig
		wantErr bool
	}{
		{name: "default", config: DefaultExtractorConfig(), wantErr: false},
		{name: "max count", config: ExtractorConfig{Algorithm: AlgorithmMedianCut, ColorCount: 256}, wantErr: false},
		{name: "zero count", config: ExtractorConfig{Algorithm: AlgorithmMedianCut, ColorCount: 0}, wantErr: true},
		{name: "unknown algorithm", config: ExtractorConfig{Algorithm: "dominant", ColorCount: 5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
