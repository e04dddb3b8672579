package colour

import (
	"cmp"
	"fmt"
	"image"
	"math"
	"slices"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/stat"
)

// WorkingSize is the side of the square image the quantizer reduces every
// input to before counting colours.
const WorkingSize = 150

// Quantizer implements colour extraction using median cut.
// It holds no state between calls and is safe for concurrent use.
type Quantizer struct {
	workingSize int
	scaler      draw.Scaler
}

// NewQuantizer creates a new Quantizer with default settings.
func NewQuantizer() *Quantizer {
	return &Quantizer{
		workingSize: WorkingSize,
		// Nearest neighbour never blends, so every working pixel is a source colour.
		scaler: draw.NearestNeighbor,
	}
}

// Extract reduces img to at most count representative colours and returns
// them ordered by descending pixel count. Ties are ordered by descending
// colour (R, then G, then B), so identical input always yields identical output.
func (q *Quantizer) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: image cannot be nil", ErrInput)
	}
	if err := validateColourCount(count); err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: image has no pixels (%dx%d)", ErrInput, bounds.Dx(), bounds.Dy())
	}

	pixels := q.downsample(img)
	representatives := medianCut(histogram(pixels), count)
	ranked := rank(remap(pixels, representatives))
	if len(ranked) > count {
		ranked = ranked[:count]
	}

	colours := make([]RGB, len(ranked))
	for i, cc := range ranked {
		colours[i] = cc.rgb
	}
	return NewPalette(colours), nil
}

// downsample scales img to the working size. Pixels are read from a
// premultiplied RGBA buffer, so transparent areas count as black.
func (q *Quantizer) downsample(img image.Image) []RGB {
	dst := image.NewRGBA(image.Rect(0, 0, q.workingSize, q.workingSize))
	q.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	pixels := make([]RGB, 0, q.workingSize*q.workingSize)
	for i := 0; i+3 < len(dst.Pix); i += 4 {
		pixels = append(pixels, RGB{R: dst.Pix[i], G: dst.Pix[i+1], B: dst.Pix[i+2]})
	}
	return pixels
}

// colourCount pairs a colour with the number of pixels it covers.
type colourCount struct {
	rgb   RGB
	count int
}

func pack(c RGB) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func channel(c RGB, ch int) uint8 {
	switch ch {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}

// histogram counts distinct colours, ordered by packed value.
func histogram(pixels []RGB) []colourCount {
	counts := make(map[RGB]int)
	for _, p := range pixels {
		counts[p]++
	}
	hist := make([]colourCount, 0, len(counts))
	for c, n := range counts {
		hist = append(hist, colourCount{rgb: c, count: n})
	}
	slices.SortFunc(hist, func(a, b colourCount) int {
		return cmp.Compare(pack(a.rgb), pack(b.rgb))
	})
	return hist
}

// box is a region of colour space holding a subset of the histogram.
type box struct {
	entries []colourCount
	pixels  int
}

func newBox(entries []colourCount) box {
	b := box{entries: entries}
	for _, e := range entries {
		b.pixels += e.count
	}
	return b
}

func (b box) splittable() bool {
	return len(b.entries) > 1
}

// span returns the widest channel range in the box.
func (b box) span() int {
	widest := 0
	for ch := range 3 {
		lo, hi := uint8(255), uint8(0)
		for _, e := range b.entries {
			v := channel(e.rgb, ch)
			lo = min(lo, v)
			hi = max(hi, v)
		}
		widest = max(widest, int(hi)-int(lo))
	}
	return widest
}

// channelSamples returns one channel's values with their pixel weights.
func (b box) channelSamples(ch int) (values, weights []float64) {
	values = make([]float64, len(b.entries))
	weights = make([]float64, len(b.entries))
	for i, e := range b.entries {
		values[i] = float64(channel(e.rgb, ch))
		weights[i] = float64(e.count)
	}
	return values, weights
}

// splitChannel picks the channel with the largest pixel-weighted variance.
func (b box) splitChannel() int {
	best, bestVariance := 0, -1.0
	for ch := range 3 {
		values, weights := b.channelSamples(ch)
		if v := stat.Variance(values, weights); v > bestVariance {
			best, bestVariance = ch, v
		}
	}
	return best
}

// split cuts the box at the pixel-weighted median of its split channel.
// Both halves are always non-empty.
func (b box) split() (box, box) {
	ch := b.splitChannel()
	entries := slices.Clone(b.entries)
	slices.SortFunc(entries, func(x, y colourCount) int {
		if c := cmp.Compare(channel(x.rgb, ch), channel(y.rgb, ch)); c != 0 {
			return c
		}
		return cmp.Compare(pack(x.rgb), pack(y.rgb))
	})

	cut, acc := 1, 0
	for i, e := range entries[:len(entries)-1] {
		acc += e.count
		cut = i + 1
		if acc*2 >= b.pixels {
			break
		}
	}
	return newBox(entries[:cut]), newBox(entries[cut:])
}

// mean is the pixel-weighted average colour of the box.
func (b box) mean() RGB {
	var out [3]uint8
	for ch := range 3 {
		values, weights := b.channelSamples(ch)
		out[ch] = uint8(math.Round(stat.Mean(values, weights)))
	}
	return RGB{R: out[0], G: out[1], B: out[2]}
}

// medianCut splits the histogram into at most count boxes and returns the
// mean colour of each.
func medianCut(hist []colourCount, count int) []RGB {
	if len(hist) == 0 {
		return nil
	}

	boxes := []box{newBox(hist)}
	for len(boxes) < count {
		i := widestBox(boxes)
		if i < 0 {
			break
		}
		lo, hi := boxes[i].split()
		boxes[i] = lo
		boxes = slices.Insert(boxes, i+1, hi)
	}

	representatives := make([]RGB, len(boxes))
	for i, b := range boxes {
		representatives[i] = b.mean()
	}
	return representatives
}

// widestBox returns the index of the splittable box with the widest span,
// preferring the one covering more pixels, or -1 if none can be split.
func widestBox(boxes []box) int {
	best, bestSpan, bestPixels := -1, -1, -1
	for i, b := range boxes {
		if !b.splittable() {
			continue
		}
		s := b.span()
		if s > bestSpan || (s == bestSpan && b.pixels > bestPixels) {
			best, bestSpan, bestPixels = i, s, b.pixels
		}
	}
	return best
}

// nearest returns the index of the closest representative by squared RGB
// distance. Ties go to the lowest index.
func nearest(c RGB, representatives []RGB) int {
	best, bestDist := 0, math.MaxInt
	for i, r := range representatives {
		dr := int(c.R) - int(r.R)
		dg := int(c.G) - int(r.G)
		db := int(c.B) - int(r.B)
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// remap assigns every pixel to its nearest representative and tallies the result.
func remap(pixels []RGB, representatives []RGB) map[RGB]int {
	counts := make(map[RGB]int, len(representatives))
	if len(representatives) == 0 {
		return counts
	}
	assigned := make(map[RGB]RGB)
	for _, p := range pixels {
		r, ok := assigned[p]
		if !ok {
			r = representatives[nearest(p, representatives)]
			assigned[p] = r
		}
		counts[r]++
	}
	return counts
}

// rank orders colours by descending count, then by descending colour.
func rank(counts map[RGB]int) []colourCount {
	ranked := make([]colourCount, 0, len(counts))
	for c, n := range counts {
		ranked = append(ranked, colourCount{rgb: c, count: n})
	}
	slices.SortFunc(ranked, func(a, b colourCount) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(pack(b.rgb), pack(a.rgb))
	})
	return ranked
}
