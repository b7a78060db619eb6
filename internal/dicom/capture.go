package dicom

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"
	"unicode"

	"github.com/mrsinham/reportforge/internal/report"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/frame"
	"github.com/suyashkumar/dicom/pkg/tag"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SecondaryCaptureClassUID is the SOP Class UID of Secondary Capture Image Storage.
const SecondaryCaptureClassUID = "1.2.840.10008.5.1.4.1.1.7"

// SCExtension is the file extension of secondary capture exports.
const SCExtension = "sc.dcm"

const (
	// PageColumns is the wrap width of a rendered line, in characters.
	PageColumns = 80
	// RenderScale enlarges the 7x13 glyphs so the page stays readable on a viewer.
	RenderScale = 2

	glyphWidth = 7
	lineHeight = 16
	pageMargin = 24
)

// ErrPageTooTall is returned when the rendered page has more rows than the
// US Rows element can hold.
var ErrPageTooTall = errors.New("report page too tall for a single image")

const (
	paper uint8 = 255
	ink   uint8 = 0
)

// WriteSecondaryCapture renders doc onto an 8-bit grayscale page and encodes
// it as a Secondary Capture image of rec.
func WriteSecondaryCapture(w io.Writer, doc report.Document, rec report.Record, opts Options) error {
	if rows := pageRows(len(layout(doc))); rows > math.MaxUint16 {
		return fmt.Errorf("%w: %d rows, at most %d", ErrPageTooTall, rows, math.MaxUint16)
	}

	page := RenderPage(doc)
	bounds := page.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	nativeFrame := frame.NewNativeFrame[uint8](8, height, width, width*height, 1)
	copy(nativeFrame.RawData, page.Pix)

	pixelDataInfo := dicom.PixelDataInfo{
		Frames: []*frame.Frame{
			{
				Encapsulated: false,
				NativeData:   nativeFrame,
			},
		},
	}

	elements := commonElements(rec, opts, SecondaryCaptureClassUID, NewUID(), "OT", "Report page", 2)
	elements = append(elements,
		str(tag.ConversionType, "WSD"),
		mustNewElement(tag.SamplesPerPixel, []int{1}),
		str(tag.PhotometricInterpretation, "MONOCHROME2"),
		mustNewElement(tag.Rows, []int{height}),
		mustNewElement(tag.Columns, []int{width}),
		mustNewElement(tag.BitsAllocated, []int{8}),
		mustNewElement(tag.BitsStored, []int{8}),
		mustNewElement(tag.HighBit, []int{7}),
		mustNewElement(tag.PixelRepresentation, []int{0}),
		mustNewElement(tag.PixelData, pixelDataInfo),
	)

	return writeDataset(w, applyOverrides(elements, opts.Tags))
}

// pageLine is one rendered text row.
type pageLine struct {
	text     string
	bold     bool
	centered bool
}

// layout wraps the blocks of doc into rows of at most PageColumns characters.
func layout(doc report.Document) []pageLine {
	var lines []pageLine
	for _, b := range doc.Blocks {
		for _, row := range wrap(asciiFold(b.Text), PageColumns) {
			lines = append(lines, pageLine{text: row, bold: b.Bold, centered: b.Centered})
		}
	}
	return lines
}

// pageRows is the scaled height of a page holding n text rows.
func pageRows(n int) int {
	return (2*pageMargin + max(1, n)*lineHeight) * RenderScale
}

// RenderPage draws doc black on white with the basic 7x13 face and returns
// the page scaled by RenderScale.
func RenderPage(doc report.Document) *image.Gray {
	lines := layout(doc)

	baseWidth := 2*pageMargin + PageColumns*glyphWidth
	baseHeight := 2*pageMargin + max(1, len(lines))*lineHeight

	base := image.NewGray(image.Rect(0, 0, baseWidth, baseHeight))
	draw.Draw(base, base.Bounds(), image.NewUniform(color.Gray{Y: paper}), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  base,
		Src:  image.NewUniform(color.Gray{Y: ink}),
		Face: face,
	}

	for i, l := range lines {
		if l.text == "" {
			continue
		}
		x := pageMargin
		if l.centered {
			x = (baseWidth - font.MeasureString(face, l.text).Ceil()) / 2
		}
		baseline := pageMargin + i*lineHeight + face.Ascent
		drawer.Dot = fixed.P(x, baseline)
		drawer.DrawString(l.text)
		if l.bold {
			// Overstrike one pixel to the right.
			drawer.Dot = fixed.P(x+1, baseline)
			drawer.DrawString(l.text)
		}
	}

	scaled := image.NewGray(image.Rect(0, 0, baseWidth*RenderScale, baseHeight*RenderScale))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), base, base.Bounds(), draw.Src, nil)
	return scaled
}

// wrap splits s into rows of at most width runes, breaking at spaces when possible.
func wrap(s string, width int) []string {
	r := []rune(s)
	if len(r) <= width {
		return []string{s}
	}

	var rows []string
	for len(r) > width {
		cut := width
		for i := width; i > 0; i-- {
			if r[i] == ' ' {
				cut = i
				break
			}
		}
		rows = append(rows, strings.TrimRight(string(r[:cut]), " "))
		r = r[cut:]
		for len(r) > 0 && r[0] == ' ' {
			r = r[1:]
		}
	}
	if len(r) > 0 {
		rows = append(rows, string(r))
	}
	return rows
}

// asciiFold strips diacritics so the ASCII-only face can draw Spanish text
// ("Cédula" becomes "Cedula"). Runes still outside ASCII become '?'.
func asciiFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || (r < ' ' && r != '\t') {
			return '?'
		}
		if r == '\t' {
			return ' '
		}
		return r
	}, folded)
}
