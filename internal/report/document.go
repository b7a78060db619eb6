package report

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockKind is the kind of a document block.
type BlockKind int

const (
	// KindBlank is an empty line.
	KindBlank BlockKind = iota
	// KindParagraph is a single line of text.
	KindParagraph
	// KindHeading is the document title.
	KindHeading
)

func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	default:
		return "blank"
	}
}

// TitleSize is the heading font size in half-points.
const TitleSize = 28

// SignatureLine is printed above the signatory name.
const SignatureLine = "________________________________"

// Block describes one paragraph of the document. Size is in half-points;
// zero keeps the serializer's default.
type Block struct {
	Kind     BlockKind
	Text     string
	Bold     bool
	Centered bool
	Size     int
}

// Signatory is the person signing the report.
type Signatory struct {
	Name  string
	Title string
}

// DefaultSignatory signs reports when none is configured.
var DefaultSignatory = Signatory{
	Name:  "DR. JOSE JOAQUIN MOSCOSO CORREA.",
	Title: "IMAGENOLOGO",
}

// Document is the ordered block tree of a report. Serializers consume it
// without knowing where the texts come from.
type Document struct {
	Title  string
	Blocks []Block
}

// Lines returns the text of every block, one entry per block.
func (d Document) Lines() []string {
	lines := make([]string, len(d.Blocks))
	for i, b := range d.Blocks {
		lines[i] = b.Text
	}
	return lines
}

// Build assembles the report of rec.
func Build(rec Record, labels Labels, sig Signatory) Document {
	b := &builder{}

	b.add(Block{Kind: KindHeading, Text: labels.Title, Bold: true, Size: TitleSize})
	b.blank(1)

	age := ""
	if rec.HasBirthDate() {
		age = strconv.Itoa(rec.Age())
	}
	b.line(labels.CurrentDate, FormatDate(rec.CurrentDate()))
	b.line(labels.Name, rec.Name)
	b.line(labels.IdentityNumber, rec.IdentityNumber)
	b.line(labels.BirthDate, FormatDate(rec.BirthDate))
	b.line(labels.Sex, labels.SexLabel(rec.Sex))
	b.line(labels.Age, fmt.Sprintf("%s %s", age, labels.AgeUnit))

	b.blank(1)
	b.line(labels.Study, rec.Study)
	b.blank(1)

	b.add(Block{Kind: KindParagraph, Text: labels.Report, Bold: true})
	b.blank(1)

	for _, l := range SplitLines(rec.Body) {
		if l == "" {
			b.blank(1)
			continue
		}
		b.add(Block{Kind: KindParagraph, Text: l})
	}

	b.blank(3)
	b.centered(labels.Closing)
	b.blank(4)
	b.centered(SignatureLine)
	b.centered(sig.Name)
	b.centered(sig.Title)

	return Document{Title: labels.Title, Blocks: b.blocks}
}

// SplitLines splits a report body on line breaks, keeping empty lines.
// A carriage return ending a line is dropped.
func SplitLines(body string) []string {
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

type builder struct {
	blocks []Block
}

func (b *builder) add(bl Block) {
	b.blocks = append(b.blocks, bl)
}

func (b *builder) blank(n int) {
	for range n {
		b.add(Block{Kind: KindBlank})
	}
}

func (b *builder) line(label, value string) {
	b.add(Block{Kind: KindParagraph, Text: label + " " + value})
}

func (b *builder) centered(text string) {
	b.add(Block{Kind: KindParagraph, Text: text, Centered: true})
}
