// Package docx encodes a report document as a WordprocessingML (.docx) package.
package docx

import (
	"archive/zip"
	"bytes"
	"cmp"
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	godocx "github.com/fumiama/go-docx"
	"github.com/mrsinham/reportforge/internal/report"
)

// Extension is the file extension of the produced package.
const Extension = "docx"

const corePart = "docProps/core.xml"

// Options control package metadata.
type Options struct {
	// Author is written as the document creator.
	Author string
	// Created stamps the core properties and every zip entry. Zero uses time.Now.
	Created time.Time
}

// Write encodes doc as a .docx package into w. Every block becomes exactly
// one paragraph.
func Write(w io.Writer, doc report.Document, opts Options) error {
	if opts.Created.IsZero() {
		opts.Created = time.Now()
	}

	f := godocx.New().WithDefaultTheme()
	for _, b := range doc.Blocks {
		addParagraph(f, b)
	}
	// sectPr must close the body.
	f.WithA4Page()

	var raw bytes.Buffer
	if _, err := f.WriteTo(&raw); err != nil {
		return fmt.Errorf("encode docx: %w", err)
	}
	core, err := coreXML(doc.Title, opts)
	if err != nil {
		return err
	}
	return repack(w, raw.Bytes(), core, opts.Created)
}

func addParagraph(f *godocx.Docx, b report.Block) {
	p := f.AddParagraph()
	if b.Centered {
		p.Justification("center")
	}
	if b.Text == "" {
		return
	}

	r := p.AddText(b.Text)
	for _, c := range r.Children {
		if t, ok := c.(*godocx.Text); ok {
			t.XMLSpace = "preserve"
		}
	}
	if b.Bold {
		r.Bold()
	}
	if b.Size > 0 {
		sz := strconv.Itoa(b.Size)
		r.Size(sz).SizeCs(sz)
	}
}

// repack copies the library's package into w in name order with a fixed
// timestamp, swapping in our core properties.
func repack(w io.Writer, data, core []byte, stamp time.Time) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("read docx archive: %w", err)
	}
	files := slices.Clone(zr.File)
	slices.SortFunc(files, func(a, b *zip.File) int {
		return cmp.Compare(a.Name, b.Name)
	})

	zw := zip.NewWriter(w)
	for _, zf := range files {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     zf.Name,
			Method:   zip.Deflate,
			Modified: stamp,
		})
		if err != nil {
			return fmt.Errorf("create %s: %w", zf.Name, err)
		}
		if zf.Name == corePart {
			_, err = fw.Write(core)
		} else {
			err = copyEntry(fw, zf)
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", zf.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close docx archive: %w", err)
	}
	return nil
}

func copyEntry(w io.Writer, zf *zip.File) error {
	rc, err := zf.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	_, err = io.Copy(w, rc)
	return err
}

type coreProperties struct {
	XMLName  xml.Name `xml:"cp:coreProperties"`
	CP       string   `xml:"xmlns:cp,attr"`
	DC       string   `xml:"xmlns:dc,attr"`
	DCTerms  string   `xml:"xmlns:dcterms,attr"`
	XSI      string   `xml:"xmlns:xsi,attr"`
	Title    string   `xml:"dc:title"`
	Creator  string   `xml:"dc:creator,omitempty"`
	Created  w3cdtf   `xml:"dcterms:created"`
	Modified w3cdtf   `xml:"dcterms:modified"`
}

type w3cdtf struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

func coreXML(title string, opts Options) ([]byte, error) {
	stamp := w3cdtf{Type: "dcterms:W3CDTF", Value: opts.Created.UTC().Format(time.RFC3339)}
	props := coreProperties{
		CP:       "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		DC:       "http://purl.org/dc/elements/1.1/",
		DCTerms:  "http://purl.org/dc/terms/",
		XSI:      "http://www.w3.org/2001/XMLSchema-instance",
		Title:    title,
		Creator:  opts.Author,
		Created:  stamp,
		Modified: stamp,
	}
	out, err := xml.Marshal(props)
	if err != nil {
		return nil, fmt.Errorf("marshal core properties: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
