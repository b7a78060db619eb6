package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mrsinham/reportforge/internal/dicom"
	"github.com/mrsinham/reportforge/internal/docx"
	"github.com/mrsinham/reportforge/internal/report"
)

// Payload is what an encoder receives for one export.
type Payload struct {
	Document report.Document
	Record   report.Record
	DOCX     docx.Options
	DICOM    dicom.Options
}

// Format is a named file encoder.
type Format struct {
	Name        string
	Extension   string
	Description string
	Encode      func(w io.Writer, p Payload) error
}

var formats = map[string]Format{
	"docx": {
		Name:        "docx",
		Extension:   docx.Extension,
		Description: "Word document",
		Encode: func(w io.Writer, p Payload) error {
			return docx.Write(w, p.Document, p.DOCX)
		},
	},
	"dcm": {
		Name:        "dcm",
		Extension:   dicom.SRExtension,
		Description: "DICOM Basic Text structured report",
		Encode: func(w io.Writer, p Payload) error {
			return dicom.WriteSR(w, p.Record, p.DICOM)
		},
	},
	"sc": {
		Name:        "sc",
		Extension:   dicom.SCExtension,
		Description: "DICOM secondary capture of the printed page",
		Encode: func(w io.Writer, p Payload) error {
			return dicom.WriteSecondaryCapture(w, p.Document, p.Record, p.DICOM)
		},
	},
}

// DefaultFormat is exported when no format is requested.
const DefaultFormat = "docx"

// LookupFormat returns the format registered under name.
func LookupFormat(name string) (Format, error) {
	f, ok := formats[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Format{}, fmt.Errorf("%w %q (valid: %s)", ErrUnknownFormat, name, strings.Join(FormatNames(), ", "))
	}
	return f, nil
}

// FormatNames lists the registered format names.
func FormatNames() []string {
	names := make([]string, 0, len(formats))
	for n := range formats {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
