package dicom

import (
	"io"
	"strings"

	"github.com/mrsinham/reportforge/internal/report"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// BasicTextSRClassUID is the SOP Class UID of Basic Text SR.
const BasicTextSRClassUID = "1.2.840.10008.5.1.4.1.1.88.11"

// SRExtension is the file extension of structured report exports.
const SRExtension = "dcm"

// code is a coded concept (code value, scheme, meaning).
type code struct {
	Value   string
	Scheme  string
	Meaning string
}

var (
	codeImagingReport        = code{"18748-4", "LN", "Diagnostic Imaging Report"}
	codeProcedureDescription = code{"121065", "DCM", "Procedure Description"}
	codeFindings             = code{"121070", "DCM", "Findings"}
	codeObserverName         = code{"121008", "DCM", "Person Observer Name"}
)

func codeSequence(t tag.Tag, c code) *dicom.Element {
	return mustNewElement(t, [][]*dicom.Element{{
		str(tag.CodeValue, c.Value),
		str(tag.CodingSchemeDesignator, c.Scheme),
		str(tag.CodeMeaning, c.Meaning),
	}})
}

func textItem(c code, text string) []*dicom.Element {
	return []*dicom.Element{
		str(tag.RelationshipType, "CONTAINS"),
		str(tag.ValueType, "TEXT"),
		codeSequence(tag.ConceptNameCodeSequence, c),
		str(tag.TextValue, text),
	}
}

// WriteSR encodes rec as a Basic Text SR. The findings item holds the report
// body with its line breaks; the observer is the signatory.
func WriteSR(w io.Writer, rec report.Record, opts Options) error {
	sopInstance := NewUID()
	elements := commonElements(rec, opts, BasicTextSRClassUID, sopInstance, "SR", "Report", 1)

	var items [][]*dicom.Element
	if rec.Study != "" {
		items = append(items, textItem(codeProcedureDescription, rec.Study))
	}
	items = append(items, textItem(codeFindings, strings.Join(report.SplitLines(rec.Body), "\r\n")))
	if opts.Signatory.Name != "" {
		observer := []*dicom.Element{
			str(tag.RelationshipType, "HAS OBS CONTEXT"),
			str(tag.ValueType, "PNAME"),
			codeSequence(tag.ConceptNameCodeSequence, codeObserverName),
			str(tag.PersonName, PersonName(opts.Signatory.Name)),
		}
		items = append([][]*dicom.Element{observer}, items...)
	}

	elements = append(elements,
		str(tag.ValueType, "CONTAINER"),
		codeSequence(tag.ConceptNameCodeSequence, codeImagingReport),
		str(tag.ContinuityOfContent, "SEPARATE"),
		str(tag.CompletionFlag, "COMPLETE"),
		str(tag.VerificationFlag, "UNVERIFIED"),
		mustNewElement(tag.ContentSequence, items),
	)

	return writeDataset(w, applyOverrides(elements, opts.Tags))
}
