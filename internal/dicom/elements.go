// Package dicom encodes report documents as DICOM instances: a Basic Text
// Structured Report carrying the report text, and a Secondary Capture image
// rendering the printed page.
package dicom

import (
	"fmt"
	"io"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mrsinham/reportforge/internal/report"
	"github.com/mrsinham/reportforge/internal/util"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

const (
	explicitVRLittleEndian = "1.2.840.10008.1.2.1"
	manufacturer           = "reportforge"
)

// Options carries the values an instance needs beyond the record itself.
type Options struct {
	Institution string
	Signatory   report.Signatory
	// Created stamps study, series and content date/time. Zero uses time.Now.
	Created time.Time
	// StudyInstanceUID groups the SR and SC of one export; generated when empty.
	StudyInstanceUID string
	// Tags override generated values by keyword.
	Tags util.ParsedTags
}

func (o Options) created() time.Time {
	if o.Created.IsZero() {
		return time.Now()
	}
	return o.Created
}

// NewUID returns a UUID-derived UID under the 2.25 root.
func NewUID() string {
	u := uuid.New()
	return "2.25." + new(big.Int).SetBytes(u[:]).String()
}

// mustNewElement creates a new DICOM element, panicking on error.
// Values passed here always match the tag's VR.
func mustNewElement(t tag.Tag, value interface{}) *dicom.Element {
	elem, err := dicom.NewElement(t, value)
	if err != nil {
		panic(fmt.Sprintf("failed to create element %v: %v", t, err))
	}
	return elem
}

func str(t tag.Tag, v string) *dicom.Element {
	return mustNewElement(t, []string{v})
}

// PersonName converts a free-text name to a PN value. Backslashes, the DICOM
// value delimiter, become spaces.
func PersonName(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(name, "\\", " "))
}

// PatientAge formats an age as the DICOM AS value (e.g. "024Y").
func PatientAge(years int) string {
	if years > 999 {
		years = 999
	}
	return fmt.Sprintf("%03dY", years)
}

// commonElements builds the patient, study, series, equipment and SOP common
// modules shared by every instance of one export.
func commonElements(rec report.Record, opts Options, sopClass, sopInstance, modality, seriesDescription string, seriesNumber int) []*dicom.Element {
	now := opts.created()
	studyUID := opts.StudyInstanceUID
	if studyUID == "" {
		studyUID = NewUID()
	}

	birth := ""
	age := ""
	if rec.HasBirthDate() {
		birth = rec.BirthDate.Format("20060102")
		age = PatientAge(rec.Age())
	}

	elements := []*dicom.Element{
		str(tag.MediaStorageSOPClassUID, sopClass),
		str(tag.MediaStorageSOPInstanceUID, sopInstance),
		str(tag.TransferSyntaxUID, explicitVRLittleEndian),
		str(tag.SpecificCharacterSet, "ISO_IR 192"),
		str(tag.SOPClassUID, sopClass),
		str(tag.SOPInstanceUID, sopInstance),
		str(tag.StudyDate, rec.CurrentDate().Format("20060102")),
		str(tag.StudyTime, now.Format("150405")),
		str(tag.ContentDate, now.Format("20060102")),
		str(tag.ContentTime, now.Format("150405")),
		str(tag.AccessionNumber, ""),
		str(tag.Modality, modality),
		str(tag.Manufacturer, manufacturer),
		str(tag.InstitutionName, opts.Institution),
		str(tag.ReferringPhysicianName, ""),
		str(tag.StudyDescription, rec.Study),
		str(tag.SeriesDescription, seriesDescription),
		str(tag.PatientName, PersonName(rec.Name)),
		str(tag.PatientID, rec.IdentityNumber),
		str(tag.PatientBirthDate, birth),
		str(tag.PatientSex, rec.Sex.Code()),
		str(tag.PatientAge, age),
		str(tag.StudyInstanceUID, studyUID),
		str(tag.SeriesInstanceUID, NewUID()),
		str(tag.StudyID, "1"),
		str(tag.SeriesNumber, fmt.Sprintf("%d", seriesNumber)),
		str(tag.InstanceNumber, "1"),
	}
	return elements
}

// applyOverrides replaces or appends the elements named in tags.
func applyOverrides(elements []*dicom.Element, tags util.ParsedTags) []*dicom.Element {
	for _, o := range tags.All() {
		replaced := false
		for i, e := range elements {
			if e.Tag == o.Info.Tag {
				elements[i] = str(o.Info.Tag, o.Value)
				replaced = true
				break
			}
		}
		if !replaced {
			elements = append(elements, str(o.Info.Tag, o.Value))
		}
	}
	return elements
}

// sortElements orders elements by (Group, Element), file meta first.
func sortElements(elements []*dicom.Element) {
	sort.Slice(elements, func(i, j int) bool {
		if elements[i].Tag.Group != elements[j].Tag.Group {
			return elements[i].Tag.Group < elements[j].Tag.Group
		}
		return elements[i].Tag.Element < elements[j].Tag.Element
	})
}

func writeDataset(w io.Writer, elements []*dicom.Element) error {
	sortElements(elements)
	if err := dicom.Write(w, dicom.Dataset{Elements: elements}); err != nil {
		return fmt.Errorf("write dicom dataset: %w", err)
	}
	return nil
}
