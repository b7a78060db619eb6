// Package util holds helpers shared by the exporters and the CLI.
package util

import (
	"fmt"
	"sort"
	"strings"

	"github.com/suyashkumar/dicom/pkg/tag"
)

// Module is the DICOM information module a tag belongs to.
type Module int

const (
	ModulePatient Module = iota
	ModuleStudy
	ModuleSeries
	ModuleEquipment
)

// String returns the string representation of a Module.
func (m Module) String() string {
	switch m {
	case ModulePatient:
		return "Patient"
	case ModuleStudy:
		return "Study"
	case ModuleSeries:
		return "Series"
	case ModuleEquipment:
		return "Equipment"
	default:
		return "Unknown"
	}
}

// TagInfo describes a tag that may be overridden on exported DICOM instances.
type TagInfo struct {
	Name   string
	Tag    tag.Tag
	Module Module
}

// tagRegistry maps lowercase keywords to their TagInfo. Only string-valued
// tags are listed.
var tagRegistry = map[string]TagInfo{
	"patientname":      {Name: "PatientName", Tag: tag.PatientName, Module: ModulePatient},
	"patientid":        {Name: "PatientID", Tag: tag.PatientID, Module: ModulePatient},
	"patientbirthdate": {Name: "PatientBirthDate", Tag: tag.PatientBirthDate, Module: ModulePatient},
	"patientsex":       {Name: "PatientSex", Tag: tag.PatientSex, Module: ModulePatient},
	"otherpatientids":  {Name: "OtherPatientIDs", Tag: tag.OtherPatientIDs, Module: ModulePatient},

	"studydescription":            {Name: "StudyDescription", Tag: tag.StudyDescription, Module: ModuleStudy},
	"studyid":                     {Name: "StudyID", Tag: tag.StudyID, Module: ModuleStudy},
	"accessionnumber":             {Name: "AccessionNumber", Tag: tag.AccessionNumber, Module: ModuleStudy},
	"referringphysicianname":      {Name: "ReferringPhysicianName", Tag: tag.ReferringPhysicianName, Module: ModuleStudy},
	"institutionname":             {Name: "InstitutionName", Tag: tag.InstitutionName, Module: ModuleStudy},
	"institutionaldepartmentname": {Name: "InstitutionalDepartmentName", Tag: tag.InstitutionalDepartmentName, Module: ModuleStudy},

	"seriesdescription":       {Name: "SeriesDescription", Tag: tag.SeriesDescription, Module: ModuleSeries},
	"bodypartexamined":        {Name: "BodyPartExamined", Tag: tag.BodyPartExamined, Module: ModuleSeries},
	"performingphysicianname": {Name: "PerformingPhysicianName", Tag: tag.PerformingPhysicianName, Module: ModuleSeries},
	"operatorsname":           {Name: "OperatorsName", Tag: tag.OperatorsName, Module: ModuleSeries},

	"manufacturer":          {Name: "Manufacturer", Tag: tag.Manufacturer, Module: ModuleEquipment},
	"manufacturermodelname": {Name: "ManufacturerModelName", Tag: tag.ManufacturerModelName, Module: ModuleEquipment},
	"stationname":           {Name: "StationName", Tag: tag.StationName, Module: ModuleEquipment},
}

// GetTagByName returns TagInfo for a given tag keyword.
// The lookup is case-insensitive. Unknown names get a suggestion for the
// closest keyword when one is near enough.
func GetTagByName(name string) (TagInfo, error) {
	normalizedName := strings.ToLower(strings.TrimSpace(name))

	if info, ok := tagRegistry[normalizedName]; ok {
		return info, nil
	}

	if suggestion := findClosestTagName(normalizedName); suggestion != "" {
		return TagInfo{}, fmt.Errorf("unknown tag %q, did you mean %q?", name, suggestion)
	}
	return TagInfo{}, fmt.Errorf("unknown tag %q", name)
}

// ListTags returns every overridable tag ordered by module, then name.
func ListTags() []TagInfo {
	tags := make([]TagInfo, 0, len(tagRegistry))
	for _, info := range tagRegistry {
		tags = append(tags, info)
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Module != tags[j].Module {
			return tags[i].Module < tags[j].Module
		}
		return tags[i].Name < tags[j].Name
	})
	return tags
}

// TagOverride is one parsed Name=Value flag.
type TagOverride struct {
	Info  TagInfo
	Value string
}

// ParsedTags holds overrides keyed by lowercase keyword.
type ParsedTags map[string]TagOverride

// ParseTagFlags parses "Name=Value" flags. A later flag for the same tag wins.
func ParseTagFlags(flags []string) (ParsedTags, error) {
	parsed := make(ParsedTags, len(flags))
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("invalid tag %q (expected Name=Value)", f)
		}
		info, err := GetTagByName(name)
		if err != nil {
			return nil, err
		}
		parsed[strings.ToLower(info.Name)] = TagOverride{Info: info, Value: value}
	}
	return parsed, nil
}

// Get returns the override value for name, if set.
func (p ParsedTags) Get(name string) (string, bool) {
	o, ok := p[strings.ToLower(name)]
	return o.Value, ok
}

// All returns the overrides ordered by tag.
func (p ParsedTags) All() []TagOverride {
	out := make([]TagOverride, 0, len(p))
	for _, o := range p {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Info.Tag, out[j].Info.Tag
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Element < b.Element
	})
	return out
}

// findClosestTagName returns the keyword nearest to input by Levenshtein
// distance, or "" when nothing is within 5 edits.
func findClosestTagName(input string) string {
	const maxDistance = 5
	bestDistance := maxDistance + 1
	var bestMatch string

	for _, info := range ListTags() {
		distance := levenshteinDistance(input, strings.ToLower(info.Name))
		if distance < bestDistance {
			bestDistance = distance
			bestMatch = info.Name
		}
	}

	if bestDistance <= maxDistance {
		return bestMatch
	}
	return ""
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
