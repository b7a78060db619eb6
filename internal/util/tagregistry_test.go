package util

import (
	"strings"
	"testing"

	"github.com/suyashkumar/dicom/pkg/tag"
)

func TestGetTagByName_Valid(t *testing.T) {
	tests := []struct {
		name           string
		expectedTag    tag.Tag
		expectedModule Module
	}{
		{"PatientName", tag.PatientName, ModulePatient},
		{"PatientID", tag.PatientID, ModulePatient},
		{"PatientBirthDate", tag.PatientBirthDate, ModulePatient},
		{"PatientSex", tag.PatientSex, ModulePatient},
		{"OtherPatientIDs", tag.OtherPatientIDs, ModulePatient},

		{"StudyDescription", tag.StudyDescription, ModuleStudy},
		{"StudyID", tag.StudyID, ModuleStudy},
		{"AccessionNumber", tag.AccessionNumber, ModuleStudy},
		{"ReferringPhysicianName", tag.ReferringPhysicianName, ModuleStudy},
		{"InstitutionName", tag.InstitutionName, ModuleStudy},
		{"InstitutionalDepartmentName", tag.InstitutionalDepartmentName, ModuleStudy},

		{"SeriesDescription", tag.SeriesDescription, ModuleSeries},
		{"BodyPartExamined", tag.BodyPartExamined, ModuleSeries},
		{"PerformingPhysicianName", tag.PerformingPhysicianName, ModuleSeries},
		{"OperatorsName", tag.OperatorsName, ModuleSeries},

		{"Manufacturer", tag.Manufacturer, ModuleEquipment},
		{"ManufacturerModelName", tag.ManufacturerModelName, ModuleEquipment},
		{"StationName", tag.StationName, ModuleEquipment},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info, err := GetTagByName(tc.name)
			if err != nil {
				t.Fatalf("GetTagByName(%q) returned error: %v", tc.name, err)
			}
			if info.Tag != tc.expectedTag {
				t.Errorf("GetTagByName(%q).Tag = %v, want %v", tc.name, info.Tag, tc.expectedTag)
			}
			if info.Module != tc.expectedModule {
				t.Errorf("GetTagByName(%q).Module = %v, want %v", tc.name, info.Module, tc.expectedModule)
			}
			if info.Name != tc.name {
				t.Errorf("GetTagByName(%q).Name = %q, want %q", tc.name, info.Name, tc.name)
			}
		})
	}
}

func TestGetTagByName_Invalid(t *testing.T) {
	for _, name := range []string{"InvalidTagName", "NotATag", "", "   ", "PixelData", "WindowCenter"} {
		t.Run(name, func(t *testing.T) {
			if _, err := GetTagByName(name); err == nil {
				t.Errorf("GetTagByName(%q) should return error for unknown tag", name)
			}
		})
	}
}

func TestGetTagByName_Suggestion(t *testing.T) {
	tests := []struct {
		typo       string
		suggestion string
	}{
		{"PatientNam", "PatientName"},
		{"PatinetName", "PatientName"},
		{"StudyDescripton", "StudyDescription"},
		{"SeriesDescritpion", "SeriesDescription"},
		{"Manufacurer", "Manufacturer"},
		{"InstitutionNme", "InstitutionName"},
	}

	for _, tc := range tests {
		t.Run(tc.typo, func(t *testing.T) {
			_, err := GetTagByName(tc.typo)
			if err == nil {
				t.Fatalf("GetTagByName(%q) should return error", tc.typo)
			}
			if !strings.Contains(err.Error(), tc.suggestion) {
				t.Errorf("Error for %q should suggest %q, got: %v", tc.typo, tc.suggestion, err)
			}
		})
	}
}

func TestGetTagByName_CaseInsensitive(t *testing.T) {
	for _, input := range []string{"institutionname", "INSTITUTIONNAME", "InStItUtIoNnAmE", "  InstitutionName "} {
		info, err := GetTagByName(input)
		if err != nil {
			t.Fatalf("GetTagByName(%q) returned error: %v", input, err)
		}
		if info.Name != "InstitutionName" {
			t.Errorf("GetTagByName(%q).Name = %q, want InstitutionName", input, info.Name)
		}
	}
}

func TestModule_String(t *testing.T) {
	tests := []struct {
		module   Module
		expected string
	}{
		{ModulePatient, "Patient"},
		{ModuleStudy, "Study"},
		{ModuleSeries, "Series"},
		{ModuleEquipment, "Equipment"},
		{Module(42), "Unknown"},
	}

	for _, tc := range tests {
		if tc.module.String() != tc.expected {
			t.Errorf("Module.String() = %q, want %q", tc.module.String(), tc.expected)
		}
	}
}

func TestListTags_Ordered(t *testing.T) {
	tags := ListTags()
	if len(tags) != len(tagRegistry) {
		t.Fatalf("Expected %d tags, got %d", len(tagRegistry), len(tags))
	}
	for i := 1; i < len(tags); i++ {
		prev, cur := tags[i-1], tags[i]
		if prev.Module > cur.Module || (prev.Module == cur.Module && prev.Name > cur.Name) {
			t.Errorf("Tags out of order at %d: %s/%s before %s/%s", i, prev.Module, prev.Name, cur.Module, cur.Name)
		}
	}
}

func TestParseTagFlags(t *testing.T) {
	parsed, err := ParseTagFlags([]string{
		"InstitutionName=Hospital Metropolitano",
		"accessionnumber=A-001",
		"InstitutionName=Clinica Pichincha",
		"OperatorsName=",
	})
	if err != nil {
		t.Fatalf("ParseTagFlags returned error: %v", err)
	}

	if v, ok := parsed.Get("InstitutionName"); !ok || v != "Clinica Pichincha" {
		t.Errorf("Expected later InstitutionName to win, got %q (ok=%v)", v, ok)
	}
	if v, ok := parsed.Get("OperatorsName"); !ok || v != "" {
		t.Errorf("Expected empty OperatorsName override, got %q (ok=%v)", v, ok)
	}

	all := parsed.All()
	if len(all) != 3 {
		t.Fatalf("Expected 3 overrides, got %d", len(all))
	}
	// (0008,0050) AccessionNumber < (0008,0080) InstitutionName < (0008,1070) OperatorsName
	want := []string{"AccessionNumber", "InstitutionName", "OperatorsName"}
	for i, o := range all {
		if o.Info.Name != want[i] {
			t.Errorf("All()[%d] = %s, want %s", i, o.Info.Name, want[i])
		}
	}
}

func TestParseTagFlags_Errors(t *testing.T) {
	for _, flags := range [][]string{{"InstitutionName"}, {"Bogus=1"}} {
		if _, err := ParseTagFlags(flags); err == nil {
			t.Errorf("ParseTagFlags(%v) should fail", flags)
		}
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"PatientName", "PatinetName", 2},
	}

	for _, tc := range tests {
		t.Run(tc.a+"_"+tc.b, func(t *testing.T) {
			if got := levenshteinDistance(tc.a, tc.b); got != tc.expected {
				t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}
