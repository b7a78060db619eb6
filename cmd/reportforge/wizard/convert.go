package wizard

import (
	"fmt"
	"strings"

	"github.com/mrsinham/reportforge/cmd/reportforge/wizard/types"
	"github.com/mrsinham/reportforge/internal/report"
)

// ApplyForm replaces the editable fields of the controller's record with the
// form values and returns the resulting record. The identity number is kept
// exactly as typed since its length is what gets validated. The controller
// keeps its current date. On error the controller is left unchanged.
func ApplyForm(ctrl *report.Controller, f types.FormState) (report.Record, error) {
	sex, err := report.ParseSex(f.Sex)
	if err != nil {
		return ctrl.Record(), err
	}

	rec := ctrl.Record().
		WithName(strings.TrimSpace(f.Name)).
		WithIdentityNumber(f.ID).
		WithSex(sex).
		WithStudy(strings.TrimSpace(f.Study)).
		WithBody(f.Report).
		WithoutBirthDate()

	if s := strings.TrimSpace(f.BirthDate); s != "" {
		birth, err := report.ParseDate(s)
		if err != nil {
			return ctrl.Record(), fmt.Errorf("birth date: %w", err)
		}
		if rec, err = rec.WithBirthDate(birth); err != nil {
			return ctrl.Record(), err
		}
	}

	if err := ctrl.Load(rec); err != nil {
		return ctrl.Record(), err
	}
	return ctrl.Record(), nil
}

// FormFromRecord returns the form values showing rec.
func FormFromRecord(rec report.Record) types.FormState {
	f := types.FormState{
		Name:   rec.Name,
		ID:     rec.IdentityNumber,
		Sex:    rec.Sex.Code(),
		Study:  rec.Study,
		Report: rec.Body,
	}
	if rec.HasBirthDate() {
		f.BirthDate = report.FormatDate(rec.BirthDate)
	}
	return f
}
