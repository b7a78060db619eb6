package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/mrsinham/reportforge/cmd/reportforge/wizard"
	"github.com/mrsinham/reportforge/cmd/reportforge/wizard/types"
	"github.com/mrsinham/reportforge/internal/edgecases"
	"github.com/mrsinham/reportforge/internal/export"
	"github.com/mrsinham/reportforge/internal/logging"
	"github.com/mrsinham/reportforge/internal/report"
	"github.com/mrsinham/reportforge/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func formCmd(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Fill in a report interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The form owns the terminal: logs go to a file or nowhere.
			logger, closer, err := logging.NewFile(a.cfg.Log.Level, a.cfg.Log.File)
			if err != nil {
				return err
			}
			defer closer.Close()

			return wizard.Run(from, wizard.Deps{
				Controller: a.newController(logger),
				Exporter:   a.newExporter(nil, logger),
				Labels:     a.labels,
				Formats:    a.cfg.Formats,
				OutputDir:  a.cfg.OutputDir,
				Logger:     logger,
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "prefill the form from a YAML draft")
	cmd.Flags().String("output", "", "output directory for exported files")
	cmd.Flags().StringSlice("format", nil, "export formats: "+strings.Join(export.FormatNames(), ", "))

	return cmd
}

// recordFlags are the record fields accepted by export and submit.
type recordFlags struct {
	from       string
	name       string
	id         string
	birthDate  string
	sex        string
	study      string
	body       string
	reportFile string
}

func (f *recordFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.from, "from", "", "read the record from a YAML draft; other flags override its fields")
	fs.StringVar(&f.name, "name", "", "patient name")
	fs.StringVar(&f.id, "id", "", "identity number (10 or 13 digits)")
	fs.StringVar(&f.birthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	fs.StringVar(&f.sex, "sex", "", "sex: M or F")
	fs.StringVar(&f.study, "study", "", "study name")
	fs.StringVar(&f.body, "report", "", "report body; \\n separates lines")
	fs.StringVar(&f.reportFile, "report-file", "", "read the report body from a file (- for stdin)")
}

// formState merges the draft file and the flags set on cmd.
func (f *recordFlags) formState(cmd *cobra.Command) (types.FormState, error) {
	var state types.FormState
	if f.from != "" {
		loaded, err := wizard.LoadFromYAML(f.from)
		if err != nil {
			return state, err
		}
		state = *loaded
	}

	fs := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("name", &state.Name, f.name)
	set("id", &state.ID, f.id)
	set("birth-date", &state.BirthDate, f.birthDate)
	set("sex", &state.Sex, f.sex)
	set("study", &state.Study, f.study)
	set("report", &state.Report, strings.ReplaceAll(f.body, `\n`, "\n"))

	if fs.Changed("report-file") {
		body, err := readReport(cmd.InOrStdin(), f.reportFile)
		if err != nil {
			return state, err
		}
		state.Report = body
	}
	return state, nil
}

func readReport(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading report: %w", err)
	}
	return string(data), nil
}

func exportCmd(a *app) *cobra.Command {
	var (
		rf       recordFlags
		tagFlags []string
		listTags bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the report files without the interactive form",
		Example: `  reportforge export --name "Juan Perez" --id 0912345678 --birth-date 2000-06-15 \
    --sex M --study "RX DE TÓRAX PA" --report "Line1\nLine2" --format docx,dcm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listTags {
				printTags(cmd.OutOrStdout())
				return nil
			}

			tags, err := util.ParseTagFlags(tagFlags)
			if err != nil {
				return err
			}

			state, err := rf.formState(cmd)
			if err != nil {
				return err
			}
			ctrl := a.newController(a.logger)
			rec, err := wizard.ApplyForm(ctrl, state)
			if err != nil {
				return err
			}

			paths, err := a.newExporter(tags, a.logger).ExportRecord(cmd.Context(), rec, a.cfg.Formats)
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
			}
			return err
		},
	}

	rf.register(cmd.Flags())
	cmd.Flags().String("output", "", "output directory (default from config: .)")
	cmd.Flags().StringSlice("format", nil, "export formats: "+strings.Join(export.FormatNames(), ", "))
	cmd.Flags().StringArrayVar(&tagFlags, "tag", nil, "set a DICOM tag: 'TagName=Value' (repeatable)")
	cmd.Flags().BoolVar(&listTags, "list-tags", false, "list the tags accepted by --tag")

	return cmd
}

func submitCmd(a *app) *cobra.Command {
	var rf recordFlags

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate the record and log the submission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := rf.formState(cmd)
			if err != nil {
				return err
			}
			ctrl := a.newController(a.logger)
			if _, err := wizard.ApplyForm(ctrl, state); err != nil {
				return err
			}

			res := ctrl.Submit()
			if !res.Accepted() {
				return fmt.Errorf("submission rejected: %s", res.Message)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Submission accepted")
			return nil
		},
	}

	rf.register(cmd.Flags())
	return cmd
}

func validateIDCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-id <identity-number>",
		Short: "Check that an identity number has 10 or 13 digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := report.NewValidator(a.labels.InvalidIdentity)
			if !v.Validate(args[0]) {
				return errors.New(v.Message())
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}

func ageCmd(a *app) *cobra.Command {
	var today string

	cmd := &cobra.Command{
		Use:   "age <birth-date>",
		Short: "Print the age in full years for a birth date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			birth, err := report.ParseDate(args[0])
			if err != nil {
				return err
			}
			now := a.now()
			if today != "" {
				if now, err = report.ParseDate(today); err != nil {
					return fmt.Errorf("--today: %w", err)
				}
			}
			if _, err := report.NewRecord(now).WithBirthDate(birth); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", report.DeriveAge(birth, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&today, "today", "", "reference date (YYYY-MM-DD, default: current date)")
	return cmd
}

func sampleCmd(a *app) *cobra.Command {
	var (
		seed          uint64
		sex           string
		out           string
		edgePct       int
		edgeTypesFlag string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a sample draft with a random patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewPCG(seed, seed))
			} else {
				rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
			}

			s, err := report.ParseSex(sex)
			if err != nil {
				return err
			}
			if s == report.SexUnset {
				s = []report.Sex{report.SexMale, report.SexFemale}[rng.IntN(2)]
			}

			edgeConfig := edgecases.Config{Percentage: edgePct}
			if edgePct > 0 {
				edgeConfig.Types, err = edgecases.ParseTypes(edgeTypesFlag)
				if err != nil {
					return err
				}
			}
			if err := edgeConfig.Validate(); err != nil {
				return err
			}

			state := &types.FormState{
				Name:      util.GeneratePatientName(s.Code(), rng),
				ID:        util.GenerateIdentityNumber(rng),
				BirthDate: report.FormatDate(util.GenerateBirthDate(a.now(), rng)),
				Sex:       s.Code(),
				Study:     util.GenerateStudy(rng),
				Report:    util.GenerateFindings(rng),
			}
			if edgeConfig.IsEnabled() {
				applyEdgeCases(state, edgecases.NewApplicator(edgeConfig, rng), a.now())
			}

			if out == "" {
				return wizard.WriteYAML(cmd.OutOrStdout(), state)
			}
			if err := wizard.SaveToYAML(state, out); err != nil {
				return err
			}
			a.logger.Info().Str("path", out).Str("name", state.Name).Msg("sample draft written")
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible samples")
	cmd.Flags().StringVar(&sex, "sex", "", "patient sex: M or F (random if not specified)")
	cmd.Flags().StringVar(&out, "out", "", "write the draft to a file instead of stdout")
	cmd.Flags().IntVar(&edgePct, "edge-cases", 0, "chance (0-100) that the sample gets edge case values")
	cmd.Flags().StringVar(&edgeTypesFlag, "edge-case-types", joinEdgeCaseTypes(edgecases.AllEdgeCaseTypes()),
		"comma-separated edge case types to enable")

	var usage strings.Builder
	usage.WriteString("Edge case types:\n")
	for _, t := range edgecases.AllEdgeCaseTypes() {
		fmt.Fprintf(&usage, "  %-15s %s\n", t, t.Description())
	}
	cmd.Long = cmd.Short + ".\n\n" + usage.String()

	return cmd
}

func joinEdgeCaseTypes(ts []edgecases.EdgeCaseType) string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = string(t)
	}
	return strings.Join(names, ",")
}

// applyEdgeCases rewrites state when the applicator draws this sample.
func applyEdgeCases(state *types.FormState, app *edgecases.Applicator, today time.Time) {
	if !app.ShouldApply() {
		return
	}
	state.Name = app.ApplyToName(state.Sex, state.Name)
	state.ID = app.ApplyToIdentityNumber(state.ID)
	state.BirthDate = app.ApplyToBirthDate(today, state.BirthDate)
	state.Study = app.ApplyToStudy(state.Study)
	for _, field := range app.FieldsToClear() {
		switch field {
		case "name":
			state.Name = ""
		case "identity_number":
			state.ID = ""
		case "birth_date":
			state.BirthDate = ""
		case "sex":
			state.Sex = ""
		case "study":
			state.Study = ""
		case "report":
			state.Report = ""
		}
	}
}

// printTags lists the tags accepted by --tag, grouped by module.
func printTags(w io.Writer) {
	var current util.Module = -1
	for _, t := range util.ListTags() {
		if t.Module != current {
			if current != -1 {
				fmt.Fprintln(w)
			}
			current = t.Module
			fmt.Fprintf(w, "%s:\n", t.Module)
		}
		fmt.Fprintf(w, "  %-28s (%04X,%04X)\n", t.Name, t.Tag.Group, t.Tag.Element)
	}
}
