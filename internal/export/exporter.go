// Package export writes report documents to disk in the registered formats.
package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mrsinham/reportforge/internal/dicom"
	"github.com/mrsinham/reportforge/internal/docx"
	"github.com/mrsinham/reportforge/internal/report"
	"github.com/mrsinham/reportforge/internal/util"
	"github.com/rs/zerolog"
)

// Options configure an Exporter.
type Options struct {
	OutputDir   string
	Labels      report.Labels
	Signatory   report.Signatory
	Institution string
	Tags        util.ParsedTags
	// Now stamps documents; nil uses time.Now.
	Now    func() time.Time
	Logger zerolog.Logger
}

// Exporter builds and writes report files.
type Exporter struct {
	opts Options
}

// New returns an Exporter writing into opts.OutputDir ("." when empty).
func New(opts Options) *Exporter {
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Exporter{opts: opts}
}

// Build returns the document tree of rec with the exporter's labels and signatory.
func (e *Exporter) Build(rec report.Record) report.Document {
	return report.Build(rec, e.opts.Labels, e.opts.Signatory)
}

// Export encodes doc in the named format and writes it next to the other
// exports of rec. It returns the path written.
func (e *Exporter) Export(ctx context.Context, doc report.Document, rec report.Record, format string) (string, error) {
	paths, err := e.export(ctx, doc, rec, []string{format})
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// ExportRecord builds the document of rec and writes it once per format.
// DICOM files of one call share a study. Writing stops at the first failure;
// files already written are kept and returned.
func (e *Exporter) ExportRecord(ctx context.Context, rec report.Record, formats []string) ([]string, error) {
	if len(formats) == 0 {
		formats = []string{DefaultFormat}
	}
	return e.export(ctx, e.Build(rec), rec, formats)
}

func (e *Exporter) export(ctx context.Context, doc report.Document, rec report.Record, names []string) ([]string, error) {
	resolved := make([]Format, 0, len(names))
	for _, n := range names {
		f, err := LookupFormat(n)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, f)
	}

	now := e.opts.Now()
	payload := Payload{
		Document: doc,
		Record:   rec,
		DOCX:     docx.Options{Author: e.opts.Signatory.Name, Created: now},
		DICOM: dicom.Options{
			Institution:      e.opts.Institution,
			Signatory:        e.opts.Signatory,
			Created:          now,
			StudyInstanceUID: dicom.NewUID(),
			Tags:             e.opts.Tags,
		},
	}

	if !report.ValidateIdentityNumber(rec.IdentityNumber) {
		e.opts.Logger.Warn().Str("identity_number", rec.IdentityNumber).Msg("exporting record with invalid identity number")
	}

	var written []string
	for _, f := range resolved {
		path, err := e.write(ctx, f, payload)
		if err != nil {
			e.opts.Logger.Error().Err(err).Str("format", f.Name).Msg("export failed")
			return written, err
		}
		e.opts.Logger.Info().Str("format", f.Name).Str("path", path).Msg("report exported")
		written = append(written, path)
	}
	return written, nil
}

// write encodes into memory first so a failing encoder never leaves a file
// behind, then writes a temporary file and renames it into place.
func (e *Exporter) write(ctx context.Context, f Format, p Payload) (string, error) {
	path := filepath.Join(e.opts.OutputDir, FileName(p.Record.Name, f.Extension))

	var buf bytes.Buffer
	if err := f.Encode(&buf, p); err != nil {
		return "", &Error{Op: "encode", Format: f.Name, Path: path, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return "", &Error{Op: "write", Format: f.Name, Path: path, Err: err}
	}

	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil {
		return "", &Error{Op: "create", Format: f.Name, Path: e.opts.OutputDir, Err: err}
	}

	tmp, err := os.CreateTemp(e.opts.OutputDir, ".reportforge-*")
	if err != nil {
		return "", &Error{Op: "create", Format: f.Name, Path: path, Err: err}
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", &Error{Op: "write", Format: f.Name, Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", &Error{Op: "write", Format: f.Name, Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return "", &Error{Op: "write", Format: f.Name, Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return "", &Error{Op: "rename", Format: f.Name, Path: path, Err: fmt.Errorf("move into place: %w", err)}
	}
	return path, nil
}
