// Package pipeline runs one full slide merge: discover, sort, assemble, write.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slidemerge/internal/assemble"
	"slidemerge/internal/config"
	"slidemerge/internal/output"
	"slidemerge/internal/slide"
)

// ErrTemplateMissing is returned by CheckTemplate when the template path
// does not exist.
var ErrTemplateMissing = errors.New("template file does not exist")

// Paths are the three locations a run works with.
type Paths struct {
	Template string
	Slides   string
	Output   string
}

// CheckTemplate verifies that the template exists before any run starts.
func CheckTemplate(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrTemplateMissing, path)
		}
		return fmt.Errorf("failed to stat template %s: %w", path, err)
	}
	return nil
}

// Report summarizes a finished run.
type Report struct {
	RunID    string
	Slides   int
	Sections int
	Bytes    int
	Duration time.Duration
}

// Runner executes the pipeline. Each call to Run starts from scratch; no
// state is carried between runs.
type Runner struct {
	cfg       *config.Config
	log       *zap.Logger
	out       io.Writer
	assembler *assemble.Assembler
	writer    output.Writer
}

// NewRunner returns a Runner that prints the slide hierarchy to out.
func NewRunner(cfg *config.Config, log *zap.Logger, out io.Writer) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Runner{
		cfg:       cfg,
		log:       log,
		out:       out,
		assembler: assemble.New(cfg.ContainerID, cfg.SectionTag, log),
		writer:    output.Writer{Atomic: cfg.Output.Atomic, Perm: cfg.Output.Perm},
	}
}

// Run merges the slides under p.Slides into p.Template and writes p.Output.
// The output is only touched after assembly has fully succeeded.
func (r *Runner) Run(ctx context.Context, p Paths) (*Report, error) {
	start := time.Now()
	report := &Report{RunID: uuid.NewString()}
	log := r.log.With(zap.String("run", report.RunID))

	slides, err := slide.Discover(ctx, p.Slides, r.cfg.MaxDepth, r.cfg.Extension)
	if err != nil {
		return nil, err
	}
	slide.NewSorter(r.cfg.Language()).Sort(slides)
	report.Slides = len(slides)
	log.Debug("slides discovered",
		zap.String("path", p.Slides),
		zap.Int("slides", len(slides)),
		zap.Int("runs", slide.Runs(slides)))

	if err := slide.PrintHierarchy(r.out, slides); err != nil {
		return nil, fmt.Errorf("failed to print slide hierarchy: %w", err)
	}

	res, err := r.assembler.Assemble(ctx, p.Template, slides)
	if err != nil {
		return nil, err
	}
	report.Sections = res.Sections

	var buf bytes.Buffer
	if err := res.Document.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render presentation: %w", err)
	}
	report.Bytes = buf.Len()

	if err := r.writer.Write(ctx, p.Output, &buf); err != nil {
		return nil, err
	}

	report.Duration = time.Since(start)
	log.Info("presentation written",
		zap.String("output", p.Output),
		zap.Int("slides", report.Slides),
		zap.Int("sections", report.Sections),
		zap.Int("bytes", report.Bytes),
		zap.Duration("took", report.Duration))
	return report, nil
}
