// Package assemble builds the presentation document from sorted slides.
package assemble

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"slidemerge/internal/dom"
	"slidemerge/internal/slide"
)

// ErrContainerNotFound is returned when the template has no element with
// the configured container id.
var ErrContainerNotFound = errors.New("slides container not found")

// Assembler fills a template's container with one section per group run.
type Assembler struct {
	ContainerID string
	SectionTag  string

	// ReadFile loads template and fragment markup. Defaults to os.ReadFile.
	ReadFile func(path string) ([]byte, error)

	log *zap.Logger
}

// New returns an Assembler for the given container id and section tag.
func New(containerID, sectionTag string, log *zap.Logger) *Assembler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{
		ContainerID: containerID,
		SectionTag:  sectionTag,
		ReadFile:    os.ReadFile,
		log:         log,
	}
}

// Result is an assembled presentation that has not been written yet.
type Result struct {
	Document *dom.Document
	Sections int
	Nodes    int
}

// Assemble parses the template at templatePath, clears its container and
// moves the body content of each slide into it. A new section is opened
// whenever a slide's group differs from the previous slide's group, so the
// slides must already be sorted.
func (a *Assembler) Assemble(ctx context.Context, templatePath string, slides []slide.Descriptor) (*Result, error) {
	raw, err := a.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	doc, err := dom.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", templatePath, err)
	}

	container, ok := doc.ElementByID(a.ContainerID)
	if !ok {
		return nil, fmt.Errorf("%w: no element with id %q in %s", ErrContainerNotFound, a.ContainerID, templatePath)
	}
	container.Clear()

	res := &Result{Document: doc}
	var (
		section dom.Element
		current string
	)
	for _, s := range slides {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// The zero Element doubles as the "no group yet" cursor, so the first
		// slide always opens a section, root-level or not.
		if !section.Valid() || s.Group != current {
			section = doc.CreateElement(a.SectionTag)
			container.AppendChild(section)
			current = s.Group
			res.Sections++
		}

		n, err := a.transplant(section, s)
		if err != nil {
			return nil, err
		}
		res.Nodes += n
		a.log.Debug("slide added",
			zap.String("slide", s.Label()),
			zap.Int("section", res.Sections),
			zap.Int("nodes", n))
	}

	return res, nil
}

// transplant moves the body children of the slide fragment into section.
func (a *Assembler) transplant(section dom.Element, s slide.Descriptor) (int, error) {
	raw, err := a.ReadFile(s.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to read slide %s: %w", s.Label(), err)
	}
	frag, err := dom.Parse(bytes.NewReader(raw))
	if err != nil {
		return 0, fmt.Errorf("slide %s: %w", s.Label(), err)
	}
	body, ok := frag.Body()
	if !ok {
		return 0, nil
	}
	return section.MoveChildren(body), nil
}
