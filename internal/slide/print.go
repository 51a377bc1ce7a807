package slide

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// PrintHierarchy writes the slide order to w: each group label on its own
// line followed by its slides, root slides unindented.
func PrintHierarchy(w io.Writer, slides []Descriptor) error {
	r := lipgloss.NewRenderer(w)
	groupStyle := r.NewStyle().Bold(true)

	if _, err := fmt.Fprintln(w, "Slides will be added in the following order and hierarchy:"); err != nil {
		return err
	}

	current := ""
	for _, s := range slides {
		if s.Group != current {
			if s.Grouped() {
				if _, err := fmt.Fprintln(w, groupStyle.Render(s.Group)); err != nil {
					return err
				}
			}
			current = s.Group
		}

		var err error
		if s.Grouped() {
			_, err = fmt.Fprintln(w, "⊢", s.Name)
		} else {
			_, err = fmt.Fprintln(w, s.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
