package slide

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintHierarchy(t *testing.T) {
	var buf bytes.Buffer
	err := PrintHierarchy(&buf, []Descriptor{
		grouped("01-intro", "a.html"),
		grouped("01-intro", "b.html"),
		root("z.html"),
		grouped("02-body", "x.html"),
	})
	require.NoError(t, err)

	want := "Slides will be added in the following order and hierarchy:\n" +
		"01-intro\n" +
		"⊢ a.html\n" +
		"⊢ b.html\n" +
		"z.html\n" +
		"02-body\n" +
		"⊢ x.html\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintHierarchy_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintHierarchy(&buf, nil))
	assert.Equal(t, "Slides will be added in the following order and hierarchy:\n", buf.String())
}
