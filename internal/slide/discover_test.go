package slide

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestBuilder_Build(t *testing.T) {
	b := Builder{Root: "/deck/slides", Extension: ".html"}

	tests := []struct {
		name  string
		entry Entry
		want  Descriptor
		ok    bool
	}{
		{
			name:  "root level slide has no group",
			entry: Entry{Dir: "/deck/slides", Name: "a.html", Path: "/deck/slides/a.html"},
			want:  Descriptor{Name: "a.html", Path: "/deck/slides/a.html"},
			ok:    true,
		},
		{
			name:  "nested slide takes directory name",
			entry: Entry{Dir: "/deck/slides/01-intro", Name: "a.html", Path: "/deck/slides/01-intro/a.html"},
			want:  Descriptor{Name: "a.html", Group: "01-intro", Path: "/deck/slides/01-intro/a.html"},
			ok:    true,
		},
		{
			name:  "other extensions are rejected",
			entry: Entry{Dir: "/deck/slides", Name: "notes.md", Path: "/deck/slides/notes.md"},
		},
		{
			name:  "extension match is exact",
			entry: Entry{Dir: "/deck/slides", Name: "a.htm", Path: "/deck/slides/a.htm"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.Build(tt.entry)
			assert.Equal(t, tt.ok, ok)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Build() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDescriptor_Label(t *testing.T) {
	assert.Equal(t, "a.html", root("a.html").Label())
	assert.Equal(t, "g/a.html", grouped("g", "a.html").Label())
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "z.html"), "<p>z</p>")
	writeFile(t, filepath.Join(dir, "readme.txt"), "skip")
	writeFile(t, filepath.Join(dir, "01-intro", "a.html"), "<p>a</p>")
	writeFile(t, filepath.Join(dir, "01-intro", "b.html"), "<p>b</p>")
	writeFile(t, filepath.Join(dir, "01-intro", "deep", "c.html"), "<p>too deep</p>")

	got, err := Discover(context.Background(), dir, 1, ".html")
	require.NoError(t, err)

	want := []Descriptor{
		{Name: "a.html", Group: "01-intro", Path: filepath.Join(dir, "01-intro", "a.html")},
		{Name: "b.html", Group: "01-intro", Path: filepath.Join(dir, "01-intro", "b.html")},
		{Name: "z.html", Path: filepath.Join(dir, "z.html")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Discover() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscover_DepthZeroOnlyRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.html"), "a")
	writeFile(t, filepath.Join(dir, "g", "b.html"), "b")

	got, err := Discover(context.Background(), dir, 0, ".html")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a.html", got[0].Name)
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := Discover(context.Background(), filepath.Join(t.TempDir(), "missing"), 1, ".html")
	assert.Error(t, err)
}

func TestDiscover_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.html"), "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Discover(ctx, dir, 1, ".html")
	assert.ErrorIs(t, err, context.Canceled)
}
