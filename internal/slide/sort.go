package slide

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter orders descriptors so slides of one group end up adjacent.
// A Sorter is not safe for concurrent use.
type Sorter struct {
	col *collate.Collator
}

// NewSorter returns a Sorter collating with the rules of tag.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{col: collate.New(tag)}
}

// Compare returns a negative number when a sorts before b, positive when
// after, and zero when they are equal.
//
// When exactly one of the two slides is ungrouped, its name is compared with
// the other slide's group label, not the other slide's name. A root slide
// whose name collates equal to a group label therefore ties with every slide
// of that group while those slides still order among themselves, so the
// ordering is not transitive and the group can end up split into two runs.
func (s *Sorter) Compare(a, b Descriptor) int {
	switch {
	case !a.Grouped() && !b.Grouped():
		return s.col.CompareString(a.Name, b.Name)
	case !a.Grouped():
		return s.col.CompareString(a.Name, b.Group)
	case !b.Grouped():
		return s.col.CompareString(a.Group, b.Name)
	case a.Group == b.Group:
		return s.col.CompareString(a.Name, b.Name)
	default:
		return s.col.CompareString(a.Group, b.Group)
	}
}

// Sort orders slides in place. Equal elements keep their discovery order.
func (s *Sorter) Sort(slides []Descriptor) {
	sort.SliceStable(slides, func(i, j int) bool {
		return s.Compare(slides[i], slides[j]) < 0
	})
}

// Runs returns the number of maximal contiguous same-group runs in slides,
// which is the number of horizontal slides the assembler will emit.
func Runs(slides []Descriptor) int {
	n := 0
	for i, s := range slides {
		if i == 0 || s.Group != slides[i-1].Group {
			n++
		}
	}
	return n
}
