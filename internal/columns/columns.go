package columns

import (
	"fmt"

	"github.com/studiowebux/buoycli/internal/types"
)

// Layout is the ordered column set displayed for one feed.
type Layout []types.Column

// Names returns the display names in column order, used as header rows by
// the table view and the exporters.
func (l Layout) Names() []string {
	names := make([]string, len(l))
	for i, c := range l {
		names[i] = c.Name
	}
	return names
}

// Validate rejects overrides that name unknown columns or carry
// non-positive widths.
func Validate(layout Layout, overrides []types.Column) error {
	known := make(map[string]bool, len(layout))
	for _, c := range layout {
		known[c.Name] = true
	}

	for _, o := range overrides {
		if !known[o.Name] {
			return fmt.Errorf("unknown column %q", o.Name)
		}
		if o.Width <= 0 {
			return fmt.Errorf("column %q: width must be positive, got %d", o.Name, o.Width)
		}
	}

	return nil
}

// Merge applies user width overrides onto a default layout by column name.
// Column order and membership are fixed; only widths are configurable.
func Merge(layout Layout, overrides []types.Column) (Layout, error) {
	if err := Validate(layout, overrides); err != nil {
		return nil, err
	}

	merged := make(Layout, len(layout))
	copy(merged, layout)

	for _, o := range overrides {
		for i := range merged {
			if merged[i].Name == o.Name {
				merged[i].Width = o.Width
			}
		}
	}

	return merged, nil
}

// For resolves the effective layout for a feed: compiled-in defaults plus
// any user overrides from the settings file.
func For(feedName string, overrides []types.Column) (Layout, error) {
	layout, ok := Defaults(feedName)
	if !ok {
		return nil, fmt.Errorf("unknown feed %q", feedName)
	}
	return Merge(layout, overrides)
}
