package cli

import (
	"strings"
	"testing"
	"time"
)

func TestTableRendering(t *testing.T) {
	table := NewTable(NewTableOpts{
		Headers: []string{"user", "login time", "count"},
		Rows: func(t *Table) error {
			return t.NewRow("some-user", time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC), 3)
		},
	})
	output := table.Render().GetString()
	for _, expected := range []string{"some-user", "2026-08-01T10:30:00Z", "3"} {
		if !strings.Contains(output, expected) {
			t.Errorf("expected table output to contain '%s', got: %s", expected, output)
		}
	}
}
