package htmlutil

import (
	"strings"
	"testing"
)

func TestToText(t *testing.T) {
	in := `<h1>Ecological Impacts</h1><p><strong>Coral Bleaching</strong>: High risk due to temperatures exceeding 28°C.</p><br><br><br><br><p>Year 2025 &amp; 27.10</p>`
	got := ToText(in)

	for _, want := range []string{
		"Ecological Impacts",
		"Coral Bleaching: High risk due to temperatures exceeding 28°C.",
		"Year 2025 & 27.10",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ToText() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<") {
		t.Errorf("ToText() left markup in output:\n%s", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("ToText() kept blank runs:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") {
		t.Errorf("ToText() should end with a single newline: %q", got)
	}
}
