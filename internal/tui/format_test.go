package tui

import "testing"

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{65, "01:05"},
		{3599, "59:59"},
		{7384, "02:03:04"},
		{-5, "00:00"},
	}
	for _, c := range cases {
		if got := formatSeconds(c.in); got != c.want {
			t.Fatalf("formatSeconds(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("short", 10); got != "short" {
		t.Fatalf("expected label to remain unchanged, got %q", got)
	}
	if got := truncateLabel("a rather long task name", 8); got == "a rather long task name" {
		t.Fatalf("expected label to be truncated, got %q", got)
	}
	if got := truncateLabel("anything", 0); got != "" {
		t.Fatalf("expected empty result for zero width, got %q", got)
	}
}

func TestNextThemeNameCycles(t *testing.T) {
	seen := map[string]bool{}
	name := ThemeOrder[0]
	for range ThemeOrder {
		seen[name] = true
		name = nextThemeName(name)
	}
	if name != ThemeOrder[0] {
		t.Fatalf("expected the cycle to wrap, ended on %q", name)
	}
	for _, want := range ThemeOrder {
		if !seen[want] {
			t.Fatalf("theme %q never reached", want)
		}
	}
	if got := nextThemeName("no-such-theme"); got != ThemeOrder[0] {
		t.Fatalf("expected unknown theme to reset the cycle, got %q", got)
	}
}
