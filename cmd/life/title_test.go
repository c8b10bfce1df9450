package main

import (
	"strings"
	"testing"
)

func TestWindowTitle(t *testing.T) {
	got := windowTitle("life")
	if got != "mutalife: life" {
		t.Fatalf("title=%q, expected %q", got, "mutalife: life")
	}
	if strings.ContainsRune(got, '—') {
		t.Fatalf("title %q contains an em-dash", got)
	}
}
