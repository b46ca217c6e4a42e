package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	if Truncate("hello", 10) != "hello" {
		t.Error("short string unchanged")
	}
	if Truncate("hello world", 5) != "hello..." {
		t.Errorf("got %s", Truncate("hello world", 5))
	}
	if Truncate("x", 0) != "x" {
		t.Error("maxLen 0 returns as-is")
	}
}

func TestTruncateHard(t *testing.T) {
	if TruncateHard("hello world", 5) != "hello" {
		t.Errorf("got %s", TruncateHard("hello world", 5))
	}
	if TruncateHard("hi", 5) != "hi" {
		t.Error("short string unchanged")
	}
}

func TestTruncate_runeBoundaries(t *testing.T) {
	s := strings.Repeat("世", 10)
	got := Truncate(s, 4)
	if got != "世世世世..." {
		t.Errorf("got %q", got)
	}
	if !utf8.ValidString(got) {
		t.Errorf("invalid UTF-8: %q", got)
	}
}

func TestTruncateHard_runeBoundaries(t *testing.T) {
	s := strings.Repeat("é", 8)
	got := TruncateHard(s, 3)
	if got != "ééé" {
		t.Errorf("got %q", got)
	}
	if !utf8.ValidString(got) {
		t.Errorf("invalid UTF-8: %q", got)
	}
	// A limit past the rune count leaves the string untouched.
	if TruncateHard("世界", 5) != "世界" {
		t.Error("short multi-byte string changed")
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if CollapseWhitespace("  a \n\t b  c ") != "a b c" {
		t.Errorf("got %q", CollapseWhitespace("  a \n\t b  c "))
	}
	if CollapseWhitespace("") != "" {
		t.Error("empty unchanged")
	}
}
