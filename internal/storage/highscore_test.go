package storage

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseHighScore(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"42", 42},
		{" 42\n", 42},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"-5", 0},
		{"3.5", 0},
		{"99999999999999999999999", 0},
	}

	for _, tc := range tests {
		if got := ParseHighScore(tc.raw); got != tc.want {
			t.Errorf("ParseHighScore(%q) = %d, expected %d", tc.raw, got, tc.want)
		}
	}
}

func TestHighScoresRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	hs := NewHighScores(store, nil)

	if got := hs.LoadHighScore(); got != 0 {
		t.Errorf("empty store high score = %d, expected 0", got)
	}

	hs.SaveHighScore(23)
	if got := hs.LoadHighScore(); got != 23 {
		t.Errorf("LoadHighScore() = %d, expected 23", got)
	}

	// Stored as a plain decimal string
	raw, _, _ := store.Get(HighScoreKey)
	if raw != "23" {
		t.Errorf("stored value = %q, expected \"23\"", raw)
	}

	if err := hs.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if got := hs.LoadHighScore(); got != 0 {
		t.Errorf("high score after reset = %d, expected 0", got)
	}
}

func TestHighScoresMalformedValue(t *testing.T) {
	store, _ := openTestStore(t)
	store.Set(HighScoreKey, "not-a-number")

	if got := NewHighScores(store, nil).LoadHighScore(); got != 0 {
		t.Errorf("malformed value should read as 0, got %d", got)
	}
}

func TestHighScoresSurviveClosedStore(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	hs := NewHighScores(store, nil)
	store.Close()

	// Both directions must stay quiet on a dead database
	if got := hs.LoadHighScore(); got != 0 {
		t.Errorf("LoadHighScore() on a closed store = %d, expected 0", got)
	}
	hs.SaveHighScore(10)
}

func TestHighScoresWarnsOnlyOnMalformed(t *testing.T) {
	tests := []struct {
		raw      string
		want     int
		warnings bool
	}{
		{"0", 0, false},
		{"00", 0, false},
		{"+0", 0, false},
		{"12", 12, false},
		{"junk", 0, true},
		{"-3", 0, true},
	}

	for _, tc := range tests {
		store, _ := openTestStore(t)
		store.Set(HighScoreKey, tc.raw)

		var buf bytes.Buffer
		got := NewHighScores(store, log.New(&buf)).LoadHighScore()
		if got != tc.want {
			t.Errorf("LoadHighScore(%q) = %d, expected %d", tc.raw, got, tc.want)
		}
		if warned := strings.Contains(buf.String(), "malformed"); warned != tc.warnings {
			t.Errorf("stored %q: warned = %v, expected %v (log: %q)", tc.raw, warned, tc.warnings, buf.String())
		}
	}
}
