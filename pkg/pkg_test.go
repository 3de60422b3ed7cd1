package pkg

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "boardgen"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestDescription(t *testing.T) {
	expected := "Scoreboard HUD layout generator"
	if Description != expected {
		t.Errorf("Expected Description to be %q, got %q", expected, Description)
	}
}

func TestVersion(t *testing.T) {
	// Version is embedded from the VERSION file next to this package.
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); Version != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version)
	}
}

func TestAuthor(t *testing.T) {
	if len(Author) == 0 {
		t.Error("Expected Author to have at least one entry")
	}

	// Test if a known author is present
	if len(Author) > 0 {
		expectedName := "ardnew"
		expectedEmail := "andrew@ardnew.com"

		if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
			return a.Name == expectedName && a.Email == expectedEmail
		}) {
			t.Errorf("Expected Author to contain %q, %q", expectedName, expectedEmail)
		}
	}
}

func TestConfigPath(t *testing.T) {
	if got := ConfigPath(); got != ConfigDir() {
		t.Errorf("ConfigPath() = %q, want %q", got, ConfigDir())
	}

	want := filepath.Join(ConfigDir(), "config.yaml")
	if got := ConfigPath("config.yaml"); got != want {
		t.Errorf("ConfigPath(config.yaml) = %q, want %q", got, want)
	}

	if base := filepath.Base(CachePath()); base != Prefix() {
		t.Errorf("CachePath() base = %q, want %q", base, Prefix())
	}
}
