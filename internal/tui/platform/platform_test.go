package platform

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestVerseURL(t *testing.T) {
	got, err := VerseURL(2, 255)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://quran.com/2/255" {
		t.Fatalf("unexpected URL: %q", got)
	}

	if _, err := VerseURL(115, 1); err == nil {
		t.Fatal("expected error for chapter out of range")
	}
	if _, err := VerseURL(1, 0); err == nil {
		t.Fatal("expected error for verse 0")
	}
}

func TestValidateURL(t *testing.T) {
	_, err := ValidateURL("ftp://example.com/path")
	if err == nil || !strings.Contains(err.Error(), "unsupported URL scheme") {
		t.Fatalf("expected unsupported scheme error, got %v", err)
	}

	_, err = ValidateURL("https://")
	if err == nil || !strings.Contains(err.Error(), "invalid URL host") {
		t.Fatalf("expected invalid host error, got %v", err)
	}
}

func TestBrowserCommand(t *testing.T) {
	cases := []struct {
		goos string
		name string
		args []string
	}{
		{goos: "darwin", name: "open", args: []string{"https://quran.com/1/1"}},
		{goos: "windows", name: "rundll32", args: []string{"url.dll,FileProtocolHandler", "https://quran.com/1/1"}},
		{goos: "linux", name: "xdg-open", args: []string{"https://quran.com/1/1"}},
	}
	for _, tc := range cases {
		gotName, gotArgs := browserCommand(tc.goos, "https://quran.com/1/1")
		if gotName != tc.name || !reflect.DeepEqual(gotArgs, tc.args) {
			t.Fatalf("browserCommand(%q) = (%q, %v), want (%q, %v)", tc.goos, gotName, gotArgs, tc.name, tc.args)
		}
	}
}

func TestSelectClipboardCommand(t *testing.T) {
	lookup := func(bin string) (string, error) {
		if bin == "wl-copy" {
			return "/usr/bin/wl-copy", nil
		}
		return "", errors.New("not found")
	}
	got, err := selectClipboardCommand(lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"wl-copy"}) {
		t.Fatalf("unexpected selected command: %v", got)
	}

	none := func(string) (string, error) { return "", errors.New("not found") }
	if _, err := selectClipboardCommand(none); err == nil {
		t.Fatal("expected error when no clipboard command is available")
	}
}
