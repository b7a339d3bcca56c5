package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() returned error: %v", err)
	}
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Education[0].Degree = "changed"
	a.Profile.Interests[0] = "changed"

	b := Default()
	if b.Education[0].Degree == "changed" || b.Profile.Interests[0] == "changed" {
		t.Fatalf("Default() shares state between calls")
	}
}

func TestSupervisorList(t *testing.T) {
	e := EducationEntry{Supervisors: []string{"Dr. A", "Dr. B"}}
	if got, want := e.SupervisorList(), "Dr. A, Dr. B"; got != want {
		t.Fatalf("SupervisorList() = %q, want %q", got, want)
	}
	if got := (EducationEntry{}).SupervisorList(); got != "" {
		t.Fatalf("SupervisorList() on empty entry = %q, want empty", got)
	}
}

func TestValidateReportsEveryBlankField(t *testing.T) {
	site := Default()
	site.Education[1].Institution = "  "
	site.Experience[0].Description = ""
	site.FriendLinks[2].Title = ""

	err := site.Validate()
	if err == nil {
		t.Fatalf("Validate() expected error")
	}
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("Validate() error %v does not wrap ErrMissingField", err)
	}
	for _, path := range []string{"education[1].institution", "experience[0].description", "friend_links[2].title"} {
		if !strings.Contains(err.Error(), path) {
			t.Fatalf("Validate() error missing %s: %v", path, err)
		}
	}
}

func TestValidateRequiresNavigationTargets(t *testing.T) {
	site := Default()
	site.Lang = ""
	site.DocsURL = ""
	site.BlogURL = " "

	err := site.Validate()
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("Validate() = %v, want ErrMissingField", err)
	}
	for _, path := range []string{"lang", "docs_url", "blog_url"} {
		if !strings.Contains(err.Error(), path+":") {
			t.Fatalf("Validate() error missing %s: %v", path, err)
		}
	}

	if _, err := Parse([]byte("docs_url: \"\"\n")); !errors.Is(err, ErrMissingField) {
		t.Fatalf("Parse() with empty docs_url = %v, want ErrMissingField", err)
	}
}

func TestValidateOptionalFieldsMayBeEmpty(t *testing.T) {
	site := Default()
	site.Education[0].Note = ""
	site.Education[0].Supervisors = nil
	site.FriendLinks[0].Avatar = ""

	if err := site.Validate(); err != nil {
		t.Fatalf("Validate() returned error for optional fields: %v", err)
	}
}

func TestValidateRejectsRelativeFriendLink(t *testing.T) {
	inputs := []string{"/local/path", "ftp://example.com", "https://"}
	for _, input := range inputs {
		site := Default()
		site.FriendLinks[0].Website = input
		err := site.Validate()
		if !errors.Is(err, ErrInvalidURL) {
			t.Fatalf("Validate() with website %q = %v, want ErrInvalidURL", input, err)
		}
	}
}

func TestIsExternal(t *testing.T) {
	tests := map[string]bool{
		"https://github.com":         true,
		"http://example.com/a":       true,
		"/docs/knowledge":            false,
		"mailto:someone@example.com": false,
		"":                           false,
		"HTTPS://docusaurus.io/":     true,
		"Http://example.com":         true,
		"//cdn.example.com/x.png":    false,
	}
	for input, want := range tests {
		if got := IsExternal(input); got != want {
			t.Fatalf("IsExternal(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
title: Test Site
profile:
  name: Test Person
  title: Researcher
  affiliation: Somewhere
  interests: [Go, Networks]
friend_links:
  - title: Example
    description: An example site
    website: https://example.com
`)

	site, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if site.Title != "Test Site" {
		t.Fatalf("Title = %q, want %q", site.Title, "Test Site")
	}
	if got := strings.Join(site.Profile.Interests, ","); got != "Go,Networks" {
		t.Fatalf("Interests = %q, want %q", got, "Go,Networks")
	}
	if len(site.FriendLinks) != 1 || site.FriendLinks[0].Avatar != "" {
		t.Fatalf("FriendLinks = %+v, want single entry without avatar", site.FriendLinks)
	}
	if len(site.Education) != len(Default().Education) {
		t.Fatalf("Education was not kept from defaults")
	}
}

func TestParseEmptyDocumentKeepsDefaults(t *testing.T) {
	site, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) returned error: %v", err)
	}
	if site.Profile.NameEn != Default().Profile.NameEn {
		t.Fatalf("Parse(nil) did not keep defaults")
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	if _, err := Parse([]byte("unknown_key: 1\n")); err == nil {
		t.Fatalf("Parse() expected error for unknown field")
	}
}

func TestParseRejectsInvalidContent(t *testing.T) {
	data := []byte(`
experience:
  - title: Engineer
    organization: ""
    period: "2020"
    description: Something
`)
	_, err := Parse(data)
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("Parse() = %v, want ErrMissingField", err)
	}
}

func TestLoad(t *testing.T) {
	site, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if site.Title != Default().Title {
		t.Fatalf("Load(\"\") did not return defaults")
	}

	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("tagline: From file\n"), 0644); err != nil {
		t.Fatalf("write content file: %v", err)
	}
	site, err = Load(path)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", path, err)
	}
	if site.Tagline != "From file" {
		t.Fatalf("Tagline = %q, want %q", site.Tagline, "From file")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Load() expected error for missing file")
	}
}
