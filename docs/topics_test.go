package docs

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics keeps the documentation in sync with itself: every topic
// listed in readme.md must load, and every topic file must be listed in
// readme.md.
func TestTopics(t *testing.T) {
	readme, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("reading readme.md: %v", err)
	}

	listed := map[string]bool{}
	re := regexp.MustCompile("`([a-z]+)`:")
	for _, match := range re.FindAllStringSubmatch(string(readme), -1) {
		listed[match[1]] = true
		if _, err := GetTopic(match[1]); err != nil {
			t.Errorf("readme lists topic %q but GetTopic fails: %v", match[1], err)
		}
	}

	all, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() error: %v", err)
	}
	for _, name := range all {
		if !listed[name] {
			t.Errorf("topic %q exists but is not listed in readme.md", name)
		}
	}
}

// TestTopicsAreMarkdown parses every topic and checks it starts with a
// level-1 heading.
func TestTopicsAreMarkdown(t *testing.T) {
	all, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() error: %v", err)
	}
	all = append(all, "readme")

	for _, name := range all {
		content, err := GetTopic(name)
		if err != nil {
			t.Errorf("GetTopic(%q) error: %v", name, err)
			continue
		}

		source := []byte(content)
		doc := goldmark.DefaultParser().Parse(text.NewReader(source))
		first := doc.FirstChild()
		heading, ok := first.(*ast.Heading)
		if !ok || heading.Level != 1 {
			t.Errorf("topic %q does not start with a level-1 heading", name)
			continue
		}
		title := string(heading.Text(source))
		if strings.TrimSpace(title) == "" {
			t.Errorf("topic %q has an empty title", name)
		}
	}
}

func TestGetTopicsExpandsStar(t *testing.T) {
	content, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) error: %v", err)
	}
	for _, want := range []string{"# Performance", "# Classification", "# Files"} {
		if !strings.Contains(content, want) {
			t.Errorf("GetTopics(*) missing %q", want)
		}
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(nope) = nil error, want error")
	}
}
