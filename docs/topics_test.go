package docs

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics keeps the readme and the topic files in sync: every topic the
// readme lists must load, and every topic file must be listed in the readme.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	if len(topicsInReadme) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("failed to list topics: %v", err)
	}
	for _, topic := range all {
		found := false
		for _, listed := range topicsInReadme {
			if listed == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

// TestTopicHeadings parses every topic with goldmark and checks it opens
// with a level-1 heading, which the terminal renderer relies on.
func TestTopicHeadings(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	all = append(all, "readme")

	for _, topic := range all {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			first := root.FirstChild()
			h, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("topic %q does not start with a heading", topic)
			}
			if h.Level != 1 {
				t.Errorf("topic %q starts with a level %d heading, want 1", topic, h.Level)
			}
		})
	}
}
