package corpus

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/VanillaDeath/Wilbot/pkg/content"
)

//go:generate moq -out mocks/learner.go -pkg mocks -skip-ensure -fmt goimports . Learner
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// Learner consumes cleaned training sentences
type Learner interface {
	Learn(text string)
}

// Extractor pulls readable text from an article URL
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Trainer feeds bulk text sources into the generation engine: plain text
// files, article URLs and RSS/Atom feeds
type Trainer struct {
	learner   Learner
	extractor Extractor
	parser    *gofeed.Parser
}

// NewTrainer creates a trainer for the given learner
func NewTrainer(learner Learner, extractor Extractor) *Trainer {
	return &Trainer{
		learner:   learner,
		extractor: extractor,
		parser:    gofeed.NewParser(),
	}
}

// TrainFile learns every non-empty line of a text file, returns the number
// of lines learned
func (t *Trainer) TrainFile(path string) (int, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator console
	if err != nil {
		return 0, fmt.Errorf("open training file: %w", err)
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := content.Clean(scanner.Text()); line != "" {
			t.learner.Learn(line)
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("read training file: %w", err)
	}
	return count, nil
}

// TrainURL extracts the main text of an article and learns it line by line
func (t *Trainer) TrainURL(ctx context.Context, url string) (int, error) {
	if t.extractor == nil {
		return 0, fmt.Errorf("no article extractor configured")
	}

	text, err := t.extractor.Extract(ctx, url)
	if err != nil {
		return 0, fmt.Errorf("extract article: %w", err)
	}

	count := 0
	for _, line := range strings.Split(text, "\n") {
		if line = content.Clean(line); line != "" {
			t.learner.Learn(line)
			count++
		}
	}
	return count, nil
}

// TrainFeed learns the titles and summaries of all items in an RSS/Atom feed
func (t *Trainer) TrainFeed(ctx context.Context, url string) (int, error) {
	feed, err := t.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return 0, fmt.Errorf("parse feed %s: %w", url, err)
	}

	count := 0
	for _, item := range feed.Items {
		for _, raw := range []string{item.Title, item.Description} {
			if text := content.Clean(content.PlainText(raw)); text != "" {
				t.learner.Learn(text)
				count++
			}
		}
	}
	return count, nil
}
