package corpus

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VanillaDeath/Wilbot/pkg/corpus/mocks"
)

func newLearner() (*mocks.LearnerMock, *[]string) {
	learned := &[]string{}
	return &mocks.LearnerMock{
		LearnFunc: func(text string) { *learned = append(*learned, text) },
	}, learned
}

func TestTrainer_TrainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	data := "first sentence here\n\n  \nsecond one with #tag\n@someone @other@example.social\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	learner, learned := newLearner()
	trainer := NewTrainer(learner, nil)

	count, err := trainer.TrainFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2, count, "blank lines and mention-only lines don't count")
	assert.Equal(t, []string{"first sentence here", "second one with tag"}, *learned)
}

func TestTrainer_TrainFileMissing(t *testing.T) {
	learner, _ := newLearner()
	trainer := NewTrainer(learner, nil)
	_, err := trainer.TrainFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestTrainer_TrainURL(t *testing.T) {
	learner, learned := newLearner()
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(_ context.Context, _ string) (string, error) {
			return "paragraph one\n\nparagraph two", nil
		},
	}
	trainer := NewTrainer(learner, extractor)

	count, err := trainer.TrainURL(context.Background(), "https://example.com/article")
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"paragraph one", "paragraph two"}, *learned)
	require.Len(t, extractor.ExtractCalls(), 1)
	assert.Equal(t, "https://example.com/article", extractor.ExtractCalls()[0].Url)
}

func TestTrainer_TrainURLErrors(t *testing.T) {
	learner, _ := newLearner()
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(_ context.Context, _ string) (string, error) {
			return "", fmt.Errorf("boom")
		},
	}
	trainer := NewTrainer(learner, extractor)
	_, err := trainer.TrainURL(context.Background(), "https://example.com/article")
	require.Error(t, err)

	// no extractor configured
	trainer = NewTrainer(learner, nil)
	_, err = trainer.TrainURL(context.Background(), "https://example.com/article")
	require.Error(t, err)
}

func TestTrainer_TrainFeed(t *testing.T) {
	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Test Feed</title>
<item><title>Hello world news</title><description>&lt;p&gt;Body of the first item&lt;/p&gt;</description></item>
<item><title>Second item title</title><description></description></item>
</channel></rss>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rss))
	}))
	defer srv.Close()

	learner, learned := newLearner()
	trainer := NewTrainer(learner, nil)

	count, err := trainer.TrainFeed(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, 3, count)
	assert.Contains(t, *learned, "Hello world news")
	assert.Contains(t, *learned, "Body of the first item")
	assert.Contains(t, *learned, "Second item title")
}

func TestTrainer_TrainFeedBadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	learner, _ := newLearner()
	trainer := NewTrainer(learner, nil)
	_, err := trainer.TrainFeed(context.Background(), srv.URL)
	require.Error(t, err)
}
