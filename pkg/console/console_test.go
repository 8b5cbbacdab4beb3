package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VanillaDeath/Wilbot/pkg/bot"
	"github.com/VanillaDeath/Wilbot/pkg/console/mocks"
	"github.com/VanillaDeath/Wilbot/pkg/domain"
	"github.com/VanillaDeath/Wilbot/pkg/repository"
)

func newTestConsole(in string) (*Console, *mocks.ControllerMock, *mocks.TrainerMock, *mocks.SettingsMock, *bytes.Buffer, *bool) {
	controller := &mocks.ControllerMock{
		SelfFunc:     func() domain.Account { return domain.Account{ID: "self-1", Acct: "wilbot", Username: "wilbot"} },
		GenerateFunc: func(seed string) string { return "word salad" },
		SayFunc:      func(ctx context.Context, text string) error { return nil },
		MessageFunc:  func(ctx context.Context, target, text string) error { return nil },
		LearnFunc:    func(ctx context.Context, text string) error { return nil },
		FollowTargetFunc: func(ctx context.Context, target string) (*domain.Account, error) {
			return &domain.Account{ID: "a-1", Acct: strings.TrimPrefix(target, "@")}, nil
		},
		UnfollowTargetFunc: func(ctx context.Context, target string) (*domain.Account, error) {
			return &domain.Account{ID: "a-1", Acct: strings.TrimPrefix(target, "@")}, nil
		},
		BlockTargetFunc:   func(ctx context.Context, target string) error { return nil },
		UnblockTargetFunc: func(ctx context.Context, target string) error { return nil },
		BlocksFunc:        func(ctx context.Context) ([]repository.Block, error) { return nil, nil },
		InfoFunc:          func(ctx context.Context) (bot.Info, error) { return bot.Info{}, nil },
	}
	trainer := &mocks.TrainerMock{
		TrainFileFunc: func(path string) (int, error) { return 3, nil },
		TrainURLFunc:  func(ctx context.Context, url string) (int, error) { return 5, nil },
		TrainFeedFunc: func(ctx context.Context, url string) (int, error) { return 7, nil },
	}
	settings := &mocks.SettingsMock{
		SetFunc:  func(key, value string) error { return nil },
		SaveFunc: func() error { return nil },
	}

	out := &bytes.Buffer{}
	cancelled := false
	c := New(controller, trainer, settings, strings.NewReader(in), out, func() { cancelled = true })
	return c, controller, trainer, settings, out, &cancelled
}

func TestConsole_BareTextPreview(t *testing.T) {
	c, controller, _, _, out, _ := newTestConsole("")

	assert.True(t, c.dispatch(context.Background(), "hello there"))

	require.Len(t, controller.GenerateCalls(), 1)
	assert.Equal(t, "hello there", controller.GenerateCalls()[0].Seed)
	assert.Contains(t, out.String(), "<@wilbot> word salad")
	// a preview never posts or learns
	assert.Empty(t, controller.SayCalls())
	assert.Empty(t, controller.LearnCalls())
}

func TestConsole_Say(t *testing.T) {
	c, controller, _, _, _, _ := newTestConsole("")

	c.dispatch(context.Background(), "/say hello fediverse")
	require.Len(t, controller.SayCalls(), 1)
	assert.Equal(t, "hello fediverse", controller.SayCalls()[0].Text)
}

func TestConsole_SayEmptyPostsGenerated(t *testing.T) {
	c, controller, _, _, out, _ := newTestConsole("")

	c.dispatch(context.Background(), "/say")
	require.Len(t, controller.GenerateCalls(), 1)
	require.Len(t, controller.SayCalls(), 1)
	assert.Equal(t, "word salad", controller.SayCalls()[0].Text)
	assert.Contains(t, out.String(), `"word salad"`)
}

func TestConsole_Message(t *testing.T) {
	c, controller, _, _, _, _ := newTestConsole("")

	c.dispatch(context.Background(), "/msg @alice@example.social you have won")
	require.Len(t, controller.MessageCalls(), 1)
	assert.Equal(t, "@alice@example.social", controller.MessageCalls()[0].Target)
	assert.Equal(t, "you have won", controller.MessageCalls()[0].Text)

	c.dispatch(context.Background(), "/dm @bob hi")
	assert.Len(t, controller.MessageCalls(), 2, "alias routes to the same command")
}

func TestConsole_Learn(t *testing.T) {
	c, controller, _, _, out, _ := newTestConsole("")

	c.dispatch(context.Background(), "/learn the rain in spain")
	require.Len(t, controller.LearnCalls(), 1)
	assert.Equal(t, "the rain in spain", controller.LearnCalls()[0].Text)
	assert.Contains(t, out.String(), "learned")

	c.dispatch(context.Background(), "/learn")
	assert.Len(t, controller.LearnCalls(), 1, "empty learn is rejected")
}

func TestConsole_TrainRouting(t *testing.T) {
	c, _, trainer, _, out, _ := newTestConsole("")

	c.dispatch(context.Background(), "/train corpus.txt")
	require.Len(t, trainer.TrainFileCalls(), 1)
	assert.Equal(t, "corpus.txt", trainer.TrainFileCalls()[0].Path)

	c.dispatch(context.Background(), "/train https://example.com/article")
	require.Len(t, trainer.TrainURLCalls(), 1)

	c.dispatch(context.Background(), "/train feed https://example.com/rss")
	require.Len(t, trainer.TrainFeedCalls(), 1)
	assert.Equal(t, "https://example.com/rss", trainer.TrainFeedCalls()[0].Url)

	assert.Contains(t, out.String(), "3 lines learned")
	assert.Contains(t, out.String(), "5 lines learned")
	assert.Contains(t, out.String(), "7 lines learned")
}

func TestConsole_FollowUnfollow(t *testing.T) {
	c, controller, _, _, out, _ := newTestConsole("")

	c.dispatch(context.Background(), "/follow @carol@example.social")
	require.Len(t, controller.FollowTargetCalls(), 1)
	assert.Contains(t, out.String(), "now following @carol@example.social")

	c.dispatch(context.Background(), "/unfollow @carol@example.social")
	require.Len(t, controller.UnfollowTargetCalls(), 1)
	assert.Contains(t, out.String(), "no longer following")
}

func TestConsole_BlockAliases(t *testing.T) {
	c, controller, _, _, _, _ := newTestConsole("")

	c.dispatch(context.Background(), "/ban spam.example")
	require.Len(t, controller.BlockTargetCalls(), 1)
	assert.Equal(t, "spam.example", controller.BlockTargetCalls()[0].Target)

	c.dispatch(context.Background(), "/unban spam.example")
	require.Len(t, controller.UnblockTargetCalls(), 1)
}

func TestConsole_Blocks(t *testing.T) {
	c, controller, _, _, out, _ := newTestConsole("")
	controller.BlocksFunc = func(ctx context.Context) ([]repository.Block, error) {
		return []repository.Block{
			{Target: "a-1", Kind: repository.BlockAccount, Acct: "spammer@example.social"},
			{Target: "spam.example", Kind: repository.BlockDomain},
		}, nil
	}

	c.dispatch(context.Background(), "/blocks")
	assert.Contains(t, out.String(), "@spammer@example.social")
	assert.Contains(t, out.String(), "domain spam.example")
}

func TestConsole_Set(t *testing.T) {
	c, _, _, settings, out, _ := newTestConsole("")

	c.dispatch(context.Background(), "/set weather.city London")
	require.Len(t, settings.SetCalls(), 1)
	assert.Equal(t, "weather.city", settings.SetCalls()[0].Key)
	assert.Equal(t, "London", settings.SetCalls()[0].Value)
	assert.Len(t, settings.SaveCalls(), 1)
	assert.Contains(t, out.String(), "set weather.city = London")

	settings.SetFunc = func(key, value string) error { return errors.New("unknown setting") }
	c.dispatch(context.Background(), "/set bogus.key 1")
	assert.Len(t, settings.SaveCalls(), 1, "failed set is not saved")
}

func TestConsole_UnknownCommand(t *testing.T) {
	c, _, _, _, out, _ := newTestConsole("")

	assert.True(t, c.dispatch(context.Background(), "/frobnicate"))
	assert.Contains(t, out.String(), "unknown command")
}

func TestConsole_Help(t *testing.T) {
	c, _, _, _, out, _ := newTestConsole("")

	c.dispatch(context.Background(), "/help")
	assert.Contains(t, out.String(), "/say")
	assert.Contains(t, out.String(), "/exit")

	out.Reset()
	c.dispatch(context.Background(), "/?")
	assert.Contains(t, out.String(), "/say", "alias prints the same help")
}

func TestConsole_ExitCancelsRun(t *testing.T) {
	c, _, _, _, _, cancelled := newTestConsole("/exit\n")

	err := c.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, *cancelled)
}

func TestConsole_RunStopsOnClosedInput(t *testing.T) {
	c, controller, _, _, _, cancelled := newTestConsole("/say hi\n")

	err := c.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, *cancelled, "closed stdin does not stop the app")
	assert.Len(t, controller.SayCalls(), 1)
}

func TestConsole_RunStopsOnCancel(t *testing.T) {
	// a reader that never delivers a line keeps the scanner goroutine waiting
	c, _, _, _, _, _ := newTestConsole("")
	c.in = blockingReader{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("console did not stop on cancel")
	}
}

type blockingReader struct{}

func (blockingReader) Read(p []byte) (int, error) {
	select {} // blocks forever, the test cancels the context instead
}
