package bot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VanillaDeath/Wilbot/pkg/bot/mocks"
	"github.com/VanillaDeath/Wilbot/pkg/domain"
	"github.com/VanillaDeath/Wilbot/pkg/markov"
	"github.com/VanillaDeath/Wilbot/pkg/repository"
	"github.com/VanillaDeath/Wilbot/pkg/weather"
)

type testDeps struct {
	client  *mocks.ClientMock
	engine  *mocks.EngineMock
	follows *mocks.FollowStoreMock
	blocks  *mocks.BlockStoreMock
	states  *mocks.StateStoreMock
	weather *mocks.WeatherProviderMock
}

func newTestBot(t *testing.T) (*Bot, *testDeps) {
	t.Helper()

	deps := &testDeps{
		client: &mocks.ClientMock{
			ReplyFunc: func(ctx context.Context, to *domain.Status, text string, visibility domain.Visibility) (*domain.Status, error) {
				return &domain.Status{ID: "reply-1"}, nil
			},
			PostStatusFunc: func(ctx context.Context, text string, visibility domain.Visibility) (*domain.Status, error) {
				return &domain.Status{ID: "post-1"}, nil
			},
			FollowFunc:              func(ctx context.Context, accountID string) error { return nil },
			UnfollowFunc:            func(ctx context.Context, accountID string) error { return nil },
			DismissNotificationFunc: func(ctx context.Context, id string) error { return nil },
		},
		engine: &mocks.EngineMock{
			LearnFunc: func(text string) {},
			ReplyFunc: func(seed string, maxLen int) string { return "generated text" },
			SyncFunc:  func(ctx context.Context) error { return nil },
			StatsFunc: func() markov.Stats { return markov.Stats{Prefixes: 10, Transitions: 20} },
		},
		follows: &mocks.FollowStoreMock{
			AddFunc:      func(ctx context.Context, accountID, acct string) error { return nil },
			RemoveFunc:   func(ctx context.Context, accountID string) error { return nil },
			ContainsFunc: func(ctx context.Context, accountID string) (bool, error) { return false, nil },
			CountFunc:    func(ctx context.Context) (int, error) { return 0, nil },
		},
		blocks: &mocks.BlockStoreMock{
			ContainsFunc: func(ctx context.Context, target string, kind repository.BlockKind) (bool, error) {
				return false, nil
			},
			AddFunc:    func(ctx context.Context, target string, kind repository.BlockKind, acct string) error { return nil },
			RemoveFunc: func(ctx context.Context, target string, kind repository.BlockKind) error { return nil },
		},
		states: &mocks.StateStoreMock{
			GetFunc: func(ctx context.Context, key string) (string, error) { return "", nil },
			SetFunc: func(ctx context.Context, key, value string) error { return nil },
		},
		weather: &mocks.WeatherProviderMock{
			CurrentFunc: func(ctx context.Context) (weather.Report, error) {
				return weather.Report{City: "London", Description: "overcast clouds", Temp: 14.2, Units: "metric"}, nil
			},
		},
	}

	b := New(Params{
		Client:        deps.client,
		Engine:        deps.engine,
		Follows:       deps.follows,
		Blocks:        deps.blocks,
		States:        deps.states,
		Weather:       deps.weather,
		Self:          domain.Account{ID: "self-1", Acct: "wilbot", Username: "wilbot"},
		MaxPostLength: 500,
		IncludeTime:   true,
	})
	return b, deps
}

func statusNotification(author domain.Account, html string, visibility domain.Visibility, mentions ...domain.Mention) domain.Notification {
	return domain.Notification{
		ID:      "n-1",
		Type:    domain.NotificationStatus,
		Account: author,
		Status: &domain.Status{
			ID:         "s-1",
			Account:    author,
			Content:    html,
			Visibility: visibility,
			Mentions:   mentions,
		},
	}
}

func TestBot_LearningFilter(t *testing.T) {
	author := domain.Account{ID: "a-1", Acct: "alice@example.social"}
	botMention := domain.Mention{ID: "self-1", Acct: "wilbot", Username: "wilbot"}

	cases := []struct {
		name       string
		visibility domain.Visibility
		followed   bool
		mentions   []domain.Mention
		content    string
		learns     bool
	}{
		{"followed public post", domain.VisibilityPublic, true, nil, "<p>hello world today</p>", true},
		{"followed unlisted post", domain.VisibilityUnlisted, true, nil, "<p>hello world today</p>", false},
		{"followed private post", domain.VisibilityPrivate, true, nil, "<p>hello world today</p>", false},
		{"stranger public post", domain.VisibilityPublic, false, nil, "<p>hello world today</p>", false},
		{"stranger public post mentioning bot", domain.VisibilityPublic, false,
			[]domain.Mention{botMention}, "<p>@wilbot hello world today</p>", true},
		{"followed public empty post", domain.VisibilityPublic, true, nil, "<p>@wilbot</p>", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, deps := newTestBot(t)
			deps.follows.ContainsFunc = func(ctx context.Context, accountID string) (bool, error) {
				return tc.followed && accountID == author.ID, nil
			}

			n := statusNotification(author, tc.content, tc.visibility, tc.mentions...)
			handled := b.handleNotification(context.Background(), n)

			if tc.learns {
				assert.True(t, handled)
				require.Len(t, deps.engine.LearnCalls(), 1)
				assert.Equal(t, "hello world today", deps.engine.LearnCalls()[0].Text)
				assert.Len(t, deps.engine.SyncCalls(), 1, "learned text must be flushed")
			} else {
				assert.Empty(t, deps.engine.LearnCalls())
			}
		})
	}
}

func TestBot_IgnoresOwnAndBlocked(t *testing.T) {
	b, deps := newTestBot(t)

	// events about the bot itself never loop back into handling
	self := domain.Account{ID: "self-1", Acct: "wilbot"}
	assert.False(t, b.handleNotification(context.Background(), statusNotification(self, "<p>echo</p>", domain.VisibilityPublic)))

	// blocked authors are dropped before any other handling
	deps.blocks.ContainsFunc = func(ctx context.Context, target string, kind repository.BlockKind) (bool, error) {
		return target == "spammer-1" && kind == repository.BlockAccount, nil
	}
	spammer := domain.Account{ID: "spammer-1", Acct: "spammer@example.social"}
	assert.False(t, b.handleNotification(context.Background(), statusNotification(spammer, "<p>buy now</p>", domain.VisibilityPublic)))
	assert.Empty(t, deps.engine.LearnCalls())
	assert.Empty(t, deps.client.ReplyCalls())
}

func mentionNotification(author domain.Account, html string, visibility domain.Visibility) domain.Notification {
	return domain.Notification{
		ID:      "n-2",
		Type:    domain.NotificationMention,
		Account: author,
		Status: &domain.Status{
			ID:         "s-2",
			Account:    author,
			Content:    html,
			Visibility: visibility,
			Mentions:   []domain.Mention{{ID: "self-1", Acct: "wilbot", Username: "wilbot"}},
		},
	}
}

func TestBot_MentionFollowCommand(t *testing.T) {
	b, deps := newTestBot(t)
	author := domain.Account{ID: "a-2", Acct: "bob@example.social"}

	handled := b.handleNotification(context.Background(), mentionNotification(author, "<p>@wilbot follow</p>", domain.VisibilityPublic))
	assert.True(t, handled)

	require.Len(t, deps.client.FollowCalls(), 1)
	assert.Equal(t, "a-2", deps.client.FollowCalls()[0].AccountID)
	require.Len(t, deps.follows.AddCalls(), 1)
	assert.Equal(t, "bob@example.social", deps.follows.AddCalls()[0].Acct)

	// a command is never fed to the engine
	assert.Empty(t, deps.engine.LearnCalls())
	assert.Empty(t, deps.client.ReplyCalls())
}

func TestBot_MentionUnfollowCommand(t *testing.T) {
	b, deps := newTestBot(t)
	author := domain.Account{ID: "a-3", Acct: "carol@example.social"}

	handled := b.handleNotification(context.Background(), mentionNotification(author, "<p>@wilbot unfollow</p>", domain.VisibilityPublic))
	assert.True(t, handled)

	require.Len(t, deps.client.UnfollowCalls(), 1)
	assert.Equal(t, "a-3", deps.client.UnfollowCalls()[0].AccountID)
	require.Len(t, deps.follows.RemoveCalls(), 1)
	assert.Empty(t, deps.engine.LearnCalls())
}

func TestBot_MentionHelpCommand(t *testing.T) {
	b, deps := newTestBot(t)
	author := domain.Account{ID: "a-4", Acct: "dave@example.social"}

	handled := b.handleNotification(context.Background(), mentionNotification(author, "<p>@wilbot help</p>", domain.VisibilityPublic))
	assert.True(t, handled)

	require.Len(t, deps.client.ReplyCalls(), 1)
	assert.Contains(t, deps.client.ReplyCalls()[0].Text, "@wilbot follow")
	assert.Empty(t, deps.engine.LearnCalls())
}

func TestBot_MentionReplyDemotesPublic(t *testing.T) {
	author := domain.Account{ID: "a-5", Acct: "eve@example.social"}

	cases := []struct {
		in   domain.Visibility
		want domain.Visibility
	}{
		{domain.VisibilityPublic, domain.VisibilityUnlisted},
		{domain.VisibilityUnlisted, domain.VisibilityUnlisted},
		{domain.VisibilityPrivate, domain.VisibilityPrivate},
		{domain.VisibilityDirect, domain.VisibilityDirect},
	}

	for _, tc := range cases {
		t.Run(string(tc.in), func(t *testing.T) {
			b, deps := newTestBot(t)
			handled := b.handleNotification(context.Background(), mentionNotification(author, "<p>@wilbot say something nice</p>", tc.in))
			assert.True(t, handled)
			require.Len(t, deps.client.ReplyCalls(), 1)
			assert.Equal(t, tc.want, deps.client.ReplyCalls()[0].Visibility)
			assert.Equal(t, "generated text", deps.client.ReplyCalls()[0].Text)
		})
	}
}

func TestBot_MentionLearnsBeforeReplying(t *testing.T) {
	b, deps := newTestBot(t)
	author := domain.Account{ID: "a-6", Acct: "frank@example.social"}

	// public mention passes the learning policy via the mention itself
	handled := b.handleNotification(context.Background(), mentionNotification(author, "<p>@wilbot winter is coming soon</p>", domain.VisibilityPublic))
	assert.True(t, handled)

	require.Len(t, deps.engine.LearnCalls(), 1)
	assert.Equal(t, "winter is coming soon", deps.engine.LearnCalls()[0].Text)
	require.Len(t, deps.client.ReplyCalls(), 1)
}

func TestBot_PollOnce(t *testing.T) {
	b, deps := newTestBot(t)
	author := domain.Account{ID: "a-7", Acct: "grace@example.social"}

	deps.states.GetFunc = func(ctx context.Context, key string) (string, error) { return "41", nil }
	deps.client.NotificationsFunc = func(ctx context.Context, sinceID string) ([]domain.Notification, error) {
		assert.Equal(t, "41", sinceID)
		n1 := mentionNotification(author, "<p>@wilbot hello there bot</p>", domain.VisibilityPublic)
		n1.ID = "42"
		n2 := domain.Notification{ID: "43", Type: domain.NotificationFollow, Account: author}
		return []domain.Notification{n1, n2}, nil
	}

	handled, total, err := b.pollOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 2, handled)

	// every notification gets dismissed and progress recorded
	require.Len(t, deps.client.DismissNotificationCalls(), 2)
	setCalls := deps.states.SetCalls()
	require.Len(t, setCalls, 2)
	assert.Equal(t, repository.StateLastNotification, setCalls[1].Key)
	assert.Equal(t, "43", setCalls[1].Value)
}

func TestBot_PollOnceAPIFailure(t *testing.T) {
	b, deps := newTestBot(t)
	deps.client.NotificationsFunc = func(ctx context.Context, sinceID string) ([]domain.Notification, error) {
		return nil, errors.New("api down")
	}

	_, _, err := b.pollOnce(context.Background())
	assert.Error(t, err)
	assert.Empty(t, deps.client.DismissNotificationCalls())
}

func TestBot_AutoPost(t *testing.T) {
	b, deps := newTestBot(t)
	b.now = func() time.Time { return time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC) }

	err := b.AutoPost(context.Background())
	require.NoError(t, err)

	require.Len(t, deps.client.PostStatusCalls(), 1)
	call := deps.client.PostStatusCalls()[0]
	assert.Equal(t, domain.VisibilityUnlisted, call.Visibility)
	assert.Equal(t, "It is 18:00. generated text The weather in London is 14°C and overcast clouds.", call.Text)

	// the post time is persisted for the restart guard
	setCalls := deps.states.SetCalls()
	require.Len(t, setCalls, 1)
	assert.Equal(t, repository.StateLastAutoPost, setCalls[0].Key)
}

func TestBot_AutoPostWeatherDegrades(t *testing.T) {
	b, deps := newTestBot(t)
	b.now = func() time.Time { return time.Date(2025, 6, 1, 7, 30, 0, 0, time.UTC) }
	deps.weather.CurrentFunc = func(ctx context.Context) (weather.Report, error) {
		return weather.Report{}, errors.New("api key invalid")
	}

	err := b.AutoPost(context.Background())
	require.NoError(t, err)

	require.Len(t, deps.client.PostStatusCalls(), 1)
	assert.Equal(t, "It is 7:30. generated text", deps.client.PostStatusCalls()[0].Text)
}

func TestBot_AutoPostDuplicateGuard(t *testing.T) {
	b, deps := newTestBot(t)
	now := time.Date(2025, 6, 1, 18, 0, 30, 0, time.UTC)
	b.now = func() time.Time { return now }
	deps.states.GetFunc = func(ctx context.Context, key string) (string, error) {
		return now.Add(-10 * time.Second).Format(time.RFC3339), nil
	}

	err := b.AutoPost(context.Background())
	require.NoError(t, err)
	assert.Empty(t, deps.client.PostStatusCalls(), "a second post within the same minute is skipped")
}

func TestBot_AutoPostEmptyEngine(t *testing.T) {
	b, deps := newTestBot(t)
	deps.engine.ReplyFunc = func(seed string, maxLen int) string { return "" }

	err := b.AutoPost(context.Background())
	assert.Error(t, err)
	assert.Empty(t, deps.client.PostStatusCalls())
}

func TestBot_Say(t *testing.T) {
	b, deps := newTestBot(t)

	require.NoError(t, b.Say(context.Background(), "  hello   from the operator "))
	require.Len(t, deps.client.PostStatusCalls(), 1)
	assert.Equal(t, "hello from the operator", deps.client.PostStatusCalls()[0].Text)
	assert.Equal(t, domain.VisibilityUnlisted, deps.client.PostStatusCalls()[0].Visibility)

	assert.Error(t, b.Say(context.Background(), "   "))
}

func TestBot_FollowTarget(t *testing.T) {
	b, deps := newTestBot(t)
	deps.client.LookupFunc = func(ctx context.Context, acct string) (*domain.Account, error) {
		assert.Equal(t, "henry@example.social", acct)
		return &domain.Account{ID: "a-8", Acct: "henry@example.social"}, nil
	}

	account, err := b.FollowTarget(context.Background(), "@henry@example.social")
	require.NoError(t, err)
	assert.Equal(t, "a-8", account.ID)
	require.Len(t, deps.client.FollowCalls(), 1)
	require.Len(t, deps.follows.AddCalls(), 1)
}

func TestBot_BlockTarget(t *testing.T) {
	t.Run("domain", func(t *testing.T) {
		b, deps := newTestBot(t)
		deps.client.BlockDomainFunc = func(ctx context.Context, domainName string) error { return nil }

		require.NoError(t, b.BlockTarget(context.Background(), "spam.example"))
		require.Len(t, deps.client.BlockDomainCalls(), 1)
		assert.Equal(t, "spam.example", deps.client.BlockDomainCalls()[0].DomainName)
		require.Len(t, deps.blocks.AddCalls(), 1)
		assert.Equal(t, repository.BlockDomain, deps.blocks.AddCalls()[0].Kind)
	})

	t.Run("account", func(t *testing.T) {
		b, deps := newTestBot(t)
		deps.client.LookupFunc = func(ctx context.Context, acct string) (*domain.Account, error) {
			return &domain.Account{ID: "a-9", Acct: "ivan@example.social"}, nil
		}
		deps.client.BlockFunc = func(ctx context.Context, accountID string) error { return nil }

		require.NoError(t, b.BlockTarget(context.Background(), "@ivan@example.social"))
		require.Len(t, deps.client.BlockCalls(), 1)
		require.Len(t, deps.blocks.AddCalls(), 1)
		assert.Equal(t, repository.BlockAccount, deps.blocks.AddCalls()[0].Kind)
		// blocking also drops the account from the learning set
		require.Len(t, deps.follows.RemoveCalls(), 1)
		assert.Equal(t, "a-9", deps.follows.RemoveCalls()[0].AccountID)
	})
}

func TestBot_Info(t *testing.T) {
	b, deps := newTestBot(t)
	deps.client.VerifyCredentialsFunc = func(ctx context.Context) (*domain.Account, error) {
		return &domain.Account{ID: "self-1", Acct: "wilbot", StatusesCount: 99}, nil
	}
	deps.follows.CountFunc = func(ctx context.Context) (int, error) { return 7, nil }

	info, err := b.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, info.Follows)
	assert.Equal(t, 99, info.Account.StatusesCount)
	assert.Equal(t, 10, info.Engine.Prefixes)
}

func TestBot_RunStopsOnCancel(t *testing.T) {
	b, deps := newTestBot(t)
	b.pollEvery = 10 * time.Millisecond
	deps.client.NotificationsFunc = func(ctx context.Context, sinceID string) ([]domain.Notification, error) {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("bot did not stop on cancel")
	}

	// the catch-up poll plus at least one ticker poll happened
	assert.GreaterOrEqual(t, len(deps.client.NotificationsCalls()), 2)
}

func TestIsDomainTarget(t *testing.T) {
	cases := []struct {
		target string
		want   bool
	}{
		{"spam.example", true},
		{"@user", false},
		{"@user@spam.example", false},
		{"user@spam.example", false},
		{"localuser", false},
	}
	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			assert.Equal(t, tc.want, isDomainTarget(tc.target), fmt.Sprintf("target %q", tc.target))
		})
	}
}
