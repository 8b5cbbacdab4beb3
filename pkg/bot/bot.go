package bot

import (
	"context"
	"log"
	"time"

	"github.com/VanillaDeath/Wilbot/pkg/domain"
	"github.com/VanillaDeath/Wilbot/pkg/markov"
	"github.com/VanillaDeath/Wilbot/pkg/repository"
	"github.com/VanillaDeath/Wilbot/pkg/weather"
)

//go:generate moq -out mocks/client.go -pkg mocks -skip-ensure -fmt goimports . Client
//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine
//go:generate moq -out mocks/follows.go -pkg mocks -skip-ensure -fmt goimports . FollowStore
//go:generate moq -out mocks/blocks.go -pkg mocks -skip-ensure -fmt goimports . BlockStore
//go:generate moq -out mocks/states.go -pkg mocks -skip-ensure -fmt goimports . StateStore
//go:generate moq -out mocks/weather.go -pkg mocks -skip-ensure -fmt goimports . WeatherProvider

// Client is the Mastodon API surface the bot consumes
type Client interface {
	VerifyCredentials(ctx context.Context) (*domain.Account, error)
	Notifications(ctx context.Context, sinceID string) ([]domain.Notification, error)
	DismissNotification(ctx context.Context, id string) error
	PostStatus(ctx context.Context, text string, visibility domain.Visibility) (*domain.Status, error)
	Reply(ctx context.Context, to *domain.Status, text string, visibility domain.Visibility) (*domain.Status, error)
	Follow(ctx context.Context, accountID string) error
	Unfollow(ctx context.Context, accountID string) error
	Block(ctx context.Context, accountID string) error
	Unblock(ctx context.Context, accountID string) error
	BlockDomain(ctx context.Context, domainName string) error
	UnblockDomain(ctx context.Context, domainName string) error
	Lookup(ctx context.Context, acct string) (*domain.Account, error)
}

// Engine is the text generation engine
type Engine interface {
	Learn(text string)
	Reply(seed string, maxLen int) string
	Sync(ctx context.Context) error
	Stats() markov.Stats
}

// FollowStore is the persisted followed-account set
type FollowStore interface {
	Add(ctx context.Context, accountID, acct string) error
	Remove(ctx context.Context, accountID string) error
	Contains(ctx context.Context, accountID string) (bool, error)
	List(ctx context.Context) ([]domain.Account, error)
	Count(ctx context.Context) (int, error)
}

// BlockStore is the persisted blocked-target set
type BlockStore interface {
	Add(ctx context.Context, target string, kind repository.BlockKind, acct string) error
	Remove(ctx context.Context, target string, kind repository.BlockKind) error
	Contains(ctx context.Context, target string, kind repository.BlockKind) (bool, error)
	List(ctx context.Context, kind repository.BlockKind) ([]repository.Block, error)
}

// StateStore persists small runtime state between sessions
type StateStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// WeatherProvider looks up the current weather for the auto-post suffix
type WeatherProvider interface {
	Current(ctx context.Context) (weather.Report, error)
}

// Params holds everything the bot needs
type Params struct {
	Client  Client
	Engine  Engine
	Follows FollowStore
	Blocks  BlockStore
	States  StateStore
	Weather WeatherProvider // nil disables the weather suffix

	Self          domain.Account
	MaxPostLength int
	PollInterval  time.Duration
	IncludeTime   bool           // prefix auto-posts with the current time
	Location      *time.Location // timezone for the auto-post time prefix
}

// Bot ties the Mastodon client, the generation engine and the persisted
// state together. One logical writer: the poll loop and the console both
// call into it, the engine and the stores handle their own locking.
type Bot struct {
	client  Client
	engine  Engine
	follows FollowStore
	blocks  BlockStore
	states  StateStore
	weather WeatherProvider

	self        domain.Account
	maxPostLen  int
	pollEvery   time.Duration
	includeTime bool
	loc         *time.Location
	now         func() time.Time // injectable clock for tests
}

// New creates a bot from params, filling defaults
func New(p Params) *Bot {
	if p.MaxPostLength == 0 {
		p.MaxPostLength = 500
	}
	if p.PollInterval == 0 {
		p.PollInterval = 15 * time.Second
	}
	if p.Location == nil {
		p.Location = time.UTC
	}
	return &Bot{
		client:      p.Client,
		engine:      p.Engine,
		follows:     p.Follows,
		blocks:      p.Blocks,
		states:      p.States,
		weather:     p.Weather,
		self:        p.Self,
		maxPostLen:  p.MaxPostLength,
		pollEvery:   p.PollInterval,
		includeTime: p.IncludeTime,
		loc:         p.Location,
		now:         time.Now,
	}
}

// Run polls for notifications until ctx is cancelled. The first poll
// catches up on everything missed since the previous session.
func (b *Bot) Run(ctx context.Context) error {
	log.Printf("[INFO] bot @%s polling every %v", b.self.Acct, b.pollEvery)

	// catch up on events missed while offline
	if handled, total, err := b.pollOnce(ctx); err != nil {
		log.Printf("[WARN] catch-up poll failed: %v", err)
	} else if total > 0 {
		log.Printf("[INFO] caught up on %d missed events (%d actionable)", total, handled)
	}

	ticker := time.NewTicker(b.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[INFO] bot stopped")
			return nil
		case <-ticker.C:
			if _, _, err := b.pollOnce(ctx); err != nil {
				// transient API failure, next tick serves as the retry
				log.Printf("[WARN] poll failed: %v", err)
			}
		}
	}
}

// pollOnce fetches and handles pending notifications, returns handled and
// total counts
func (b *Bot) pollOnce(ctx context.Context) (handled, total int, err error) {
	sinceID, err := b.states.Get(ctx, repository.StateLastNotification)
	if err != nil {
		return 0, 0, err
	}

	notifications, err := b.client.Notifications(ctx, sinceID)
	if err != nil {
		return 0, 0, err
	}

	for _, n := range notifications {
		if b.handleNotification(ctx, n) {
			handled++
		}
		total++

		// clear the notification and remember progress either way
		if err := b.client.DismissNotification(ctx, n.ID); err != nil {
			log.Printf("[WARN] dismiss notification %s: %v", n.ID, err)
		}
		if err := b.states.Set(ctx, repository.StateLastNotification, n.ID); err != nil {
			log.Printf("[WARN] save notification progress: %v", err)
		}
	}
	return handled, total, nil
}
