package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/VanillaDeath/Wilbot/pkg/content"
	"github.com/VanillaDeath/Wilbot/pkg/domain"
	"github.com/VanillaDeath/Wilbot/pkg/repository"
)

// minAutoPostGap drops a duplicate auto-post fired within the same
// scheduled minute, e.g. after a fast restart
const minAutoPostGap = time.Minute

// AutoPost generates and publishes a scheduled status. Weather lookup
// failures degrade to a post without the weather line.
func (b *Bot) AutoPost(ctx context.Context) error {
	now := b.now().In(b.loc)

	if last, err := b.lastAutoPost(ctx); err != nil {
		log.Printf("[WARN] load last auto-post time: %v", err)
	} else if !last.IsZero() && now.Sub(last) < minAutoPostGap {
		log.Printf("[INFO] auto-post skipped, already posted at %s", last.Format(time.RFC3339))
		return nil
	}

	var prefix string
	if b.includeTime {
		prefix = fmt.Sprintf("It is %d:%02d. ", now.Hour(), now.Minute())
	}

	var suffix string
	if b.weather != nil {
		if report, err := b.weather.Current(ctx); err != nil {
			log.Printf("[WARN] weather lookup failed, posting without it: %v", err)
		} else {
			suffix = " " + report.Summary()
		}
	}

	budget := b.maxPostLen - len(prefix) - len(suffix)
	body := content.FormatReply(b.engine.Reply("", budget), budget)
	if body == "" {
		return fmt.Errorf("engine produced no text for auto-post")
	}

	text := prefix + body + suffix
	if _, err := b.client.PostStatus(ctx, text, domain.VisibilityUnlisted); err != nil {
		return fmt.Errorf("publish auto-post: %w", err)
	}
	log.Printf("[INFO] %s <@%s> %s", domain.VisibilityUnlisted.Marker(), b.self.Acct, text)

	if err := b.states.Set(ctx, repository.StateLastAutoPost, now.Format(time.RFC3339)); err != nil {
		log.Printf("[WARN] save last auto-post time: %v", err)
	}
	return nil
}

// lastAutoPost reads the persisted timestamp of the previous auto-post,
// zero time when none is recorded
func (b *Bot) lastAutoPost(ctx context.Context) (time.Time, error) {
	raw, err := b.states.Get(ctx, repository.StateLastAutoPost)
	if err != nil || raw == "" {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse last auto-post time %q: %w", raw, err)
	}
	return t, nil
}
