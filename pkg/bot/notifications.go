package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/VanillaDeath/Wilbot/pkg/content"
	"github.com/VanillaDeath/Wilbot/pkg/domain"
	"github.com/VanillaDeath/Wilbot/pkg/repository"
)

// handleNotification routes a single event, returns true when it was
// actionable. Failures here are logged, never fatal to the loop.
func (b *Bot) handleNotification(ctx context.Context, n domain.Notification) bool {
	// circuit-breaker against events about ourselves
	if n.Account.ID == b.self.ID {
		return false
	}
	if !n.Actionable() {
		return false
	}

	if blocked, err := b.blocks.Contains(ctx, n.Account.ID, repository.BlockAccount); err != nil {
		log.Printf("[WARN] block check for @%s: %v", n.Account.Acct, err)
	} else if blocked {
		log.Printf("[DEBUG] ignoring event from blocked @%s", n.Account.Acct)
		return false
	}

	switch n.Type {
	case domain.NotificationFollow:
		log.Printf("[INFO] 🤝 @%s (%s) follows @%s", n.Account.Acct, n.Account.ID, b.self.Acct)
		return true
	case domain.NotificationStatus:
		return b.handleStatus(ctx, n)
	case domain.NotificationMention:
		return b.handleMention(ctx, n)
	}
	return false
}

// handleStatus learns from a followed account's new post when the
// learning policy allows it
func (b *Bot) handleStatus(ctx context.Context, n domain.Notification) bool {
	if n.Status == nil {
		return false
	}

	message := content.Clean(content.PlainText(n.Status.Content))
	allowed, reason := b.allowLearning(ctx, n.Status, message)
	if !allowed {
		log.Printf("[INFO] 🚫 not learning post from @%s (%s)", n.Account.Acct, reason)
		return false
	}

	log.Printf("[INFO] 💭 @%s learns from @%s: %s", b.self.Acct, n.Account.Acct, message)
	b.engine.Learn(message)
	if err := b.engine.Sync(ctx); err != nil {
		log.Printf("[WARN] sync after learning: %v", err)
	}
	return true
}

// handleMention answers a mention. Command parsing takes precedence over
// learning, a follow/unfollow/help mention is never fed to the engine.
func (b *Bot) handleMention(ctx context.Context, n domain.Notification) bool {
	if n.Status == nil {
		return false
	}

	message := content.Clean(content.PlainText(n.Status.Content))
	log.Printf("[INFO] %s <@%s> %s", n.Status.Visibility.Marker(), n.Account.Acct, message)

	switch strings.ToLower(message) {
	case "follow":
		return b.followBack(ctx, n.Account, true)
	case "unfollow":
		return b.followBack(ctx, n.Account, false)
	case "help", "?":
		return b.reply(ctx, n.Status, b.helpText())
	}

	allowed, _ := b.allowLearning(ctx, n.Status, message)
	if allowed {
		log.Printf("[INFO] 💭 @%s learns from @%s: %s", b.self.Acct, n.Account.Acct, message)
		b.engine.Learn(message)
		if err := b.engine.Sync(ctx); err != nil {
			log.Printf("[WARN] sync after learning: %v", err)
		}
	}

	budget := b.maxPostLen - len(fmt.Sprintf("@%s ", n.Account.Acct))
	replyText := content.FormatReply(b.engine.Reply(message, budget), budget)
	if replyText == "" {
		log.Printf("[WARN] engine had nothing to say to @%s", n.Account.Acct)
		return false
	}
	return b.reply(ctx, n.Status, replyText)
}

// allowLearning applies the learning policy: public visibility AND the
// author is followed or the post mentions the bot. Empty messages teach
// nothing and are denied.
func (b *Bot) allowLearning(ctx context.Context, status *domain.Status, message string) (bool, string) {
	if status.Visibility != domain.VisibilityPublic {
		return false, "visibility not public"
	}
	if message == "" {
		return false, "empty message"
	}

	followed, err := b.follows.Contains(ctx, status.Account.ID)
	if err != nil {
		log.Printf("[WARN] follow check for @%s: %v", status.Account.Acct, err)
		return false, "follow check failed"
	}
	if followed || b.mentionsMe(status) {
		return true, ""
	}
	return false, "author not followed and bot not mentioned"
}

// mentionsMe reports whether the status is addressed to the bot
func (b *Bot) mentionsMe(status *domain.Status) bool {
	for _, m := range status.Mentions {
		if m.ID == b.self.ID {
			return true
		}
	}
	// fall back to a text scan, some servers omit the mention list
	return strings.Contains(strings.ToLower(status.Content), "@"+strings.ToLower(b.self.Username))
}

// reply posts a reply, demoting public mentions to unlisted so the bot
// doesn't shout into the federated timeline
func (b *Bot) reply(ctx context.Context, to *domain.Status, text string) bool {
	visibility := to.Visibility
	if visibility == domain.VisibilityPublic {
		visibility = domain.VisibilityUnlisted
	}

	if _, err := b.client.Reply(ctx, to, text, visibility); err != nil {
		log.Printf("[WARN] reply to @%s: %v", to.Account.Acct, err)
		return false
	}
	log.Printf("[INFO] %s <@%s> @%s %s", visibility.Marker(), b.self.Acct, to.Account.Acct,
		strings.ReplaceAll(text, "\n", " "))
	return true
}

// followBack handles a follow/unfollow command from a mention, mirrored
// on the server and in the local learning set. Adding is idempotent.
func (b *Bot) followBack(ctx context.Context, account domain.Account, follow bool) bool {
	if follow {
		if err := b.client.Follow(ctx, account.ID); err != nil {
			log.Printf("[WARN] follow @%s: %v", account.Acct, err)
			return false
		}
		if err := b.follows.Add(ctx, account.ID, account.Acct); err != nil {
			log.Printf("[WARN] record follow @%s: %v", account.Acct, err)
			return false
		}
		log.Printf("[INFO] ✔️ @%s follows @%s (%s)", b.self.Acct, account.Acct, account.ID)
		return true
	}

	if err := b.client.Unfollow(ctx, account.ID); err != nil {
		log.Printf("[WARN] unfollow @%s: %v", account.Acct, err)
		return false
	}
	if err := b.follows.Remove(ctx, account.ID); err != nil {
		log.Printf("[WARN] record unfollow @%s: %v", account.Acct, err)
		return false
	}
	log.Printf("[INFO] ❌ @%s unfollows @%s (%s)", b.self.Acct, account.Acct, account.ID)
	return true
}

// helpText is the reply to a "help" mention
func (b *Bot) helpText() string {
	return fmt.Sprintf("Hi! My name is %s. I read and learn public posts from the users I follow "+
		"so I can turn them into word salad later!\n\n"+
		"If you'd like me to follow you, send me:\n@%s follow\n\n"+
		"Likewise, to get me to stop, send me:\n@%s unfollow\n\n"+
		"If you mention me, I will reply to you.",
		b.self.Username, b.self.Acct, b.self.Acct)
}
