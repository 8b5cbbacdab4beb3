package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/VanillaDeath/Wilbot/pkg/content"
	"github.com/VanillaDeath/Wilbot/pkg/domain"
	"github.com/VanillaDeath/Wilbot/pkg/markov"
	"github.com/VanillaDeath/Wilbot/pkg/repository"
)

// Info is a snapshot of the bot's identity and counters for the console
// and the status endpoint
type Info struct {
	Account domain.Account `json:"account"`
	Follows int            `json:"follows"`
	Engine  markov.Stats   `json:"engine"`
}

// Say posts operator-supplied text verbatim, truncated to the post limit
func (b *Bot) Say(ctx context.Context, text string) error {
	text = content.CollapseSpaces(text)
	if text == "" {
		return fmt.Errorf("nothing to say")
	}
	text = content.Truncate(text, b.maxPostLen)
	if _, err := b.client.PostStatus(ctx, text, domain.VisibilityUnlisted); err != nil {
		return fmt.Errorf("post: %w", err)
	}
	log.Printf("[INFO] %s <@%s> %s", domain.VisibilityUnlisted.Marker(), b.self.Acct, text)
	return nil
}

// Message sends a direct message to a handle. Empty text sends generated
// text instead.
func (b *Bot) Message(ctx context.Context, target, text string) error {
	handle := "@" + strings.TrimPrefix(target, "@")
	text = content.CollapseSpaces(text)
	if text == "" {
		text = b.Generate("")
	}
	if text == "" {
		return fmt.Errorf("nothing to send")
	}
	full := content.Truncate(handle+" "+text, b.maxPostLen)
	if _, err := b.client.PostStatus(ctx, full, domain.VisibilityDirect); err != nil {
		return fmt.Errorf("send direct message: %w", err)
	}
	log.Printf("[INFO] %s <@%s> %s", domain.VisibilityDirect.Marker(), b.self.Acct, full)
	return nil
}

// Generate produces text from the engine without posting it
func (b *Bot) Generate(seed string) string {
	return content.FormatReply(b.engine.Reply(seed, b.maxPostLen), b.maxPostLen)
}

// Learn feeds operator-supplied text into the engine and flushes it
func (b *Bot) Learn(ctx context.Context, text string) error {
	cleaned := content.Clean(text)
	if cleaned == "" {
		return fmt.Errorf("nothing to learn")
	}
	b.engine.Learn(cleaned)
	return b.engine.Sync(ctx)
}

// FollowTarget resolves a handle and follows it, recording it in the
// learning set
func (b *Bot) FollowTarget(ctx context.Context, target string) (*domain.Account, error) {
	account, err := b.client.Lookup(ctx, strings.TrimPrefix(target, "@"))
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", target, err)
	}
	if err := b.client.Follow(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("follow @%s: %w", account.Acct, err)
	}
	if err := b.follows.Add(ctx, account.ID, account.Acct); err != nil {
		return nil, fmt.Errorf("record follow @%s: %w", account.Acct, err)
	}
	log.Printf("[INFO] ✔️ @%s follows @%s (%s)", b.self.Acct, account.Acct, account.ID)
	return account, nil
}

// UnfollowTarget resolves a handle and unfollows it
func (b *Bot) UnfollowTarget(ctx context.Context, target string) (*domain.Account, error) {
	account, err := b.client.Lookup(ctx, strings.TrimPrefix(target, "@"))
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", target, err)
	}
	if err := b.client.Unfollow(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("unfollow @%s: %w", account.Acct, err)
	}
	if err := b.follows.Remove(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("record unfollow @%s: %w", account.Acct, err)
	}
	log.Printf("[INFO] ❌ @%s unfollows @%s (%s)", b.self.Acct, account.Acct, account.ID)
	return account, nil
}

// BlockTarget blocks an account handle or a bare domain. A target with a
// leading @ or an embedded @ is an account, anything with a dot and no @
// is a domain.
func (b *Bot) BlockTarget(ctx context.Context, target string) error {
	if isDomainTarget(target) {
		if err := b.client.BlockDomain(ctx, target); err != nil {
			return fmt.Errorf("block domain %s: %w", target, err)
		}
		if err := b.blocks.Add(ctx, target, repository.BlockDomain, target); err != nil {
			return fmt.Errorf("record domain block %s: %w", target, err)
		}
		log.Printf("[INFO] ⛔ blocked domain %s", target)
		return nil
	}

	account, err := b.client.Lookup(ctx, strings.TrimPrefix(target, "@"))
	if err != nil {
		return fmt.Errorf("lookup %s: %w", target, err)
	}
	if err := b.client.Block(ctx, account.ID); err != nil {
		return fmt.Errorf("block @%s: %w", account.Acct, err)
	}
	if err := b.blocks.Add(ctx, account.ID, repository.BlockAccount, account.Acct); err != nil {
		return fmt.Errorf("record block @%s: %w", account.Acct, err)
	}
	// a blocked account is no longer a learning source
	if err := b.follows.Remove(ctx, account.ID); err != nil {
		log.Printf("[WARN] drop blocked @%s from follows: %v", account.Acct, err)
	}
	log.Printf("[INFO] ⛔ blocked @%s (%s)", account.Acct, account.ID)
	return nil
}

// UnblockTarget reverses BlockTarget for an account handle or a domain
func (b *Bot) UnblockTarget(ctx context.Context, target string) error {
	if isDomainTarget(target) {
		if err := b.client.UnblockDomain(ctx, target); err != nil {
			return fmt.Errorf("unblock domain %s: %w", target, err)
		}
		if err := b.blocks.Remove(ctx, target, repository.BlockDomain); err != nil {
			return fmt.Errorf("record domain unblock %s: %w", target, err)
		}
		log.Printf("[INFO] ♻️ unblocked domain %s", target)
		return nil
	}

	account, err := b.client.Lookup(ctx, strings.TrimPrefix(target, "@"))
	if err != nil {
		return fmt.Errorf("lookup %s: %w", target, err)
	}
	if err := b.client.Unblock(ctx, account.ID); err != nil {
		return fmt.Errorf("unblock @%s: %w", account.Acct, err)
	}
	if err := b.blocks.Remove(ctx, account.ID, repository.BlockAccount); err != nil {
		return fmt.Errorf("record unblock @%s: %w", account.Acct, err)
	}
	log.Printf("[INFO] ♻️ unblocked @%s (%s)", account.Acct, account.ID)
	return nil
}

// Blocks lists all recorded blocks, accounts first then domains
func (b *Bot) Blocks(ctx context.Context) ([]repository.Block, error) {
	accounts, err := b.blocks.List(ctx, repository.BlockAccount)
	if err != nil {
		return nil, fmt.Errorf("list account blocks: %w", err)
	}
	domains, err := b.blocks.List(ctx, repository.BlockDomain)
	if err != nil {
		return nil, fmt.Errorf("list domain blocks: %w", err)
	}
	return append(accounts, domains...), nil
}

// Follows lists the accounts the bot learns from
func (b *Bot) Follows(ctx context.Context) ([]domain.Account, error) {
	return b.follows.List(ctx)
}

// Info reports the bot's account, follow count and engine counters
func (b *Bot) Info(ctx context.Context) (Info, error) {
	account, err := b.client.VerifyCredentials(ctx)
	if err != nil {
		return Info{}, fmt.Errorf("verify credentials: %w", err)
	}
	count, err := b.follows.Count(ctx)
	if err != nil {
		return Info{}, fmt.Errorf("count follows: %w", err)
	}
	return Info{Account: *account, Follows: count, Engine: b.engine.Stats()}, nil
}

// Self returns the bot's own account as resolved at startup
func (b *Bot) Self() domain.Account { return b.self }

// isDomainTarget reports whether a block target names a whole server
// rather than an account
func isDomainTarget(target string) bool {
	return !strings.HasPrefix(target, "@") &&
		!strings.Contains(target, "@") &&
		strings.Contains(target, ".")
}
