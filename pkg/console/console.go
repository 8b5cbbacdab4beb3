package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/VanillaDeath/Wilbot/pkg/bot"
	"github.com/VanillaDeath/Wilbot/pkg/domain"
	"github.com/VanillaDeath/Wilbot/pkg/repository"
)

//go:generate moq -out mocks/controller.go -pkg mocks -skip-ensure -fmt goimports . Controller
//go:generate moq -out mocks/trainer.go -pkg mocks -skip-ensure -fmt goimports . Trainer
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . Settings

// Controller is the bot surface driven from the operator console
type Controller interface {
	Say(ctx context.Context, text string) error
	Message(ctx context.Context, target, text string) error
	Generate(seed string) string
	Learn(ctx context.Context, text string) error
	FollowTarget(ctx context.Context, target string) (*domain.Account, error)
	UnfollowTarget(ctx context.Context, target string) (*domain.Account, error)
	BlockTarget(ctx context.Context, target string) error
	UnblockTarget(ctx context.Context, target string) error
	Blocks(ctx context.Context) ([]repository.Block, error)
	Info(ctx context.Context) (bot.Info, error)
	Self() domain.Account
}

// Trainer feeds bulk sources into the engine
type Trainer interface {
	TrainFile(path string) (int, error)
	TrainURL(ctx context.Context, url string) (int, error)
	TrainFeed(ctx context.Context, url string) (int, error)
}

// Settings mutates and persists the runtime configuration
type Settings interface {
	Set(key, value string) error
	Save() error
}

const prefix = "/"

// command aliases, first entry is the canonical name
var aliases = map[string][]string{
	"help":     {"help", "?", "h", ""},
	"say":      {"say", "post", "toot", "publish"},
	"msg":      {"msg", "privmsg", "d", "dm", "direct", "pm", "message"},
	"exit":     {"exit", "quit", "q", "close"},
	"learn":    {"learn"},
	"train":    {"train"},
	"follow":   {"follow"},
	"unfollow": {"unfollow"},
	"block":    {"block", "ban"},
	"unblock":  {"unblock", "unban"},
	"blocks":   {"blocks", "bans"},
	"info":     {"info", "stats", "information", "statistics"},
	"set":      {"set"},
}

// Console reads operator commands line by line and drives the bot.
// Bare text produces an ephemeral reply preview, nothing is posted or
// learned from it.
type Console struct {
	controller Controller
	trainer    Trainer
	settings   Settings
	in         io.Reader
	out        io.Writer
	cancel     context.CancelFunc // fired on /exit
}

// New creates a console bound to the given input and output streams.
// cancel is called when the operator exits.
func New(controller Controller, trainer Trainer, settings Settings, in io.Reader, out io.Writer, cancel context.CancelFunc) *Console {
	return &Console{
		controller: controller,
		trainer:    trainer,
		settings:   settings,
		in:         in,
		out:        out,
		cancel:     cancel,
	}
}

// Run reads commands until the input closes, ctx is cancelled or the
// operator exits. Command failures are reported, never fatal.
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil // stdin closed, keep the rest of the app running
			}
			if !c.dispatch(ctx, line) {
				c.cancel()
				return nil
			}
		}
	}
}

// dispatch handles one input line, returns false on exit
func (c *Console) dispatch(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}

	// bare text gets an ephemeral reply preview
	if !strings.HasPrefix(line, prefix) {
		reply := c.controller.Generate(line)
		if reply == "" {
			c.printf("%s\n", color.YellowString("nothing to say yet, teach me with /learn or /train"))
			return true
		}
		c.printf("<@%s> %s\n", c.controller.Self().Acct, reply)
		return true
	}

	name, params, _ := strings.Cut(strings.TrimPrefix(line, prefix), " ")
	params = strings.TrimSpace(params)

	switch canonical(name) {
	case "help":
		c.printHelp()
	case "exit":
		return false
	case "say":
		c.doSay(ctx, params)
	case "msg":
		c.doMessage(ctx, params)
	case "learn":
		c.doLearn(ctx, params)
	case "train":
		c.doTrain(ctx, params)
	case "follow":
		c.doFollow(ctx, params, true)
	case "unfollow":
		c.doFollow(ctx, params, false)
	case "block":
		c.doBlock(ctx, params, true)
	case "unblock":
		c.doBlock(ctx, params, false)
	case "blocks":
		c.doBlocks(ctx)
	case "info":
		c.doInfo(ctx)
	case "set":
		c.doSet(params)
	default:
		c.printf("%s\n", color.RedString("unknown command %q, try /help", prefix+name))
	}
	return true
}

func (c *Console) doSay(ctx context.Context, text string) {
	if text == "" {
		text = c.controller.Generate("")
		if text == "" {
			c.errorf("nothing to say, the engine is empty")
			return
		}
		c.printf("%q\n", text)
	}
	if err := c.controller.Say(ctx, text); err != nil {
		c.errorf("say: %v", err)
	}
}

func (c *Console) doMessage(ctx context.Context, params string) {
	target, text, _ := strings.Cut(params, " ")
	if target == "" {
		c.errorf("usage: /msg <@user[@domain]> [text]")
		return
	}
	if err := c.controller.Message(ctx, target, strings.TrimSpace(text)); err != nil {
		c.errorf("msg: %v", err)
	}
}

func (c *Console) doLearn(ctx context.Context, text string) {
	if text == "" {
		c.errorf("usage: /learn <text>")
		return
	}
	if err := c.controller.Learn(ctx, text); err != nil {
		c.errorf("learn: %v", err)
		return
	}
	c.printf("💭 learned: %s\n", text)
}

// doTrain routes a source to the right trainer: "feed <url>" for
// RSS/Atom, a url for article extraction, anything else is a local file
func (c *Console) doTrain(ctx context.Context, source string) {
	if source == "" {
		c.errorf("usage: /train <file> | /train <url> | /train feed <url>")
		return
	}

	var count int
	var err error
	switch {
	case strings.HasPrefix(source, "feed "):
		count, err = c.trainer.TrainFeed(ctx, strings.TrimSpace(strings.TrimPrefix(source, "feed ")))
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		count, err = c.trainer.TrainURL(ctx, source)
	default:
		count, err = c.trainer.TrainFile(source)
	}
	if err != nil {
		c.errorf("train: %v", err)
		return
	}
	c.printf("💭 trained on %s, %d lines learned\n", source, count)
}

func (c *Console) doFollow(ctx context.Context, target string, follow bool) {
	if target == "" {
		if follow {
			c.errorf("usage: /follow <@user[@domain]>")
		} else {
			c.errorf("usage: /unfollow <@user[@domain]>")
		}
		return
	}
	var account *domain.Account
	var err error
	if follow {
		account, err = c.controller.FollowTarget(ctx, target)
	} else {
		account, err = c.controller.UnfollowTarget(ctx, target)
	}
	if err != nil {
		c.errorf("%v", err)
		return
	}
	if follow {
		c.printf("✔️ now following @%s\n", account.Acct)
	} else {
		c.printf("❌ no longer following @%s\n", account.Acct)
	}
}

func (c *Console) doBlock(ctx context.Context, target string, block bool) {
	if target == "" {
		c.errorf("usage: /block <@user[@domain] | domain>")
		return
	}
	var err error
	if block {
		err = c.controller.BlockTarget(ctx, target)
	} else {
		err = c.controller.UnblockTarget(ctx, target)
	}
	if err != nil {
		c.errorf("%v", err)
		return
	}
	if block {
		c.printf("⛔ blocked %s\n", target)
	} else {
		c.printf("♻️ unblocked %s\n", target)
	}
}

func (c *Console) doBlocks(ctx context.Context) {
	blocks, err := c.controller.Blocks(ctx)
	if err != nil {
		c.errorf("blocks: %v", err)
		return
	}
	if len(blocks) == 0 {
		c.printf("no blocks\n")
		return
	}
	for _, b := range blocks {
		if b.Kind == repository.BlockDomain {
			c.printf("⛔ domain %s\n", b.Target)
		} else {
			c.printf("⛔ @%s (%s)\n", b.Acct, b.Target)
		}
	}
}

func (c *Console) doInfo(ctx context.Context) {
	info, err := c.controller.Info(ctx)
	if err != nil {
		c.errorf("info: %v", err)
		return
	}
	bold := color.New(color.Bold).SprintFunc()
	c.printf("%s (%s) has %s followers, is following %s users, posted %s statuses\n",
		bold("@"+info.Account.Acct), info.Account.DisplayName,
		bold(info.Account.FollowersCount), bold(info.Account.FollowingCount),
		bold(info.Account.StatusesCount))
	c.printf("learning from %s accounts\n", bold(info.Follows))
	c.printf("chain: %s prefixes, %s transitions, %s starts\n",
		bold(info.Engine.Prefixes), bold(info.Engine.Transitions), bold(info.Engine.Starts))
}

func (c *Console) doSet(params string) {
	key, value, found := strings.Cut(params, " ")
	if !found || key == "" {
		c.errorf("usage: /set <key> <value>")
		return
	}
	if err := c.settings.Set(key, strings.TrimSpace(value)); err != nil {
		c.errorf("set: %v", err)
		return
	}
	if err := c.settings.Save(); err != nil {
		c.errorf("save settings: %v", err)
		return
	}
	c.printf("set %s = %s\n", key, strings.TrimSpace(value))
}

func (c *Console) printHelp() {
	bold := color.New(color.Bold).SprintFunc()
	c.printf("·%s: this help message            ·%s: close bot\n", bold("/help"), bold("/exit"))
	c.printf("·%s: post a toot                   ·%s: direct message somebody\n", bold("/say"), bold("/msg"))
	c.printf("·%s: learn a new string          ·%s: learn a file, url or feed\n", bold("/learn"), bold("/train"))
	c.printf("·%s: follow a user             ·%s: unfollow a user\n", bold("/follow"), bold("/unfollow"))
	c.printf("·%s: block a user or domain     ·%s: unblock a user or domain\n", bold("/block"), bold("/unblock"))
	c.printf("·%s: list blocked users and domains\n", bold("/blocks"))
	c.printf("·%s: bot information             ·%s: change a setting\n", bold("/info"), bold("/set"))
	c.printf("legend: %s public | %s unlisted | %s private | %s direct | 🤝 follows bot | ✔️ bot follows | 💭 bot learns\n",
		domain.VisibilityPublic.Marker(), domain.VisibilityUnlisted.Marker(),
		domain.VisibilityPrivate.Marker(), domain.VisibilityDirect.Marker())
}

// canonical resolves a typed command or alias to its canonical name,
// empty string when unknown
func canonical(name string) string {
	name = strings.ToLower(name)
	for cmd, list := range aliases {
		for _, a := range list {
			if name == a {
				return cmd
			}
		}
	}
	return ""
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) errorf(format string, args ...any) {
	fmt.Fprintf(c.out, "%s\n", color.RedString(format, args...))
}
