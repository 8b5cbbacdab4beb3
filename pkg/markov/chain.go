package markov

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/VanillaDeath/Wilbot/pkg/repository"
)

// endToken terminates a walk, never appears in real text
const endToken = "\x00"

// maxWalkSteps bounds generation so cyclic chains can't spin forever
const maxWalkSteps = 200

// Store persists the chain between sessions
type Store interface {
	LoadTransitions(ctx context.Context) ([]repository.Transition, error)
	LoadStarts(ctx context.Context) ([]repository.Start, error)
	ApplyDeltas(ctx context.Context, transitions []repository.Transition, starts []repository.Start) error
}

// Stats summarizes the in-memory chain
type Stats struct {
	Prefixes    int
	Transitions int
	Starts      int
	Pending     int // learned transitions not yet synced to the store
}

// Chain is an order-2 word-level markov model. Learning is incremental,
// generation walks weighted transitions from a seed-related start. The
// console and the notification loop both feed it, hence the mutex.
type Chain struct {
	order int
	store Store
	rnd   *rand.Rand

	mu          sync.Mutex
	transitions map[string]map[string]int
	starts      map[string]int
	dirtyTrans  map[string]map[string]int
	dirtyStarts map[string]int
}

// New creates an empty chain backed by the given store. A nil rnd gets a
// time-seeded source; tests pass a fixed seed for reproducible walks.
func New(store Store, rnd *rand.Rand) *Chain {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // not used for crypto
	}
	return &Chain{
		order:       2,
		store:       store,
		rnd:         rnd,
		transitions: make(map[string]map[string]int),
		starts:      make(map[string]int),
		dirtyTrans:  make(map[string]map[string]int),
		dirtyStarts: make(map[string]int),
	}
}

// Load reads the persisted chain into memory, called once at startup
func (c *Chain) Load(ctx context.Context) error {
	if c.store == nil {
		return nil
	}

	transitions, err := c.store.LoadTransitions(ctx)
	if err != nil {
		return fmt.Errorf("load chain transitions: %w", err)
	}
	starts, err := c.store.LoadStarts(ctx)
	if err != nil {
		return fmt.Errorf("load chain starts: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, t := range transitions {
		if c.transitions[t.Prefix] == nil {
			c.transitions[t.Prefix] = make(map[string]int)
		}
		c.transitions[t.Prefix][t.Word] = t.Count
	}
	for _, s := range starts {
		c.starts[s.Prefix] = s.Count
	}
	return nil
}

// Learn folds the text into the chain. Inputs shorter than the chain
// order teach nothing and are ignored.
func (c *Chain) Learn(text string) {
	words := strings.Fields(text)
	if len(words) < c.order {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	start := strings.Join(words[:c.order], " ")
	c.starts[start]++
	c.dirtyStarts[start]++

	for i := c.order; i <= len(words); i++ {
		prefix := strings.Join(words[i-c.order:i], " ")
		next := endToken
		if i < len(words) {
			next = words[i]
		}
		c.bump(prefix, next)
	}
}

// Reply generates up to maxLen characters of text. The walk starts from a
// prefix sharing a word with the seed when one exists, otherwise from a
// weighted random start. An empty chain yields an empty string.
func (c *Chain) Reply(seed string, maxLen int) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.starts) == 0 || maxLen <= 0 {
		return ""
	}

	prefix := c.pickStart(seed)
	words := strings.Fields(prefix)

	for step := 0; step < maxWalkSteps; step++ {
		next := c.pickNext(strings.Join(words[len(words)-c.order:], " "))
		if next == endToken || next == "" {
			break
		}
		words = append(words, next)
	}

	out := strings.Join(words, " ")
	if len([]rune(out)) > maxLen {
		out = truncateToWord(out, maxLen)
	}
	return out
}

// Sync flushes accumulated learning to the store in one transaction
func (c *Chain) Sync(ctx context.Context) error {
	if c.store == nil {
		return nil
	}

	c.mu.Lock()
	transitions := make([]repository.Transition, 0, len(c.dirtyTrans))
	for prefix, nexts := range c.dirtyTrans {
		for word, count := range nexts {
			transitions = append(transitions, repository.Transition{Prefix: prefix, Word: word, Count: count})
		}
	}
	starts := make([]repository.Start, 0, len(c.dirtyStarts))
	for prefix, count := range c.dirtyStarts {
		starts = append(starts, repository.Start{Prefix: prefix, Count: count})
	}
	c.dirtyTrans = make(map[string]map[string]int)
	c.dirtyStarts = make(map[string]int)
	c.mu.Unlock()

	// stable order keeps transactions comparable across runs
	sort.Slice(transitions, func(i, j int) bool {
		if transitions[i].Prefix != transitions[j].Prefix {
			return transitions[i].Prefix < transitions[j].Prefix
		}
		return transitions[i].Word < transitions[j].Word
	})
	sort.Slice(starts, func(i, j int) bool { return starts[i].Prefix < starts[j].Prefix })

	if err := c.store.ApplyDeltas(ctx, transitions, starts); err != nil {
		return fmt.Errorf("sync chain: %w", err)
	}
	return nil
}

// Stats returns in-memory chain counters
func (c *Chain) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := Stats{Prefixes: len(c.transitions), Starts: len(c.starts)}
	for _, nexts := range c.transitions {
		stats.Transitions += len(nexts)
	}
	for _, nexts := range c.dirtyTrans {
		stats.Pending += len(nexts)
	}
	return stats
}

// bump increments both the live and the dirty counters, lock held by caller
func (c *Chain) bump(prefix, word string) {
	if c.transitions[prefix] == nil {
		c.transitions[prefix] = make(map[string]int)
	}
	c.transitions[prefix][word]++

	if c.dirtyTrans[prefix] == nil {
		c.dirtyTrans[prefix] = make(map[string]int)
	}
	c.dirtyTrans[prefix][word]++
}

// pickStart chooses a start prefix, preferring ones that share a word with
// the seed. Lock held by caller.
func (c *Chain) pickStart(seed string) string {
	seedWords := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(seed)) {
		seedWords[w] = true
	}

	prefixes := make([]string, 0, len(c.starts))
	for p := range c.starts {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)

	if len(seedWords) > 0 {
		var related []string
		for _, p := range prefixes {
			for _, w := range strings.Fields(strings.ToLower(p)) {
				if seedWords[w] {
					related = append(related, p)
					break
				}
			}
		}
		if len(related) > 0 {
			return related[c.rnd.Intn(len(related))]
		}
	}

	// weighted random start
	total := 0
	for _, p := range prefixes {
		total += c.starts[p]
	}
	target := c.rnd.Intn(total)
	for _, p := range prefixes {
		target -= c.starts[p]
		if target < 0 {
			return p
		}
	}
	return prefixes[len(prefixes)-1]
}

// pickNext chooses the next word after prefix, weighted by observed counts.
// Lock held by caller.
func (c *Chain) pickNext(prefix string) string {
	nexts := c.transitions[prefix]
	if len(nexts) == 0 {
		return ""
	}

	words := make([]string, 0, len(nexts))
	total := 0
	for w, count := range nexts {
		words = append(words, w)
		total += count
	}
	sort.Strings(words)

	target := c.rnd.Intn(total)
	for _, w := range words {
		target -= nexts[w]
		if target < 0 {
			return w
		}
	}
	return words[len(words)-1]
}

// truncateToWord cuts text to maxLen runes on a word boundary when possible
func truncateToWord(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	cut := string(runes[:maxLen])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		return cut[:idx]
	}
	return cut
}
