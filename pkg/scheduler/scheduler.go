package scheduler

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"
)

//go:generate moq -out mocks/poster.go -pkg mocks -skip-ensure -fmt goimports . AutoPoster

// AutoPoster fires a scheduled post when its time arrives
type AutoPoster interface {
	AutoPost(ctx context.Context) error
}

// TimeOfDay is a wall-clock auto-post time
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%d:%02d", t.Hour, t.Minute)
}

// minutes returns the time-of-day as minutes since midnight
func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}

// ParseTimes parses a comma-separated H:MM list into distinct sorted times
func ParseTimes(spec string) ([]TimeOfDay, error) {
	parts := strings.Split(spec, ",")
	seen := map[int]bool{}
	times := make([]TimeOfDay, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		hh, mm, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("invalid time %q: expected H:MM", part)
		}
		hour, err := strconv.Atoi(hh)
		if err != nil || hour < 0 || hour > 23 {
			return nil, fmt.Errorf("invalid hour in %q", part)
		}
		minute, err := strconv.Atoi(mm)
		if err != nil || minute < 0 || minute > 59 {
			return nil, fmt.Errorf("invalid minute in %q", part)
		}
		t := TimeOfDay{Hour: hour, Minute: minute}
		if seen[t.minutes()] {
			continue
		}
		seen[t.minutes()] = true
		times = append(times, t)
	}

	if len(times) == 0 {
		return nil, fmt.Errorf("no times in %q", spec)
	}

	sort.Slice(times, func(i, j int) bool { return times[i].minutes() < times[j].minutes() })
	return times, nil
}

// Next returns the first occurrence of any configured time strictly after
// now: the smallest time-of-day later today, or the smallest configured
// time tomorrow when all of today's have passed
func Next(now time.Time, times []TimeOfDay) time.Time {
	var best time.Time
	for _, t := range times {
		candidate := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, now.Location())
		if !candidate.After(now) {
			candidate = candidate.AddDate(0, 0, 1)
		}
		if best.IsZero() || candidate.Before(best) {
			best = candidate
		}
	}
	return best
}

// Scheduler drives auto-posts at configured times of day
type Scheduler struct {
	poster AutoPoster
	times  []TimeOfDay
	loc    *time.Location
	now    func() time.Time // injectable clock for tests
}

// New creates a scheduler firing poster at the given times in loc
func New(poster AutoPoster, times []TimeOfDay, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{poster: poster, times: times, loc: loc, now: time.Now}
}

// Run blocks until ctx is cancelled, waking at each scheduled time to fire
// an auto-post. A failed post is logged, the next slot serves as the retry.
func (s *Scheduler) Run(ctx context.Context) error {
	if len(s.times) == 0 {
		<-ctx.Done()
		return nil
	}

	log.Printf("[INFO] scheduler started with %d auto-post times, timezone %s", len(s.times), s.loc)

	for {
		now := s.now().In(s.loc)
		next := Next(now, s.times)
		log.Printf("[DEBUG] next auto-post at %s", next.Format("2006-01-02 15:04"))

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Printf("[INFO] scheduler stopped")
			return nil
		case <-timer.C:
		}

		if err := s.poster.AutoPost(ctx); err != nil {
			log.Printf("[WARN] auto-post failed: %v", err)
		}
	}
}
