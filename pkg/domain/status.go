package domain

import "time"

// Visibility is a Mastodon status visibility level
type Visibility string

// visibility levels, from widest to narrowest
const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
	VisibilityDirect   Visibility = "direct"
)

// Marker returns a short console marker for the visibility level
func (v Visibility) Marker() string {
	switch v {
	case VisibilityPublic:
		return "🌎"
	case VisibilityUnlisted:
		return "🔓"
	case VisibilityPrivate:
		return "🔒"
	case VisibilityDirect:
		return "@"
	}
	return "?"
}

// Valid reports whether v is a known visibility level
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityUnlisted, VisibilityPrivate, VisibilityDirect:
		return true
	}
	return false
}

// Account represents a Mastodon account
type Account struct {
	ID             string
	Acct           string // webfinger-style handle, user or user@domain
	Username       string
	DisplayName    string
	FollowersCount int
	FollowingCount int
	StatusesCount  int
}

// Mention is an account referenced from a status body
type Mention struct {
	ID       string
	Acct     string
	Username string
}

// Status represents a single post
type Status struct {
	ID         string
	Account    Account
	Content    string // raw HTML as delivered by the server
	Visibility Visibility
	Mentions   []Mention
	InReplyTo  string
	CreatedAt  time.Time
}
