package mastodon

import (
	"time"

	"github.com/VanillaDeath/Wilbot/pkg/domain"
)

// wire types mirror the subset of the Mastodon API entities the bot reads

type accountJSON struct {
	ID             string `json:"id"`
	Acct           string `json:"acct"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	FollowersCount int    `json:"followers_count"`
	FollowingCount int    `json:"following_count"`
	StatusesCount  int    `json:"statuses_count"`
}

func (a accountJSON) toDomain() domain.Account {
	return domain.Account{
		ID:             a.ID,
		Acct:           a.Acct,
		Username:       a.Username,
		DisplayName:    a.DisplayName,
		FollowersCount: a.FollowersCount,
		FollowingCount: a.FollowingCount,
		StatusesCount:  a.StatusesCount,
	}
}

type mentionJSON struct {
	ID       string `json:"id"`
	Acct     string `json:"acct"`
	Username string `json:"username"`
}

type statusJSON struct {
	ID         string        `json:"id"`
	Account    accountJSON   `json:"account"`
	Content    string        `json:"content"`
	Visibility string        `json:"visibility"`
	Mentions   []mentionJSON `json:"mentions"`
	InReplyTo  string        `json:"in_reply_to_id"`
	CreatedAt  time.Time     `json:"created_at"`
}

func (s statusJSON) toDomain() domain.Status {
	mentions := make([]domain.Mention, len(s.Mentions))
	for i, m := range s.Mentions {
		mentions[i] = domain.Mention{ID: m.ID, Acct: m.Acct, Username: m.Username}
	}
	return domain.Status{
		ID:         s.ID,
		Account:    s.Account.toDomain(),
		Content:    s.Content,
		Visibility: domain.Visibility(s.Visibility),
		Mentions:   mentions,
		InReplyTo:  s.InReplyTo,
		CreatedAt:  s.CreatedAt,
	}
}

type notificationJSON struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Account   accountJSON `json:"account"`
	Status    *statusJSON `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

func (n notificationJSON) toDomain() domain.Notification {
	notification := domain.Notification{
		ID:        n.ID,
		Type:      domain.NotificationType(n.Type),
		Account:   n.Account.toDomain(),
		CreatedAt: n.CreatedAt,
	}
	if n.Status != nil {
		status := n.Status.toDomain()
		notification.Status = &status
	}
	return notification
}
