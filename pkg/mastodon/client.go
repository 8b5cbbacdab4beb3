package mastodon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/VanillaDeath/Wilbot/pkg/domain"
)

// Client is a minimal Mastodon REST client covering the endpoints the bot
// uses: identity, notifications, statuses, follows and blocks
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// APIError is a non-2xx response from the instance
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mastodon API error: status %d: %s", e.StatusCode, e.Body)
}

// New creates a client for the given instance
func New(instanceURL, accessToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(instanceURL, "/"),
		token:   accessToken,
		client:  &http.Client{Timeout: timeout},
	}
}

// VerifyCredentials fetches the bot's own account, confirming the token works
func (c *Client) VerifyCredentials(ctx context.Context) (*domain.Account, error) {
	var acct accountJSON
	if err := c.do(ctx, http.MethodGet, "/api/v1/accounts/verify_credentials", nil, &acct); err != nil {
		return nil, fmt.Errorf("verify credentials: %w", err)
	}
	account := acct.toDomain()
	return &account, nil
}

// Notifications returns notifications newer than sinceID, oldest first so
// the caller can process them in arrival order. Empty sinceID returns the
// most recent page.
func (c *Client) Notifications(ctx context.Context, sinceID string) ([]domain.Notification, error) {
	params := url.Values{}
	if sinceID != "" {
		params.Set("since_id", sinceID)
	}

	var list []notificationJSON
	path := "/api/v1/notifications"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, fmt.Errorf("get notifications: %w", err)
	}

	// the API returns newest first
	notifications := make([]domain.Notification, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		notifications = append(notifications, list[i].toDomain())
	}
	return notifications, nil
}

// DismissNotification clears a single notification
func (c *Client) DismissNotification(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/v1/notifications/%s/dismiss", url.PathEscape(id))
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("dismiss notification %s: %w", id, err)
	}
	return nil
}

// PostStatus publishes a new status with the given visibility
func (c *Client) PostStatus(ctx context.Context, text string, visibility domain.Visibility) (*domain.Status, error) {
	form := url.Values{}
	form.Set("status", text)
	form.Set("visibility", string(visibility))

	var status statusJSON
	if err := c.do(ctx, http.MethodPost, "/api/v1/statuses", form, &status); err != nil {
		return nil, fmt.Errorf("post status: %w", err)
	}
	result := status.toDomain()
	return &result, nil
}

// Reply publishes a reply to a status, mentioning its author
func (c *Client) Reply(ctx context.Context, to *domain.Status, text string, visibility domain.Visibility) (*domain.Status, error) {
	form := url.Values{}
	form.Set("status", fmt.Sprintf("@%s %s", to.Account.Acct, text))
	form.Set("in_reply_to_id", to.ID)
	form.Set("visibility", string(visibility))

	var status statusJSON
	if err := c.do(ctx, http.MethodPost, "/api/v1/statuses", form, &status); err != nil {
		return nil, fmt.Errorf("post reply: %w", err)
	}
	result := status.toDomain()
	return &result, nil
}

// Follow follows an account, skipping boosts and enabling notifications
// about its posts so the bot can learn from them
func (c *Client) Follow(ctx context.Context, accountID string) error {
	form := url.Values{}
	form.Set("reblogs", "false")
	form.Set("notify", "true")

	path := fmt.Sprintf("/api/v1/accounts/%s/follow", url.PathEscape(accountID))
	if err := c.do(ctx, http.MethodPost, path, form, nil); err != nil {
		return fmt.Errorf("follow account %s: %w", accountID, err)
	}
	return nil
}

// Unfollow unfollows an account
func (c *Client) Unfollow(ctx context.Context, accountID string) error {
	path := fmt.Sprintf("/api/v1/accounts/%s/unfollow", url.PathEscape(accountID))
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("unfollow account %s: %w", accountID, err)
	}
	return nil
}

// Block blocks an account
func (c *Client) Block(ctx context.Context, accountID string) error {
	path := fmt.Sprintf("/api/v1/accounts/%s/block", url.PathEscape(accountID))
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("block account %s: %w", accountID, err)
	}
	return nil
}

// Unblock unblocks an account
func (c *Client) Unblock(ctx context.Context, accountID string) error {
	path := fmt.Sprintf("/api/v1/accounts/%s/unblock", url.PathEscape(accountID))
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("unblock account %s: %w", accountID, err)
	}
	return nil
}

// BlockDomain blocks an entire domain
func (c *Client) BlockDomain(ctx context.Context, domainName string) error {
	form := url.Values{}
	form.Set("domain", domainName)
	if err := c.do(ctx, http.MethodPost, "/api/v1/domain_blocks", form, nil); err != nil {
		return fmt.Errorf("block domain %s: %w", domainName, err)
	}
	return nil
}

// UnblockDomain removes a domain block
func (c *Client) UnblockDomain(ctx context.Context, domainName string) error {
	form := url.Values{}
	form.Set("domain", domainName)
	if err := c.do(ctx, http.MethodDelete, "/api/v1/domain_blocks", form, nil); err != nil {
		return fmt.Errorf("unblock domain %s: %w", domainName, err)
	}
	return nil
}

// Lookup resolves a webfinger-style handle to an account
func (c *Client) Lookup(ctx context.Context, acct string) (*domain.Account, error) {
	path := "/api/v1/accounts/lookup?" + url.Values{"acct": []string{acct}}.Encode()

	var account accountJSON
	if err := c.do(ctx, http.MethodGet, path, nil, &account); err != nil {
		return nil, fmt.Errorf("lookup account %s: %w", acct, err)
	}
	result := account.toDomain()
	return &result, nil
}

// SetProfileStatus updates the "status" field on the bot's profile, used
// to surface ONLINE/OFFLINE to other users
func (c *Client) SetProfileStatus(ctx context.Context, value string) error {
	form := url.Values{}
	form.Set("fields_attributes[0][name]", "status")
	form.Set("fields_attributes[0][value]", value)

	if err := c.do(ctx, http.MethodPatch, "/api/v1/accounts/update_credentials", form, nil); err != nil {
		return fmt.Errorf("update profile status: %w", err)
	}
	return nil
}

// do executes a request against the instance, decoding a JSON response into
// out when it's non-nil
func (c *Client) do(ctx context.Context, method, path string, form url.Values, out interface{}) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
