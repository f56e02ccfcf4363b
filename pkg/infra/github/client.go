package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/BOKA26/lovotech-nexus/pkg/infra/httpx"
)

const (
	defaultAPIURL = "https://api.github.com"
	userAgent     = "lovotech-nexus-sync"

	// reposPerPage is the page size ceiling; repository sets larger than
	// one page are not followed up.
	reposPerPage = 100
)

var ErrTokenRequired = errors.New("github token is not configured")

// Repo is the subset of repository metadata the sync job consumes.
type Repo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Topics      []string  `json:"topics"`
	CreatedAt   time.Time `json:"created_at"`
	Language    string    `json:"language"`
	Homepage    string    `json:"homepage"`
}

type Client interface {
	// ListUserRepos fetches every repository visible to the token's owner
	// (owned, collaborator and organization-member affiliations), up to one
	// page of 100.
	ListUserRepos(ctx context.Context) ([]Repo, error)
}

type client struct {
	httpClient *http.Client
	breaker    httpx.CircuitBreaker
	baseURL    string
	token      string
}

func NewClient(baseURL, token string) Client {
	if baseURL == "" {
		baseURL = defaultAPIURL
	}
	return &client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		breaker:    httpx.NewCircuitBreaker("github", 30*time.Second, 5),
		baseURL:    baseURL,
		token:      token,
	}
}

func (c *client) ListUserRepos(ctx context.Context) ([]Repo, error) {
	if c.token == "" {
		return nil, ErrTokenRequired
	}

	reqURL := fmt.Sprintf(
		"%s/user/repos?per_page=%d&affiliation=owner,collaborator,organization_member",
		c.baseURL, reposPerPage,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create github request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.breaker.Do(func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("github request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("github api returned %d: %s", resp.StatusCode, string(body))
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("failed to decode github response: %w", err)
	}

	return repos, nil
}
