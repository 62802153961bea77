// Package lookup implements the outbound HTTP adapters for public identity
// lookups: the GitHub users API and the Wayback Machine availability API.
// Requests carry the caller's context, are traced, and retry transient
// failures with exponential backoff.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	metrics "github.com/mgentry11/candidate-verification-app/internal/adapter/observability"
	"github.com/mgentry11/candidate-verification-app/internal/domain"
	"github.com/mgentry11/candidate-verification-app/internal/identity"
	"github.com/mgentry11/candidate-verification-app/internal/observability"
)

// GitHubClient resolves candidate names to public GitHub profiles by probing
// likely username spellings. It implements domain.GitHubLookup.
type GitHubClient struct {
	baseURL string
	hc      *http.Client
}

// NewGitHubClient constructs a client against the given API base URL
// (https://api.github.com in production, an httptest server in tests).
func NewGitHubClient(baseURL string, timeout time.Duration) *GitHubClient {
	return &GitHubClient{
		baseURL: baseURL,
		hc: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type githubUser struct {
	HTMLURL     string `json:"html_url"`
	Name        string `json:"name"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	CreatedAt   string `json:"created_at"`
}

// FindProfiles probes the users API with each username guess. Usernames that
// do not exist are skipped; transport failures on every guess surface as an
// error so the caller can fall back to a manual check.
func (c *GitHubClient) FindProfiles(ctx context.Context, name string) (domain.GitHubPresence, error) {
	guesses := identity.UsernameGuesses(name)
	if len(guesses) == 0 {
		return domain.GitHubPresence{}, fmt.Errorf("%w: no name to derive usernames from", domain.ErrInvalidArgument)
	}

	lg := observability.LoggerFromContext(ctx)
	presence := domain.GitHubPresence{
		Profiles: []domain.GitHubProfile{},
		Note:     "For DevOps candidates, lack of GitHub presence is a warning sign",
	}

	failures := 0
	for _, username := range guesses {
		user, found, err := c.fetchUser(ctx, username)
		if err != nil {
			failures++
			metrics.ObserveLookup("github", "error")
			lg.Warn("github lookup failed", "username", username, "error", err)
			continue
		}
		metrics.ObserveLookup("github", "ok")
		if !found {
			continue
		}
		presence.Profiles = append(presence.Profiles, domain.GitHubProfile{
			Username:    username,
			ProfileURL:  user.HTMLURL,
			Name:        user.Name,
			PublicRepos: user.PublicRepos,
			Followers:   user.Followers,
			CreatedAt:   user.CreatedAt,
		})
	}

	if failures == len(guesses) {
		return domain.GitHubPresence{}, fmt.Errorf("%w: github api unreachable", domain.ErrInternal)
	}
	presence.Exists = len(presence.Profiles) > 0
	return presence, nil
}

func (c *GitHubClient) fetchUser(ctx context.Context, username string) (githubUser, bool, error) {
	var user githubUser
	found := false

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+username, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/vnd.github+json")

		resp, err := c.hc.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			found = false
			return nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden:
			// GitHub signals rate limiting with 403 as well as 429.
			return fmt.Errorf("rate limited: %d", resp.StatusCode)
		case resp.StatusCode >= 400 && resp.StatusCode < 500:
			return backoff.Permanent(fmt.Errorf("users status %d", resp.StatusCode))
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			return fmt.Errorf("users status %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(body, &user); err != nil {
			return backoff.Permanent(err)
		}
		found = true
		return nil
	}

	bo := backoff.WithContext(lookupBackoff(), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return githubUser{}, false, err
	}
	return user, found, nil
}

func lookupBackoff() *backoff.ExponentialBackOff {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = 200 * time.Millisecond
	expo.MaxInterval = 2 * time.Second
	expo.MaxElapsedTime = 5 * time.Second
	return expo
}
