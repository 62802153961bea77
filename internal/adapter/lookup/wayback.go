package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	metrics "github.com/mgentry11/candidate-verification-app/internal/adapter/observability"
	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

// WaybackClient resolves historical snapshots of a page through the Wayback
// Machine availability API. It implements domain.ArchiveLookup.
type WaybackClient struct {
	baseURL string
	hc      *http.Client
}

// NewWaybackClient constructs a client against the given API base URL
// (https://archive.org in production).
func NewWaybackClient(baseURL string, timeout time.Duration) *WaybackClient {
	return &WaybackClient{
		baseURL: baseURL,
		hc: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type waybackResponse struct {
	ArchivedSnapshots struct {
		Closest *struct {
			URL       string `json:"url"`
			Timestamp string `json:"timestamp"`
			Available bool   `json:"available"`
		} `json:"closest"`
	} `json:"archived_snapshots"`
}

// Snapshot returns the closest archived snapshot of pageURL. No snapshot is
// not an error; it comes back as HasArchive=false with an explanatory note.
func (c *WaybackClient) Snapshot(ctx context.Context, pageURL string) (domain.ArchiveSnapshot, error) {
	if pageURL == "" {
		return domain.ArchiveSnapshot{}, fmt.Errorf("%w: empty page URL", domain.ErrInvalidArgument)
	}

	var out waybackResponse
	op := func() error {
		endpoint := c.baseURL + "/wayback/available?url=" + url.QueryEscape(pageURL)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.hc.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return backoff.Permanent(fmt.Errorf("wayback status %d", resp.StatusCode))
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("wayback status %d", resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(body, &out); err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	bo := backoff.WithContext(lookupBackoff(), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		metrics.ObserveLookup("wayback", "error")
		return domain.ArchiveSnapshot{}, fmt.Errorf("%w: wayback lookup: %v", domain.ErrInternal, err)
	}
	metrics.ObserveLookup("wayback", "ok")

	closest := out.ArchivedSnapshots.Closest
	if closest == nil || !closest.Available {
		return domain.ArchiveSnapshot{
			HasArchive: false,
			Note:       "No archived versions found - could indicate new profile",
		}, nil
	}
	return domain.ArchiveSnapshot{
		HasArchive: true,
		URL:        closest.URL,
		Timestamp:  closest.Timestamp,
		Note:       "Check archive to see if profile belonged to different person",
	}, nil
}
