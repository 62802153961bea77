package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

func TestGitHubClient_FindProfiles(t *testing.T) {
	t.Parallel()

	t.Run("resolves existing usernames", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/users/janedoe":
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"html_url":"https://github.com/janedoe","name":"Jane Doe","public_repos":12,"followers":3,"created_at":"2015-04-01T00:00:00Z"}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		c := NewGitHubClient(srv.URL, 2*time.Second)
		presence, err := c.FindProfiles(context.Background(), "Jane Doe")
		require.NoError(t, err)

		assert.True(t, presence.Exists)
		require.Len(t, presence.Profiles, 1)
		assert.Equal(t, "janedoe", presence.Profiles[0].Username)
		assert.Equal(t, 12, presence.Profiles[0].PublicRepos)
	})

	t.Run("no matches is not an error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewGitHubClient(srv.URL, 2*time.Second)
		presence, err := c.FindProfiles(context.Background(), "Jane Doe")
		require.NoError(t, err)
		assert.False(t, presence.Exists)
		assert.Empty(t, presence.Profiles)
		assert.NotEmpty(t, presence.Note)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		c := NewGitHubClient("http://invalid.test", time.Second)
		_, err := c.FindProfiles(context.Background(), "  ")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("unreachable api surfaces an error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := NewGitHubClient(srv.URL, time.Second)
		_, err := c.FindProfiles(context.Background(), "Jane Doe")
		assert.ErrorIs(t, err, domain.ErrInternal)
	})
}

func TestWaybackClient_Snapshot(t *testing.T) {
	t.Parallel()

	t.Run("available snapshot", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/wayback/available", r.URL.Path)
			assert.NotEmpty(t, r.URL.Query().Get("url"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"archived_snapshots":{"closest":{"url":"https://web.archive.org/web/2020/x","timestamp":"20200101000000","available":true}}}`))
		}))
		defer srv.Close()

		c := NewWaybackClient(srv.URL, 2*time.Second)
		snap, err := c.Snapshot(context.Background(), "https://www.linkedin.com/in/jane-doe-dev")
		require.NoError(t, err)
		assert.True(t, snap.HasArchive)
		assert.Equal(t, "20200101000000", snap.Timestamp)
	})

	t.Run("no snapshot", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"archived_snapshots":{}}`))
		}))
		defer srv.Close()

		c := NewWaybackClient(srv.URL, 2*time.Second)
		snap, err := c.Snapshot(context.Background(), "https://www.linkedin.com/in/jane-doe-dev")
		require.NoError(t, err)
		assert.False(t, snap.HasArchive)
		assert.NotEmpty(t, snap.Note)
	})

	t.Run("empty URL", func(t *testing.T) {
		t.Parallel()
		c := NewWaybackClient("http://invalid.test", time.Second)
		_, err := c.Snapshot(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("client error is permanent", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		c := NewWaybackClient(srv.URL, time.Second)
		_, err := c.Snapshot(context.Background(), "https://www.linkedin.com/in/jane-doe-dev")
		assert.ErrorIs(t, err, domain.ErrInternal)
	})
}
