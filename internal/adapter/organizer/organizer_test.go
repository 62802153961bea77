package organizer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgentry11/candidate-verification-app/internal/analysis"
	"github.com/mgentry11/candidate-verification-app/internal/domain"
)

func newAnalyzer() *analysis.Analyzer {
	fixed := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	return analysis.New(analysis.DefaultRuleset(), analysis.WithClock(func() time.Time { return fixed }))
}

func TestRun_PlacesFilesByRisk(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	o := New(newAnalyzer(), nil)

	// The trap term carries a critical flag, so the first resume lands in a
	// risk bucket; the metric-heavy one stays in the safe bucket.
	risky := []byte("Owned back-office engineering across teams")
	clean := []byte("Reduced deploy time by 40%. Improved uptime by 20%. Increased coverage by 30%. Reduced cost by 10%. Improved latency by 25%. Increased throughput by 15%.")

	res, err := o.Run(context.Background(), dir, "", []File{
		{Filename: "risky.txt", Data: risky},
		{Filename: "clean.txt", Data: clean},
		{Filename: "skipped.exe", Data: []byte("binary")},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.OrganizedCount)
	require.Len(t, res.Placements, 2)

	for _, p := range res.Placements {
		assert.Empty(t, p.Error)
		placed := filepath.Join(p.Destination, p.Filename)
		_, statErr := os.Stat(placed)
		assert.NoError(t, statErr, placed)
	}

	// All five buckets exist even when empty.
	for _, name := range []string{"1_CRITICAL_RISK", "2_HIGH_RISK", "3_MEDIUM_RISK", "4_LOW_RISK", "5_SAFE_TO_PROCEED"} {
		info, statErr := os.Stat(filepath.Join(dir, name))
		require.NoError(t, statErr, name)
		assert.True(t, info.IsDir())
	}

	summary, err := os.ReadFile(filepath.Join(dir, "ORGANIZATION_SUMMARY.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(summary), "Total Files Organized: 2")
}

func TestRun_Validation(t *testing.T) {
	t.Parallel()
	o := New(newAnalyzer(), nil)

	_, err := o.Run(context.Background(), "", "", []File{{Filename: "a.txt"}})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = o.Run(context.Background(), t.TempDir(), "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRun_ExtractionFailureIsIsolated(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	o := New(newAnalyzer(), failingExtractor{})

	res, err := o.Run(context.Background(), dir, "", []File{
		{Filename: "broken.pdf", Data: []byte{0x1}},
	})
	require.NoError(t, err)

	assert.Zero(t, res.OrganizedCount)
	require.Len(t, res.Placements, 1)
	assert.NotEmpty(t, res.Placements[0].Error)
}

type failingExtractor struct{}

func (failingExtractor) Extract(_ context.Context, _ string, _ []byte) (string, error) {
	return "", domain.ErrExtractionFailed
}
