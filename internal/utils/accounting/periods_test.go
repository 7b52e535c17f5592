package accounting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factoryops/factory_books_app/internal/utils/accounting"
)

func TestFormatPeriod(t *testing.T) {
	assert.Equal(t, "2024-03", accounting.FormatPeriod(time.Date(2024, 3, 17, 9, 30, 0, 0, time.UTC)))
	// Formatting is UTC-based regardless of the input's zone.
	offset := time.FixedZone("UTC+10", 10*60*60)
	assert.Equal(t, "2024-02", accounting.FormatPeriod(time.Date(2024, 3, 1, 5, 0, 0, 0, offset)))
}

func TestParsePeriod(t *testing.T) {
	parsed, err := accounting.ParsePeriod("2024-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), parsed)

	for _, label := range []string{"", "2024", "2024-13", "03-2024", "March 2024"} {
		_, err := accounting.ParsePeriod(label)
		assert.Error(t, err, "label %q", label)
	}
}

func TestPeriodEnd(t *testing.T) {
	cases := map[string]time.Time{
		"2024-01": time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		"2024-02": time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), // leap year
		"2023-02": time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		"2024-04": time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
		"2024-12": time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	for label, want := range cases {
		got, err := accounting.PeriodEnd(label)
		require.NoError(t, err)
		assert.Equal(t, want, got, "period %s", label)
	}

	_, err := accounting.PeriodEnd("not-a-period")
	assert.Error(t, err)
}

func TestPendingPeriods(t *testing.T) {
	from := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	t.Run("full range excludes current month", func(t *testing.T) {
		pending := accounting.PendingPeriods(from, now, nil)
		assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, pending)
	})

	t.Run("processed months drop out", func(t *testing.T) {
		pending := accounting.PendingPeriods(from, now, map[string]bool{"2024-01": true, "2024-03": true})
		assert.Equal(t, []string{"2024-02"}, pending)
	})

	t.Run("same month yields nothing", func(t *testing.T) {
		pending := accounting.PendingPeriods(now, now, nil)
		assert.Empty(t, pending)
	})

	t.Run("year boundary", func(t *testing.T) {
		pending := accounting.PendingPeriods(
			time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			nil,
		)
		assert.Equal(t, []string{"2023-11", "2023-12", "2024-01"}, pending)
	})
}
