package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimestampLayouts(t *testing.T) {
	cases := map[string]struct {
		in   string
		want time.Time
	}{
		"export layout": {
			in:   "2024-03-01 09:00:00 +0200",
			want: time.Date(2024, time.March, 1, 7, 0, 0, 0, time.UTC),
		},
		"negative offset crossing midnight": {
			in:   "2024-03-01 22:30:00 -0500",
			want: time.Date(2024, time.March, 2, 3, 30, 0, 0, time.UTC),
		},
		"rfc3339": {
			in:   "2024-03-01T09:00:00Z",
			want: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
		},
		"zone-less treated as utc": {
			in:   "2024-03-01 09:00:00",
			want: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
		},
		"date only": {
			in:   "2024-03-01",
			want: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		"padded": {
			in:   "  2024-03-01 09:00:00 +0000  ",
			want: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := ParseTimestamp(tc.in)
			require.NotNil(t, got)
			require.True(t, got.Equal(tc.want), "got %s want %s", got, tc.want)
			require.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseTimestampInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "not a time", "2024-13-40 99:00:00 +0000"} {
		require.Nil(t, ParseTimestamp(in), "input %q", in)
	}
}
