package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func TestResolveDateRange(t *testing.T) {
	today := time.Date(2025, 7, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		from    *time.Time
		to      *time.Time
		want    DateRange
		wantErr error
	}{
		{
			name: "sem datas usa os últimos 180 dias",
			want: DateRange{From: date("2025-01-02"), To: date("2025-07-01")},
		},
		{
			name: "apenas to informado",
			to:   ptr(date("2025-03-31")),
			want: DateRange{From: date("2024-10-02"), To: date("2025-03-31")},
		},
		{
			name: "intervalo explícito",
			from: ptr(date("2025-01-01")),
			to:   ptr(date("2025-01-31")),
			want: DateRange{From: date("2025-01-01"), To: date("2025-01-31")},
		},
		{
			name:    "from posterior a to",
			from:    ptr(date("2025-02-01")),
			to:      ptr(date("2025-01-01")),
			wantErr: ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDateRange(tt.from, tt.to, today, DefaultLookbackDays)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateRange_Previous(t *testing.T) {
	r := DateRange{From: date("2025-01-01"), To: date("2025-01-31")}
	prev := r.Previous()

	assert.Equal(t, 31, r.Days())
	assert.Equal(t, "2024-12-01", prev.FromString())
	assert.Equal(t, "2024-12-31", prev.ToString())
	assert.Equal(t, r.Days(), prev.Days())

	single := DateRange{From: date("2025-03-01"), To: date("2025-03-01")}
	assert.Equal(t, DateRange{From: date("2025-02-28"), To: date("2025-02-28")}, single.Previous())
}

func TestDateRange_MarshalJSON(t *testing.T) {
	b, err := DateRange{From: date("2025-01-01"), To: date("2025-01-31")}.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"2025-01-01","to":"2025-01-31"}`, string(b))
}

func ptr[T any](v T) *T {
	return &v
}
