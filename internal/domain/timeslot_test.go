package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlot_RemainingNeverNegative(t *testing.T) {
	s := &TimeSlot{TotalMin: 60, UsedMin: 75}
	assert.Equal(t, 0, s.RemainingMin())
}

func TestTimeSlot_CanFit(t *testing.T) {
	s := &TimeSlot{TotalMin: 60, UsedMin: 45}

	assert.True(t, s.CanFit(15))
	assert.False(t, s.CanFit(16))
	assert.False(t, s.CanFit(0))
	assert.False(t, s.CanFit(-5))
}

func TestTimeSlot_Consume(t *testing.T) {
	s := &TimeSlot{Weekday: Monday, Ordinal: 1, TotalMin: 60}

	require.NoError(t, s.Consume(40))
	assert.Equal(t, 20, s.RemainingMin())

	err := s.Consume(30)
	require.Error(t, err)
	assert.Equal(t, 20, s.RemainingMin())
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		{" 15:00 ", 900, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "08:05", FormatClock(485))
	assert.Equal(t, "16:10", FormatClock(970))
}
