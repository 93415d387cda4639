package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivationFromSpot(t *testing.T) {
	t.Run("complete spot", func(t *testing.T) {
		raw := RawSpot{
			Activator:    "N0CALL",
			Name:         "Staunton State Park",
			LocationDesc: "US-CO",
			Mode:         "SSB",
			Frequency:    "14286",
			SpotTime:     "2026-08-22T18:31:04",
		}

		a, err := ActivationFromSpot(raw)
		require.NoError(t, err)
		assert.Equal(t, "N0CALL", a.Activator)
		assert.Equal(t, "Staunton State Park", a.Name)
		assert.Equal(t, "US-CO", a.LocationDesc)
		assert.Equal(t, ModeSSB, a.Mode)
		assert.Equal(t, Frequency(14286000), a.Frequency)
		assert.Equal(t, time.Date(2026, 8, 22, 18, 31, 4, 0, time.UTC), a.SpotTime)
	})

	t.Run("lowercase mode accepted", func(t *testing.T) {
		raw := RawSpot{Mode: "ft8", Frequency: "14074", SpotTime: "2026-08-22T18:31:04"}

		a, err := ActivationFromSpot(raw)
		require.NoError(t, err)
		assert.Equal(t, ModeFT8, a.Mode)
	})

	t.Run("empty mode becomes unknown", func(t *testing.T) {
		raw := RawSpot{Mode: "", Frequency: "7123.5", SpotTime: "2026-08-22T18:31:04"}

		a, err := ActivationFromSpot(raw)
		require.NoError(t, err)
		assert.Equal(t, ModeUnknown, a.Mode)
		assert.Equal(t, Frequency(7123500), a.Frequency)
	})

	t.Run("non-numeric frequency", func(t *testing.T) {
		raw := RawSpot{Mode: "SSB", Frequency: "QSY", SpotTime: "2026-08-22T18:31:04"}

		_, err := ActivationFromSpot(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse frequency")
	})

	t.Run("unrecognized mode", func(t *testing.T) {
		raw := RawSpot{Mode: "AM", Frequency: "14286", SpotTime: "2026-08-22T18:31:04"}

		_, err := ActivationFromSpot(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown mode "AM"`)
	})

	t.Run("malformed spot time", func(t *testing.T) {
		raw := RawSpot{Mode: "SSB", Frequency: "14286", SpotTime: "22/08/2026 18:31"}

		_, err := ActivationFromSpot(raw)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse spot time")
	})
}

func TestConvertSpots(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		raws := []RawSpot{
			{Activator: "N0CALL", Mode: "FT8", Frequency: "14074", SpotTime: "2026-08-22T18:31:04"},
			{Activator: "W1AW", Mode: "CW", Frequency: "7030", SpotTime: "2026-08-22T18:29:00"},
		}

		activations, err := ConvertSpots(raws)
		require.NoError(t, err)
		require.Len(t, activations, 2)
		assert.Equal(t, ModeFT8, activations[0].Mode)
		assert.Equal(t, ModeCW, activations[1].Mode)
	})

	t.Run("one bad record fails the whole feed", func(t *testing.T) {
		raws := []RawSpot{
			{Activator: "N0CALL", Mode: "FT8", Frequency: "14074", SpotTime: "2026-08-22T18:31:04"},
			{Activator: "W1AW", Mode: "CW", Frequency: "seven", SpotTime: "2026-08-22T18:29:00"},
			{Activator: "K2XYZ", Mode: "SSB", Frequency: "14200", SpotTime: "2026-08-22T18:28:00"},
		}

		activations, err := ConvertSpots(raws)
		require.Error(t, err)
		assert.Nil(t, activations)
		assert.Contains(t, err.Error(), "spot 1")
	})

	t.Run("empty feed", func(t *testing.T) {
		activations, err := ConvertSpots(nil)
		require.NoError(t, err)
		assert.Empty(t, activations)
	})
}

func TestFindMostRecentMatch(t *testing.T) {
	spotTime := time.Date(2026, 8, 22, 18, 0, 0, 0, time.UTC)
	activations := []Activation{
		{Activator: "A1AAA", Mode: ModeFT8, Frequency: 14074000, SpotTime: spotTime},
		{Activator: "B2BBB", Mode: ModeSSB, Frequency: 14200000, SpotTime: spotTime},
		{Activator: "C3CCC", Mode: ModeSSB, Frequency: 7100000, SpotTime: spotTime},
	}

	t.Run("skips band match with wrong mode", func(t *testing.T) {
		match := FindMostRecentMatch(activations, Band20m, ModeSSB)
		require.NotNil(t, match)
		assert.Equal(t, "B2BBB", match.Activator)
	})

	t.Run("matches on 40m", func(t *testing.T) {
		match := FindMostRecentMatch(activations, Band40m, ModeSSB)
		require.NotNil(t, match)
		assert.Equal(t, "C3CCC", match.Activator)
	})

	t.Run("no match for mode absent from band", func(t *testing.T) {
		assert.Nil(t, FindMostRecentMatch(activations, Band40m, ModeFT8))
	})

	t.Run("feed order wins over timestamps", func(t *testing.T) {
		older := Activation{Activator: "OLD", Mode: ModeCW, Frequency: 14030000, SpotTime: spotTime.Add(-time.Hour)}
		newer := Activation{Activator: "NEW", Mode: ModeCW, Frequency: 14035000, SpotTime: spotTime}

		match := FindMostRecentMatch([]Activation{older, newer}, Band20m, ModeCW)
		require.NotNil(t, match)
		assert.Equal(t, "OLD", match.Activator)
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Nil(t, FindMostRecentMatch(nil, Band20m, ModeSSB))
	})
}

func TestActivation_Age(t *testing.T) {
	now := time.Date(2026, 8, 22, 18, 31, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(now))
	defer SetClock(nil)

	past := Activation{SpotTime: now.Add(-125 * time.Second)}
	assert.Equal(t, -125*time.Second, past.Age())

	future := Activation{SpotTime: now.Add(45 * time.Second)}
	assert.Equal(t, 45*time.Second, future.Age())
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		name     string
		age      time.Duration
		expected string
	}{
		{"under a minute", 45 * time.Second, "45"},
		{"negative under a minute", -45 * time.Second, "45"},
		{"exactly a minute", 60 * time.Second, "60"},
		{"over a minute", 125 * time.Second, "2m5s"},
		{"negative over a minute", -125 * time.Second, "2m5s"},
		{"zero", 0, "0"},
		{"sub-second truncates", 900 * time.Millisecond, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAge(tt.age))
		})
	}
}

func TestActivation_Summary(t *testing.T) {
	now := time.Date(2026, 8, 22, 18, 33, 9, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(now))
	defer SetClock(nil)

	a := Activation{
		Activator:    "N0CALL",
		Name:         "Staunton State Park",
		LocationDesc: "US-CO",
		Mode:         ModeSSB,
		Frequency:    14286000,
		SpotTime:     time.Date(2026, 8, 22, 18, 31, 4, 0, time.UTC),
	}

	expected := "[time:2026-08-22 18:31:04 UTC,age:2m5s] 14.286MHz SSB, US-CO - Staunton State Park (N0CALL)"
	assert.Equal(t, expected, a.Summary())
}

func TestSetClock(t *testing.T) {
	t.Run("set custom clock", func(t *testing.T) {
		fixedTime := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		SetClock(clockwork.NewFakeClockAt(fixedTime))
		defer SetClock(nil)

		assert.Equal(t, fixedTime, clock.Now())
	})

	t.Run("reset to real clock", func(t *testing.T) {
		SetClock(clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
		SetClock(nil)

		assert.True(t, time.Since(clock.Now()) < time.Second)
	})
}
