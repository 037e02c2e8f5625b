package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePermissions struct {
	granted bool
	err     error
	calls   int
}

func (f *fakePermissions) Request(ctx context.Context) (bool, error) {
	f.calls++
	return f.granted, f.err
}

type fakePositions struct {
	coords Coordinates
	err    error
	block  bool
	calls  int
}

func (f *fakePositions) Current(ctx context.Context) (Coordinates, error) {
	f.calls++
	if f.block {
		<-ctx.Done()
		return Coordinates{}, ctx.Err()
	}
	if f.err != nil {
		return Coordinates{}, f.err
	}
	return f.coords, nil
}

func TestBridge_RequestLocation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		perms := &fakePermissions{granted: true}
		positions := &fakePositions{coords: Coordinates{Latitude: 52.52, Longitude: 13.405, Accuracy: 20}}
		bridge := NewBridge(perms, positions, time.Second, nil)

		coords, err := bridge.RequestLocation(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 52.52, coords.Latitude)
		assert.Equal(t, 13.405, coords.Longitude)
		assert.Equal(t, 1, perms.calls)
		assert.Equal(t, 1, positions.calls)
	})

	t.Run("permission denied skips position fix", func(t *testing.T) {
		perms := &fakePermissions{granted: false}
		positions := &fakePositions{}
		bridge := NewBridge(perms, positions, time.Second, nil)

		_, err := bridge.RequestLocation(context.Background())
		require.ErrorIs(t, err, ErrPermissionDenied)
		assert.Equal(t, 0, positions.calls)
	})

	t.Run("fix timeout", func(t *testing.T) {
		perms := &fakePermissions{granted: true}
		positions := &fakePositions{block: true}
		bridge := NewBridge(perms, positions, 20*time.Millisecond, nil)

		_, err := bridge.RequestLocation(context.Background())
		require.ErrorIs(t, err, ErrTimeout)
	})

	t.Run("hardware unavailable", func(t *testing.T) {
		perms := &fakePermissions{granted: true}
		positions := &fakePositions{err: ErrUnavailable}
		bridge := NewBridge(perms, positions, time.Second, nil)

		_, err := bridge.RequestLocation(context.Background())
		require.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("unknown provider failure", func(t *testing.T) {
		perms := &fakePermissions{granted: true}
		positions := &fakePositions{err: errors.New("gps driver crashed")}
		bridge := NewBridge(perms, positions, time.Second, nil)

		_, err := bridge.RequestLocation(context.Background())
		require.ErrorIs(t, err, ErrUnknown)
		assert.Contains(t, err.Error(), "gps driver crashed")
	})

	t.Run("permission service failure maps to unknown", func(t *testing.T) {
		perms := &fakePermissions{err: errors.New("dialog crashed")}
		positions := &fakePositions{}
		bridge := NewBridge(perms, positions, time.Second, nil)

		_, err := bridge.RequestLocation(context.Background())
		require.ErrorIs(t, err, ErrUnknown)
		assert.Equal(t, 0, positions.calls)
	})

	t.Run("caller cancellation is not remapped", func(t *testing.T) {
		perms := &fakePermissions{granted: true}
		positions := &fakePositions{block: true}
		bridge := NewBridge(perms, positions, time.Second, nil)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		_, err := bridge.RequestLocation(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "permission denied",
			err:      ErrPermissionDenied,
			expected: "Location access denied. Please enable location services in your device settings.",
		},
		{
			name:     "unavailable",
			err:      ErrUnavailable,
			expected: "Location information is unavailable. Please check your GPS settings.",
		},
		{
			name:     "timeout",
			err:      ErrTimeout,
			expected: "Location request timed out. Please try again.",
		},
		{
			name:     "wrapped unknown",
			err:      errors.New("anything else"),
			expected: "An unknown error occurred while retrieving location.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Message(tt.err))
		})
	}
}
