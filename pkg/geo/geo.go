// Package geo obtains a single device position fix for the nearby-airports
// feature, translating platform permission and hardware states into a small
// closed error taxonomy.
package geo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Error taxonomy for a location request. Everything a provider can fail
// with maps onto one of these four sentinels.
var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrTimeout          = errors.New("location request timed out")
	ErrUnavailable      = errors.New("location unavailable")
	ErrUnknown          = errors.New("location error")
)

// Coordinates is a single geographic position fix.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy,omitempty"`
}

// DefaultFixTimeout bounds how long a position fix may take
const DefaultFixTimeout = 15 * time.Second

// PermissionService asks the platform for foreground location permission.
// Granted=false without an error means the user denied the dialog.
type PermissionService interface {
	Request(ctx context.Context) (granted bool, err error)
}

// PositionProvider produces one high-accuracy position fix.
// Implementations should fail with ErrUnavailable when location hardware
// or services are off; any other failure is mapped to ErrUnknown.
type PositionProvider interface {
	Current(ctx context.Context) (Coordinates, error)
}

// Bridge runs the permission-then-fix sequence for one location request:
//
//	Idle -> RequestingPermission -> PermissionDenied (terminal)
//	                             -> FetchingPosition -> Resolved | Timeout | Unavailable | Unknown
type Bridge struct {
	perms      PermissionService
	positions  PositionProvider
	fixTimeout time.Duration
	logger     *zap.Logger
}

// NewBridge creates a geolocation bridge. A non-positive timeout falls back
// to DefaultFixTimeout.
func NewBridge(perms PermissionService, positions PositionProvider, fixTimeout time.Duration, logger *zap.Logger) *Bridge {
	if fixTimeout <= 0 {
		fixTimeout = DefaultFixTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{
		perms:      perms,
		positions:  positions,
		fixTimeout: fixTimeout,
		logger:     logger,
	}
}

// RequestLocation requests permission if needed and returns a single
// position fix. It never streams updates; callers invoke it again for a
// fresh fix. Every failure satisfies errors.Is against exactly one of the
// package sentinels.
func (b *Bridge) RequestLocation(ctx context.Context) (Coordinates, error) {
	granted, err := b.perms.Request(ctx)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUnknown, err)
	}
	if !granted {
		return Coordinates{}, ErrPermissionDenied
	}

	fixCtx, cancel := context.WithTimeout(ctx, b.fixTimeout)
	defer cancel()

	coords, err := b.positions.Current(fixCtx)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return Coordinates{}, ErrTimeout
		case errors.Is(err, context.Canceled):
			return Coordinates{}, context.Canceled
		case errors.Is(err, ErrUnavailable):
			return Coordinates{}, ErrUnavailable
		default:
			return Coordinates{}, fmt.Errorf("%w: %v", ErrUnknown, err)
		}
	}

	b.logger.Debug("position fix resolved",
		zap.Float64("lat", coords.Latitude),
		zap.Float64("lng", coords.Longitude),
		zap.Float64("accuracy", coords.Accuracy),
	)
	return coords, nil
}

// Message maps a RequestLocation failure to its user-facing text
func Message(err error) string {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return "Location access denied. Please enable location services in your device settings."
	case errors.Is(err, ErrUnavailable):
		return "Location information is unavailable. Please check your GPS settings."
	case errors.Is(err, ErrTimeout):
		return "Location request timed out. Please try again."
	default:
		return "An unknown error occurred while retrieving location."
	}
}
