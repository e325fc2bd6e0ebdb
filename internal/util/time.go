package util

import (
	"fmt"
	"sync"
	"time"
)

// TimeProvider renders timestamps in the configured display timezone.
// Chart tick labels go through it so a user in one zone can still view
// their activity in another.
type TimeProvider struct {
	location *time.Location
	mu       sync.RWMutex
}

var (
	globalTimeProvider *TimeProvider
	timeProviderMu     sync.Mutex
)

// InitializeTimeProvider sets the global provider to the given IANA
// timezone name. "Local" and the empty string mean the system zone.
// An unknown name leaves any previous provider in place.
func InitializeTimeProvider(timezone string) error {
	timeProviderMu.Lock()
	defer timeProviderMu.Unlock()

	provider := &TimeProvider{}
	if err := provider.SetTimezone(timezone); err != nil {
		return err
	}
	globalTimeProvider = provider
	return nil
}

// GetTimeProvider returns the global provider, defaulting to the
// system zone when nothing was initialized.
func GetTimeProvider() *TimeProvider {
	timeProviderMu.Lock()
	defer timeProviderMu.Unlock()
	if globalTimeProvider == nil {
		globalTimeProvider = &TimeProvider{location: time.Local}
	}
	return globalTimeProvider
}

// SetTimezone points the provider at a new zone.
func (tp *TimeProvider) SetTimezone(timezone string) error {
	tp.mu.Lock()
	defer tp.mu.Unlock()

	loc := time.Local
	if timezone != "" && timezone != "Local" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone %q (try Local, UTC or an IANA name like Europe/Helsinki): %w", timezone, err)
		}
		loc = l
	}
	tp.location = loc
	return nil
}

// Format renders t with the given layout in the configured zone.
func (tp *TimeProvider) Format(t time.Time, layout string) string {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return t.In(tp.location).Format(layout)
}
