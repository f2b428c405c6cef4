package checkin

import (
	"context"
	"fmt"
)

// Source is a code feed, typically a camera or hardware scanner bridge.
// Start begins emitting decoded payloads to the callback; Stop releases
// the underlying device. A Source must tolerate Stop being called more
// than once.
type Source interface {
	Start(emit func(code string)) error
	Stop() error
}

// StartScanning attaches a source to the session. Only one source may
// be active; any previous source is released first so the device handle
// cannot leak. Every payload the source decodes runs through the same
// Submit sequence as manual entry.
func (s *Session) StartScanning(ctx context.Context, source Source, results chan<- *Result) error {
	s.mu.Lock()
	prev := s.source
	s.source = source
	s.mu.Unlock()

	if prev != nil {
		if err := prev.Stop(); err != nil {
			s.log.WithError(err).Warn("failed to release previous scan source")
		}
	}

	err := source.Start(func(code string) {
		result, err := s.Submit(ctx, code)
		if err != nil {
			// Debounced and in-flight drops are routine during a
			// continuous feed.
			return
		}
		if results != nil {
			select {
			case results <- result:
			case <-ctx.Done():
			}
		}
	})
	if err != nil {
		s.clearSource(source)
		return fmt.Errorf("failed to start scan source: %w", err)
	}
	return nil
}

// StopScanning releases the active source, if any. Safe to call on
// every exit path.
func (s *Session) StopScanning() {
	s.stopSource()
}

// Close tears the session down, releasing the source.
func (s *Session) Close() {
	s.stopSource()
}

func (s *Session) stopSource() {
	s.mu.Lock()
	source := s.source
	s.source = nil
	s.mu.Unlock()

	if source == nil {
		return
	}
	if err := source.Stop(); err != nil {
		s.log.WithError(err).Warn("failed to release scan source")
	}
}

func (s *Session) clearSource(source Source) {
	s.mu.Lock()
	if s.source == source {
		s.source = nil
	}
	s.mu.Unlock()
}
