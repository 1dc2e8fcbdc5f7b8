// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/intellicard-client/internal/logger"
)

// DialFunc opens a connection; it matches (*net.Dialer).DialContext.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

type subscriber struct {
	onOnline  func()
	onOffline func()
}

// NetworkMonitor tracks connectivity by dialling a TCP address. It starts in
// the online state and flips only after a probe disagrees.
type NetworkMonitor struct {
	address  string
	interval time.Duration
	timeout  time.Duration
	dial     DialFunc

	mu          sync.RWMutex
	online      bool
	nextID      int
	subscribers map[int]subscriber

	logger *logger.Logger
}

// NewNetworkMonitor creates a monitor probing address every interval.
func NewNetworkMonitor(address string, interval time.Duration, log *logger.Logger) *NetworkMonitor {
	timeout := interval / 2
	if timeout <= 0 || timeout > 5*time.Second {
		timeout = 5 * time.Second
	}

	return &NetworkMonitor{
		address:     address,
		interval:    interval,
		timeout:     timeout,
		dial:        (&net.Dialer{}).DialContext,
		online:      true,
		subscribers: make(map[int]subscriber),
		logger:      log.Component("network"),
	}
}

// WithDialer replaces the dial function. Used by tests.
func (m *NetworkMonitor) WithDialer(dial DialFunc) *NetworkMonitor {
	m.dial = dial
	return m
}

// IsOnline returns the last observed connectivity state.
func (m *NetworkMonitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Subscribe registers transition callbacks. Either callback may be nil.
// The returned function removes the registration and is safe to call more
// than once.
func (m *NetworkMonitor) Subscribe(onOnline, onOffline func()) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = subscriber{onOnline: onOnline, onOffline: onOffline}
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	}
}

// Check probes once, updates the state and notifies subscribers when it
// changed. It returns the new state.
func (m *NetworkMonitor) Check(ctx context.Context) bool {
	online := m.probe(ctx)

	m.mu.Lock()
	changed := online != m.online
	m.online = online
	var callbacks []func()
	if changed {
		for _, s := range m.subscribers {
			cb := s.onOffline
			if online {
				cb = s.onOnline
			}
			if cb != nil {
				callbacks = append(callbacks, cb)
			}
		}
	}
	m.mu.Unlock()

	if changed {
		m.logger.Info().Bool("online", online).Str("address", m.address).Msg("connectivity changed")
	}
	for _, cb := range callbacks {
		cb()
	}

	return online
}

// Run probes immediately and then on every tick until ctx is cancelled.
func (m *NetworkMonitor) Run(ctx context.Context) error {
	if m.address == "" {
		return ErrNoProbeAddress
	}

	m.Check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

func (m *NetworkMonitor) probe(ctx context.Context) bool {
	if m.address == "" {
		return true
	}

	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	conn, err := m.dial(probeCtx, "tcp", m.address)
	if err != nil {
		m.logger.Debug().Err(err).Str("address", m.address).Msg("network probe failed")
		return false
	}
	_ = conn.Close()
	return true
}
