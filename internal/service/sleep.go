// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/wneessen/waybar-surf/internal/logger"
)

const (
	logindInterface   = "org.freedesktop.login1.Manager"
	logindSleepMember = "PrepareForSleep"

	resumeDebounce    = 2 * time.Second
	sleepSignalBuffer = 8

	busRetryDelay      = 5 * time.Second
	networkWakeupDelay = 10 * time.Second
)

// resumeWatcher turns logind PrepareForSleep signals into forecast refreshes.
type resumeWatcher struct {
	service    *Service
	lastResume atomic.Int64
	wakeDelay  time.Duration
}

func (s *Service) monitorSleepResume(ctx context.Context) {
	watcher := &resumeWatcher{service: s, wakeDelay: networkWakeupDelay}
	for {
		conn, ok := watcher.subscribe(ctx)
		if !ok {
			return
		}
		sigCh := make(chan *dbus.Signal, sleepSignalBuffer)
		conn.Signal(sigCh)
		s.logger.Debug("watching for system resume", slog.String("interface", logindInterface),
			slog.String("member", logindSleepMember))

		watcher.consume(ctx, sigCh)

		conn.RemoveSignal(sigCh)
		if err := conn.Close(); err != nil {
			s.logger.Error("failed to close system bus connection", logger.Err(err))
		}
		if !sleepCtx(ctx, busRetryDelay) {
			return
		}
	}
}

// subscribe connects to the system bus and registers the PrepareForSleep match, retrying until
// it succeeds or ctx is done.
func (w *resumeWatcher) subscribe(ctx context.Context) (*dbus.Conn, bool) {
	log := w.service.logger
	for {
		conn, err := dbus.ConnectSystemBus(dbus.WithContext(ctx))
		if err == nil {
			err = conn.AddMatchSignal(dbus.WithMatchInterface(logindInterface),
				dbus.WithMatchMember(logindSleepMember))
			if err == nil {
				return conn, true
			}
			log.Error("failed to subscribe to logind sleep signal", logger.Err(err))
			_ = conn.Close()
		}
		if !sleepCtx(ctx, busRetryDelay) {
			return nil, false
		}
	}
}

// consume handles signals until ctx is done or the connection drops.
func (w *resumeWatcher) consume(ctx context.Context, sigCh <-chan *dbus.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case sgn, ok := <-sigCh:
			if !ok {
				return
			}
			w.handle(ctx, sgn)
		}
	}
}

// handle reacts to PrepareForSleep(false), which logind emits on resume. Repeated resume
// signals within the debounce window are dropped.
func (w *resumeWatcher) handle(ctx context.Context, sgn *dbus.Signal) {
	if sgn == nil || len(sgn.Body) != 1 {
		return
	}
	if sleeping, ok := sgn.Body[0].(bool); !ok || sleeping {
		return
	}

	now := time.Now()
	if last := w.lastResume.Load(); last != 0 && now.Sub(time.Unix(0, last)) < resumeDebounce {
		return
	}
	w.lastResume.Store(now.UnixNano())

	// the network is usually not back right after resume
	if !sleepCtx(ctx, w.wakeDelay) {
		return
	}
	w.service.logger.Debug("system resumed, refreshing stale surf forecasts")
	w.service.refreshStale(ctx)
}

// sleepCtx waits for d and reports false if ctx was cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
