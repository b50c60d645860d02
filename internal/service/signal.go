// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

type signalSource interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

type stdLibSignalSource struct{}

func (stdLibSignalSource) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (stdLibSignalSource) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}

// HandleSignals reacts to user signals until ctx is done. SIGUSR1 toggles the alternative
// text, SIGUSR2 switches the module to the next configured spot.
func (s *Service) HandleSignals(ctx context.Context, sigChan chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-sigChan:
			switch sig {
			case syscall.SIGUSR1:
				s.displayAltLock.Lock()
				s.displayAltText = !s.displayAltText
				s.displayAltLock.Unlock()
			case syscall.SIGUSR2:
				s.nextSpot()
			default:
				continue
			}
			s.printOutput(ctx)
		}
	}
}

func (s *Service) nextSpot() {
	count := len(s.store.Spots())
	if count == 0 {
		return
	}
	s.displayAltLock.Lock()
	s.displaySpot = (s.displaySpot + 1) % count
	spot := s.displaySpot
	s.displayAltLock.Unlock()
	s.logger.Debug("switched displayed spot", "index", spot)
}
