// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/nathan-osman/go-sunrise"
	"github.com/vorlif/spreak"
	"github.com/wneessen/go-moonphase"

	"github.com/wneessen/waybar-surf/internal/api"
	"github.com/wneessen/waybar-surf/internal/config"
	"github.com/wneessen/waybar-surf/internal/job"
	"github.com/wneessen/waybar-surf/internal/logger"
	"github.com/wneessen/waybar-surf/internal/marine"
	"github.com/wneessen/waybar-surf/internal/presenter"
	"github.com/wneessen/waybar-surf/internal/store"
	"github.com/wneessen/waybar-surf/internal/surf"
	"github.com/wneessen/waybar-surf/internal/weather"
)

const (
	OutputClass    = "waybar-surf"
	SyntheticClass = "synthetic"
	EpicClass      = "epic"
)

type outputData struct {
	Text       string   `json:"text"`
	AltText    string   `json:"alt"`
	Tooltip    string   `json:"tooltip"`
	Classes    []string `json:"class"`
	Percentage int      `json:"percentage"`
}

type Service struct {
	config    *config.Config
	logger    *logger.Logger
	localizer *spreak.Localizer
	presenter *presenter.Presenter
	scheduler gocron.Scheduler
	store     *store.Store
	jobs      []*job.Job
	marine    marine.Provider
	wind      weather.Provider
	SignalSrc signalSource

	monitorSleep bool

	outputLock sync.Mutex
	output     io.Writer

	mockLock sync.Mutex
	mockRand *rand.Rand

	displayAltLock sync.RWMutex
	displayAltText bool
	displaySpot    int

	alertLock sync.RWMutex
	epicSpots []string
}

func New(conf *config.Config, log *logger.Logger, lang *spreak.Localizer) (*Service, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	pres, err := presenter.New(conf, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to create presenter: %w", err)
	}

	service := &Service{
		config:       conf,
		logger:       log,
		localizer:    lang,
		presenter:    pres,
		scheduler:    scheduler,
		store:        store.New(conf.SurfSpots()),
		output:       os.Stdout,
		mockRand:     surf.NewMockRand(conf.Marine.MockSeed),
		SignalSrc:    stdLibSignalSource{},
		monitorSleep: true,
	}
	return service, nil
}

func (s *Service) Run(ctx context.Context) (err error) {
	defer func() {
		if shutdownErr := s.scheduler.Shutdown(); shutdownErr != nil && err == nil {
			err = fmt.Errorf("failed to shut down scheduler: %w", shutdownErr)
		}
	}()

	if s.marine == nil {
		if s.marine, err = s.selectMarineProvider(); err != nil {
			return fmt.Errorf("failed to create marine provider: %w", err)
		}
	}
	if s.wind == nil && !s.config.Wind.Disable {
		if s.wind, err = s.selectWindProvider(); err != nil {
			return fmt.Errorf("failed to create wind provider: %w", err)
		}
	}

	// Start scheduled jobs
	if err = s.createScheduledJob(ctx, s.config.Intervals.MarineUpdate, s.updateForecasts,
		"marine_update_job", gocron.WithStartAt(gocron.WithStartImmediately())); err != nil {
		return err
	}
	if err = s.createScheduledJob(ctx, s.config.Intervals.Output, s.printOutput,
		"output_job"); err != nil {
		return err
	}
	s.scheduler.Start()

	if !s.config.Alerts.Disable {
		s.jobs = append(s.jobs, job.New(s.config.Intervals.AlertCheck, s.checkAlerts, job.WithRunOnStart()))
	}
	for _, j := range s.jobs {
		if j == nil {
			continue
		}
		go j.Start(ctx)
	}

	sigChan := make(chan os.Signal, 1)
	s.SignalSrc.Notify(sigChan, syscall.SIGUSR1, syscall.SIGUSR2)
	go func() {
		defer s.SignalSrc.Stop(sigChan)
		s.HandleSignals(ctx, sigChan)
	}()

	if s.monitorSleep {
		go s.monitorSleepResume(ctx)
	}

	serverErr := make(chan error, 1)
	if s.config.Server.Enable {
		server := api.NewServer(s.config.Server.Listen, api.NewHandler(s.store, s.logger), s.logger)
		go func() { serverErr <- server.Run(ctx) }()
	}

	// Wait for the context to cancel or the API server to fail
	select {
	case <-ctx.Done():
	case err = <-serverErr:
		if err != nil {
			s.logger.Error("HTTP API server failed", logger.Err(err))
		}
	}
	return err
}

func (s *Service) createScheduledJob(ctx context.Context, interval time.Duration, task func(context.Context),
	jobName string, opts ...gocron.JobOption,
) error {
	opts = append([]gocron.JobOption{
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName(jobName),
	}, opts...)
	_, err := s.scheduler.NewJob(gocron.DurationJob(interval), gocron.NewTask(task), opts...)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", jobName, err)
	}
	return nil
}

// printOutput renders the snapshot of the displayed spot and writes one waybar JSON line.
func (s *Service) printOutput(context.Context) {
	spots := s.store.Spots()
	if len(spots) == 0 {
		return
	}
	s.displayAltLock.RLock()
	spot := spots[s.displaySpot%len(spots)]
	altMode := s.displayAltText
	s.displayAltLock.RUnlock()

	snap, ok, err := s.store.Get(spot.ID)
	if err != nil || !ok {
		s.logger.Debug("no forecast available yet", "spot", spot.ID)
		return
	}

	now := time.Now()
	rise, set := sunrise.SunriseSunset(spot.Location.Latitude, spot.Location.Longitude, now.Year(),
		now.Month(), now.Day())
	moon := moonphase.New(now)

	s.alertLock.RLock()
	epicSpots := append([]string(nil), s.epicSpots...)
	s.alertLock.RUnlock()

	tplCtx := s.presenter.BuildContext(snap, now, rise, set, moon.PhaseName(), epicSpots)
	rendered, err := s.presenter.Render(tplCtx)
	if err != nil {
		s.logger.Error("failed to render templates", logger.Err(err))
		return
	}

	output := outputData{
		Text:       rendered["text"],
		AltText:    rendered["alt_text"],
		Tooltip:    rendered["tooltip"],
		Classes:    outputClasses(tplCtx),
		Percentage: min(max(tplCtx.Current.Quality.Score, 0), 100),
	}
	if altMode {
		output.Text = rendered["alt_text"]
		output.AltText = rendered["text"]
		output.Tooltip = rendered["alt_tooltip"]
	}

	s.outputLock.Lock()
	defer s.outputLock.Unlock()
	if err = json.NewEncoder(s.output).Encode(output); err != nil {
		s.logger.Error("failed to encode surf data", logger.Err(err))
	}
}

func outputClasses(tplCtx presenter.TemplateContext) []string {
	classes := []string{OutputClass}
	if tplCtx.Current.Quality.Rating.Valid() {
		classes = append(classes, tplCtx.Current.Quality.Rating.String())
	}
	if tplCtx.Synthetic {
		classes = append(classes, SyntheticClass)
	}
	if tplCtx.HasEpic {
		classes = append(classes, EpicClass)
	}
	return classes
}
