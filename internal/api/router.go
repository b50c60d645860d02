// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package api exposes the stored surf forecasts over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/wneessen/waybar-surf/internal/logger"
)

const (
	readHeaderTimeout = time.Second * 5
	shutdownTimeout   = time.Second * 5
)

type Router struct {
	handler *Handler
	router  *mux.Router
}

func NewRouter(handler *Handler, router *mux.Router) *Router {
	return &Router{handler: handler, router: router}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/ping", r.handler.Ping).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/spots", r.handler.ListSpots).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/spots/{id}/forecast", r.handler.GetForecast).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/spots/{id}/daily", r.handler.GetDaily).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/spots/{id}/chart", r.handler.GetChart).Methods(http.MethodGet)
}

// Server is the HTTP API server.
type Server struct {
	srv *http.Server
	log *logger.Logger
}

func NewServer(listen string, handler *Handler, log *logger.Logger) *Server {
	muxRouter := mux.NewRouter()
	NewRouter(handler, muxRouter).RegisterRoutes()
	return &Server{
		srv: &http.Server{
			Addr:              listen,
			Handler:           muxRouter,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		log: log,
	}
}

// Run serves until the context is canceled and then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting HTTP API server", "listen", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve HTTP API: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP API server: %w", err)
	}
	s.log.Info("HTTP API server stopped")
	return nil
}
