// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"
	"strings"

	"github.com/wneessen/waybar-surf/internal/config"
	"github.com/wneessen/waybar-surf/internal/http"
	"github.com/wneessen/waybar-surf/internal/marine"
	marinemeteo "github.com/wneessen/waybar-surf/internal/marine/provider/open-meteo"
	"github.com/wneessen/waybar-surf/internal/weather"
	openmeteo "github.com/wneessen/waybar-surf/internal/weather/provider/open-meteo"
)

func (s *Service) selectMarineProvider() (provider marine.Provider, err error) {
	switch strings.ToLower(s.config.Marine.Provider) {
	case config.ProviderOpenMeteo:
		meteo, err := marinemeteo.New(http.New(s.logger), s.logger, s.config.Marine.Timezone,
			s.config.Marine.ForecastDays)
		if err != nil {
			return nil, fmt.Errorf("failed to create Open-Meteo marine provider: %w", err)
		}
		provider = marine.NewCachedProvider(meteo, s.config.Marine.CacheTTL)
	default:
		return nil, fmt.Errorf("unsupported marine provider: %s", s.config.Marine.Provider)
	}
	return provider, nil
}

func (s *Service) selectWindProvider() (provider weather.Provider, err error) {
	switch strings.ToLower(s.config.Marine.Provider) {
	case config.ProviderOpenMeteo:
		provider, err = openmeteo.New(s.logger)
		if err != nil {
			return provider, fmt.Errorf("failed to create Open-Meteo wind provider: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported wind provider: %s", s.config.Marine.Provider)
	}
	return provider, nil
}
