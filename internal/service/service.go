// Package service resolves calculation requests against the preset catalogs,
// runs the effects engine, and hands results to the optional publisher. It
// is the only layer that sees both catalog names and engine numbers.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/larseberhart/nuccalc/internal/catalog"
	"github.com/larseberhart/nuccalc/internal/effects"
	"github.com/larseberhart/nuccalc/internal/observability"
)

var (
	// ErrUnknownWeapon is returned when a named weapon preset does not exist.
	ErrUnknownWeapon = errors.New("unknown weapon preset")
	// ErrUnknownCity is returned when a named target city does not exist.
	ErrUnknownCity = errors.New("unknown target city")
	// ErrMissingYield is returned when neither a yield nor a weapon preset
	// is given.
	ErrMissingYield = errors.New("either yield_mt or weapon is required")
	// ErrMissingTarget is returned when neither a population model nor a
	// city preset is given.
	ErrMissingTarget = errors.New("either population or city is required")
)

// Publisher delivers a computed result to an external sink.
type Publisher interface {
	Publish(ctx context.Context, res effects.Result) error
}

// Request describes one calculation. Explicit numeric parameters win over
// catalog references when both are present.
type Request struct {
	// Weapon names a preset from the weapons catalog; YieldMegatons
	// overrides it.
	Weapon        string   `json:"weapon,omitempty"`
	YieldMegatons *float64 `json:"yield_mt,omitempty"`

	// BurstHeight in meters overrides BurstType; BurstType names a strategy
	// resolved against the yield-scaled optimal heights; with neither, a
	// weapon preset's typical height applies, else a surface burst.
	BurstType   string   `json:"burst_type,omitempty"`
	BurstHeight *float64 `json:"burst_height_m,omitempty"`

	// City names a preset from the cities catalog; Population overrides it.
	City       string              `json:"city,omitempty"`
	Population *effects.Population `json:"population,omitempty"`

	WindSpeed float64 `json:"wind_speed_kmh"`
}

// Service runs calculations against loaded catalogs.
type Service struct {
	catalog   *catalog.Catalog
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
	rings     int
}

// New creates a Service. Pass a nil publisher to disable result publishing.
func New(cat *catalog.Catalog, pub Publisher, logger *slog.Logger, metrics *observability.Metrics, rings int) *Service {
	return &Service{
		catalog:   cat,
		publisher: pub,
		logger:    logger,
		metrics:   metrics,
		rings:     rings,
	}
}

// CheckReadiness reports whether the service can serve calculations.
func (s *Service) CheckReadiness(_ context.Context) error {
	if s.catalog == nil {
		return errors.New("catalogs not loaded")
	}
	return nil
}

// Calculate resolves the request to concrete parameters, runs the engine,
// and publishes the result if publishing is enabled. Publish failures are
// logged and counted but do not fail the calculation.
func (s *Service) Calculate(ctx context.Context, req Request) (effects.Result, error) {
	start := time.Now()

	det, pop, err := s.resolve(req)
	if err != nil {
		s.metrics.CalculationErrors.WithLabelValues(errorReason(err)).Inc()
		return effects.Result{}, err
	}

	res, err := effects.ComputeWithRings(det, pop, s.rings)
	if err != nil {
		s.metrics.CalculationErrors.WithLabelValues(errorReason(err)).Inc()
		return effects.Result{}, err
	}

	s.metrics.CalculationsTotal.Inc()
	s.metrics.CalculationDuration.Observe(time.Since(start).Seconds())

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, res); err != nil {
			s.metrics.PublishErrors.Inc()
			s.logger.Warn("result publish failed", "error", err, "result_id", res.ID)
		} else {
			s.metrics.ResultsPublished.Inc()
		}
	}

	return res, nil
}

// Weapons exposes the weapon catalog to the transport layer.
func (s *Service) Weapons() []catalog.Weapon { return s.catalog.Weapons() }

// Cities exposes the city catalog to the transport layer.
func (s *Service) Cities() []catalog.City { return s.catalog.Cities() }

// resolve turns catalog references and overrides into engine parameters.
func (s *Service) resolve(req Request) (effects.Detonation, effects.Population, error) {
	var (
		yield  float64
		height float64
		weapon catalog.Weapon
		found  bool
	)

	switch {
	case req.YieldMegatons != nil:
		yield = *req.YieldMegatons
	case req.Weapon != "":
		weapon, found = s.catalog.Weapon(req.Weapon)
		if !found {
			return effects.Detonation{}, effects.Population{}, fmt.Errorf("%w: %q", ErrUnknownWeapon, req.Weapon)
		}
		yield = weapon.YieldMegatons
	default:
		return effects.Detonation{}, effects.Population{}, ErrMissingYield
	}

	switch {
	case req.BurstHeight != nil:
		height = *req.BurstHeight
	case req.BurstType != "":
		var err error
		height, err = catalog.ResolveBurstHeight(catalog.BurstType(req.BurstType), yield)
		if err != nil {
			return effects.Detonation{}, effects.Population{}, err
		}
	case found && weapon.Airburst:
		height = weapon.TypicalHeight
	}

	var pop effects.Population
	switch {
	case req.Population != nil:
		pop = *req.Population
	case req.City != "":
		city, ok := s.catalog.City(req.City)
		if !ok {
			return effects.Detonation{}, effects.Population{}, fmt.Errorf("%w: %q", ErrUnknownCity, req.City)
		}
		pop = city.Population()
	default:
		return effects.Detonation{}, effects.Population{}, ErrMissingTarget
	}

	det, err := effects.NewDetonation(yield, height, req.WindSpeed)
	if err != nil {
		return effects.Detonation{}, effects.Population{}, err
	}
	return det, pop, nil
}

// errorReason maps resolution and engine errors to a metric label.
func errorReason(err error) string {
	switch {
	case errors.Is(err, effects.ErrInvalidYield):
		return "invalid_yield"
	case errors.Is(err, ErrUnknownWeapon):
		return "unknown_weapon"
	case errors.Is(err, ErrUnknownCity):
		return "unknown_city"
	default:
		return "bad_request"
	}
}
