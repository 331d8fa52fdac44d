package schedule

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"iis_schedule/cache"
	"iis_schedule/model"
)

type RawFetcher interface {
	Fetch(ctx context.Context, forceRefresh bool) (*model.RawSchedule, error)
}

type RawTransformer interface {
	Transform(raw *model.RawSchedule) (*model.ParsedSchedule, error)
}

// Service returns the parsed schedule, from the network or from the caches.
type Service struct {
	fetcher     RawFetcher
	transformer RawTransformer
	parsed      *cache.Store
	logger      *zap.Logger
}

func NewService(fetcher RawFetcher, transformer RawTransformer, parsedCachePath string, logger *zap.Logger) *Service {
	return &Service{
		fetcher:     fetcher,
		transformer: transformer,
		parsed:      cache.NewStore(parsedCachePath),
		logger:      logger,
	}
}

// GetAndParse fetches and parses the schedule when forceRefresh is set. Otherwise the
// stored parsed schedule is returned as is, or re-derived from the raw cache when there is none.
// A nil schedule without an error means the raw document had no days.
func (s *Service) GetAndParse(ctx context.Context, forceRefresh bool) (*model.ParsedSchedule, error) {
	parsed, err := s.getAndParse(ctx, forceRefresh)
	if err != nil {
		return nil, fmt.Errorf("get and parse schedule: %w", err)
	}
	return parsed, nil
}

func (s *Service) getAndParse(ctx context.Context, forceRefresh bool) (*model.ParsedSchedule, error) {
	if !forceRefresh {
		ok, err := s.parsed.Exists()
		if err != nil {
			return nil, err
		}
		if ok {
			var parsed model.ParsedSchedule
			if err := s.parsed.ReadJSON(&parsed); err != nil {
				return nil, err
			}
			s.logger.Debug("parsed schedule loaded from cache", zap.String("path", s.parsed.Path()))
			return &parsed, nil
		}
		s.logger.Debug("no parsed schedule cached, deriving from raw cache")
	}

	raw, err := s.fetcher.Fetch(ctx, forceRefresh)
	if err != nil {
		return nil, err
	}
	parsed, err := s.transformer.Transform(raw)
	if err != nil {
		return nil, err
	}
	if parsed == nil {
		// an older parsed cache would outlive the empty raw document
		if err := s.parsed.Remove(); err != nil {
			return nil, err
		}
		s.logger.Info("raw schedule is empty, parsed cache removed", zap.String("path", s.parsed.Path()))
	}
	return parsed, nil
}
