package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"iis_schedule/cache"
	"iis_schedule/config"
	"iis_schedule/errs"
	"iis_schedule/model"
)

// Fetcher downloads the raw schedule of a group or loads it from the raw cache.
type Fetcher struct {
	url       string
	userAgent string
	client    *http.Client
	store     *cache.Store
	logger    *zap.Logger
}

func New(cfg *config.Config, client *http.Client, logger *zap.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: cfg.HTTP.Timeout}
	}
	return &Fetcher{
		url:       cfg.ScheduleURL(),
		userAgent: cfg.HTTP.UserAgent,
		client:    client,
		store:     cache.NewStore(cfg.RawCachePath),
		logger:    logger,
	}
}

// Fetch returns the raw schedule. With forceRefresh the API is queried and the raw cache
// is overwritten, otherwise the raw cache is read.
func (f *Fetcher) Fetch(ctx context.Context, forceRefresh bool) (*model.RawSchedule, error) {
	if !forceRefresh {
		return f.load()
	}

	body, err := f.download(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := model.DecodeRawSchedule(body)
	if err != nil {
		return nil, err
	}
	if err := f.store.WriteRaw(body); err != nil {
		return nil, fmt.Errorf("write %s: %w", f.store.Path(), err)
	}
	f.logger.Info("raw schedule saved",
		zap.String("path", f.store.Path()),
		zap.Int("days", len(raw.Schedules)),
	)
	return raw, nil
}

func (f *Fetcher) download(ctx context.Context) ([]byte, error) {
	fetchID := uuid.New().String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, &errs.NetworkError{URL: f.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", fetchID)
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("schedule request failed", zap.String("fetch_id", fetchID), zap.Error(err))
		return nil, &errs.NetworkError{URL: f.url, Err: err}
	}
	defer resp.Body.Close()

	f.logger.Debug("schedule response",
		zap.String("fetch_id", fetchID),
		zap.String("url", f.url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, &errs.StatusError{URL: f.url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errs.NetworkError{URL: f.url, Err: err}
	}
	return body, nil
}

func (f *Fetcher) load() (*model.RawSchedule, error) {
	body, err := f.store.Read()
	if err != nil {
		return nil, err
	}
	raw, err := model.DecodeRawSchedule(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.store.Path(), err)
	}
	f.logger.Debug("raw schedule loaded from cache", zap.String("path", f.store.Path()))
	return raw, nil
}
