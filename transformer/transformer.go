package transformer

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"iis_schedule/cache"
	"iis_schedule/errs"
	"iis_schedule/model"
)

// Transformer regroups a raw schedule by week and day and stores the result.
type Transformer struct {
	days   model.DayOrder
	store  *cache.Store
	logger *zap.Logger
}

func New(days model.DayOrder, parsedCachePath string, logger *zap.Logger) *Transformer {
	return &Transformer{
		days:   days,
		store:  cache.NewStore(parsedCachePath),
		logger: logger,
	}
}

// Transform returns nil without error when raw is nil or has no days.
func (t *Transformer) Transform(raw *model.RawSchedule) (*model.ParsedSchedule, error) {
	if raw == nil || len(raw.Schedules) == 0 {
		t.logger.Debug("raw schedule is empty, nothing to parse")
		return nil, nil
	}

	days, err := t.sortDays(maps.Keys(raw.Schedules))
	if err != nil {
		return nil, err
	}

	parsed := model.NewParsedSchedule()
	count := 0
	for _, day := range days {
		for _, lesson := range raw.Schedules[day] {
			for _, n := range lesson.WeekNumber {
				week := parsed.Week(n)
				if week == nil {
					return nil, &errs.WeekRangeError{Day: day, Week: n}
				}
				week.Append(day, lesson.Project())
				count++
			}
		}
	}

	if err := t.store.WriteJSON(parsed); err != nil {
		return nil, fmt.Errorf("write %s: %w", t.store.Path(), err)
	}
	t.logger.Info("parsed schedule saved",
		zap.String("path", t.store.Path()),
		zap.Int("days", len(days)),
		zap.Int("entries", count),
	)
	return parsed, nil
}

func (t *Transformer) sortDays(days []string) ([]string, error) {
	for _, d := range days {
		if _, ok := t.days.Rank(d); !ok {
			return nil, &errs.UnknownDayError{Day: d}
		}
	}
	slices.SortFunc(days, func(a, b string) int {
		return t.days[a] - t.days[b]
	})
	return days, nil
}
