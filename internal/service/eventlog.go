package service

import (
	"context"
	"fmt"
	"strings"

	"timeboard/internal/models"
	"timeboard/internal/repository"
)

const maxLogLimit = 1000

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

// eventQuery turns a log filter into a repository query: bounds move to UTC,
// the type must name a lifecycle event and the limit is capped.
func eventQuery(f LogFilter) (repository.EventQuery, error) {
	q := repository.EventQuery{
		From:  f.From,
		To:    f.To,
		Type:  strings.ToUpper(strings.TrimSpace(f.Type)),
		Key:   strings.TrimSpace(f.Key),
		Limit: f.Limit,
	}
	if !q.From.IsZero() {
		q.From = q.From.UTC()
	}
	if !q.To.IsZero() {
		q.To = q.To.UTC()
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
		return repository.EventQuery{}, ErrInvalidTimeRange
	}
	if q.Type != "" && !models.IsEventType(q.Type) {
		return repository.EventQuery{}, fmt.Errorf("%w: %q", ErrUnknownEventType, f.Type)
	}
	switch {
	case q.Limit < 0:
		return repository.EventQuery{}, ErrInvalidLimit
	case q.Limit > maxLogLimit:
		q.Limit = maxLogLimit
	}
	return q, nil
}

// List returns timer events matching f, oldest first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.TimerEvent, error) {
	q, err := eventQuery(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, q)
}

// CountByType tallies events per lifecycle type. Every known type is present,
// zero when absent.
func CountByType(events []models.TimerEvent) map[string]int {
	out := make(map[string]int, len(models.EventTypes))
	for _, t := range models.EventTypes {
		out[t] = 0
	}
	for _, e := range events {
		out[e.Type]++
	}
	return out
}
