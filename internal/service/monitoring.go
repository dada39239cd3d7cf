package service

import (
	"context"
	"time"

	"timeboard/internal/models"
)

type MonitoringService struct {
	session *Session
}

func NewMonitoringService(session *Session) *MonitoringService {
	return &MonitoringService{session: session}
}

// GetState returns the live countdown, panel and board state.
func (m *MonitoringService) GetState(ctx context.Context) (models.TimerState, error) {
	if err := ctx.Err(); err != nil {
		return models.TimerState{}, err
	}
	st := m.session.State()
	st.UpdatedAt = toUTC(st.UpdatedAt)
	return st, nil
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
