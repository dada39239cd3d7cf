package service

import (
	"context"
	"time"

	"timeboard/internal/logger"
)

// DefaultFrameInterval is used when Run is given a non-positive tick.
const DefaultFrameInterval = 50 * time.Millisecond

// TickerService is the frame loop: it samples the clock and advances the
// countdown every tick.
type TickerService struct {
	countdown Countdown
	log       *logger.Logger
}

func NewTickerService(countdown Countdown, log *logger.Logger) *TickerService {
	if log == nil {
		log = logger.Nop()
	}
	return &TickerService{countdown: countdown, log: log}
}

// Run ticks at the given interval until ctx is canceled.
func (t *TickerService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = DefaultFrameInterval
	}
	tk := time.NewTicker(tick)
	defer tk.Stop()

	t.log.Debugw("frame_loop_started", "tick", tick)
	for {
		select {
		case <-ctx.Done():
			t.log.Debugw("frame_loop_stopped")
			return
		case now := <-tk.C:
			t.countdown.Advance(ctx, now)
		}
	}
}
