package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent describes one finished tree use case.
type UseCaseEvent struct {
	Name string
	// BoxID is the box the use case acted on, empty for Save.
	BoxID string
	// NodeID is the node created, moved or removed.
	NodeID string
	// NodeCount is the number of stored nodes written, moved or deleted.
	NodeCount int
	StartedAt time.Time
	Duration  time.Duration
	Err       error
}

func (e UseCaseEvent) Success() bool { return e.Err == nil }

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes one "tree_use_case" line per event to w.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, e UseCaseEvent) {
	attrs := []slog.Attr{
		slog.String("use_case", e.Name),
		slog.Int64("duration_ms", e.Duration.Milliseconds()),
		slog.Bool("success", e.Success()),
		slog.Int("node_count", e.NodeCount),
	}
	if e.BoxID != "" {
		attrs = append(attrs, slog.String("box_id", e.BoxID))
	}
	if e.NodeID != "" {
		attrs = append(attrs, slog.String("node_id", e.NodeID))
	}

	level := slog.LevelInfo
	if e.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	o.logger.LogAttrs(ctx, level, "tree_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

func startUseCase(name, boxID string) UseCaseEvent {
	return UseCaseEvent{Name: name, BoxID: boxID, StartedAt: time.Now().UTC()}
}

// finish stamps the duration and outcome on e and hands it to obs.
func finish(ctx context.Context, obs UseCaseObserver, e UseCaseEvent, err error) {
	e.Duration = time.Since(e.StartedAt)
	e.Err = err
	obs.ObserveUseCase(ctx, e)
}
