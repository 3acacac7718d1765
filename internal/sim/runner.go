// Package sim replays a build plan in wall-clock time: one goroutine per
// elf, builds sequential within an elf, all elves in parallel.
package sim

import (
	"context"
	"sync"
	"time"

	"github.com/Hakim-Mulumba/Santa-Toy-Workshop/internal/domain"
)

type EventType string

const (
	EventStart  EventType = "start"
	EventFinish EventType = "finish"
)

// Event reports one elf starting or finishing a build. Minute is the
// simulated workshop minute, not wall time.
type Event struct {
	Type    EventType `json:"type"`
	ElfName string    `json:"elf"`
	ToyName string    `json:"toy"`
	OrderID string    `json:"order_id"`
	Minute  int       `json:"minute"`
}

// DefaultPerMinute compresses one simulated minute into 100ms of wall time,
// ten simulated minutes per wall second.
const DefaultPerMinute = 100 * time.Millisecond

type Runner struct {
	perMinute time.Duration
}

// NewRunner builds a runner that sleeps perMinute of wall time for each
// simulated build minute. Zero or negative means no sleeping, which is what
// tests want.
func NewRunner(perMinute time.Duration) *Runner {
	if perMinute < 0 {
		perMinute = 0
	}
	return &Runner{perMinute: perMinute}
}

// Run replays the schedules and emits events until every build finished or
// ctx is cancelled. The returned channel is closed when the run is over.
func (r *Runner) Run(ctx context.Context, schedules []domain.ElfSchedule) <-chan Event {
	events := make(chan Event)

	go func() {
		defer close(events)

		var wg sync.WaitGroup
		for _, schedule := range schedules {
			wg.Add(1)
			go func(schedule domain.ElfSchedule) {
				defer wg.Done()
				r.runElf(ctx, schedule, events)
			}(schedule)
		}
		wg.Wait()
	}()

	return events
}

func (r *Runner) runElf(ctx context.Context, schedule domain.ElfSchedule, events chan<- Event) {
	for _, slot := range schedule.Slots {
		if !emit(ctx, events, Event{
			Type:    EventStart,
			ElfName: schedule.ElfName,
			ToyName: slot.ToyName,
			OrderID: slot.OrderID,
			Minute:  slot.StartMinute,
		}) {
			return
		}

		if !sleep(ctx, time.Duration(slot.FinishMinute-slot.StartMinute)*r.perMinute) {
			return
		}

		if !emit(ctx, events, Event{
			Type:    EventFinish,
			ElfName: schedule.ElfName,
			ToyName: slot.ToyName,
			OrderID: slot.OrderID,
			Minute:  slot.FinishMinute,
		}) {
			return
		}
	}
}

func emit(ctx context.Context, events chan<- Event, ev Event) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
