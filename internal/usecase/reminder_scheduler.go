package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"
	"gestion_oficina/pkg/clock"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultReminderPollInterval = time.Minute
	reminderTickLockKey         = "reminders:tick"
)

// ShouldFireReminder reports whether evento's reminder is due at now: it has a
// lead time, has not fired yet and now lies inside
// [fechaEvento - lead, fechaEvento]. Past eventos never fire.
func ShouldFireReminder(e entities.Evento, now time.Time) bool {
	if e.RecordatorioMostrado || e.RecordatorioHorasAntes <= 0 {
		return false
	}
	return !now.Before(e.ReminderWindowStart()) && !now.After(e.FechaEvento)
}

// ReminderScheduler polls eventos and fires each reminder at most once.
// At most one polling loop runs per scheduler; Start and Stop may be called
// any number of times.
type ReminderScheduler struct {
	eventos  interfaces.IEventoRepository
	notifier interfaces.INotifier
	locker   interfaces.ILocker
	clock    clock.Clock
	interval time.Duration
	logger   logrus.FieldLogger
	tracer   trace.Tracer

	mu       sync.Mutex
	stopped  *sync.Cond
	cancel   context.CancelFunc
	done     chan struct{}
	stopping bool
}

func NewReminderScheduler(eventos interfaces.IEventoRepository, notifier interfaces.INotifier, locker interfaces.ILocker, clk clock.Clock, interval time.Duration, logger logrus.FieldLogger) *ReminderScheduler {
	if interval <= 0 {
		interval = DefaultReminderPollInterval
	}
	s := &ReminderScheduler{
		eventos:  eventos,
		notifier: notifier,
		locker:   locker,
		clock:    clk,
		interval: interval,
		logger:   logger,
		tracer:   otel.Tracer("gestion_oficina/reminders"),
	}
	s.stopped = sync.NewCond(&s.mu)
	return s
}

// Start launches the polling loop and reports whether it did; a second Start
// while running is a no-op. A Start during Stop waits for the old loop to
// exit first. The loop ends when ctx is cancelled or Stop is called.
func (s *ReminderScheduler) Start(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.stopping {
		s.stopped.Wait()
	}
	if s.cancel != nil {
		return false
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel, s.done = cancel, done
	go s.loop(ctx, done)

	s.logger.WithField("interval", s.interval.String()).Info("[reminder][scheduler] started")
	return true
}

// Stop cancels the loop and waits for it to exit. No reminder fires after Stop
// returns.
func (s *ReminderScheduler) Stop() {
	s.mu.Lock()
	for s.stopping {
		s.stopped.Wait()
	}
	cancel, done := s.cancel, s.done
	if cancel == nil {
		s.mu.Unlock()
		return
	}
	s.stopping = true
	s.mu.Unlock()

	cancel()
	<-done

	s.mu.Lock()
	s.cancel, s.done, s.stopping = nil, nil, false
	s.stopped.Broadcast()
	s.mu.Unlock()
	s.logger.Info("[reminder][scheduler] stopped")
}

func (s *ReminderScheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

func (s *ReminderScheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.Tick(ctx); err != nil && ctx.Err() == nil {
			s.logger.WithError(err).Error("[reminder][scheduler] tick failed")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Tick evaluates every evento once and returns how many reminders fired.
// When another instance holds the tick lock the tick is skipped.
func (s *ReminderScheduler) Tick(ctx context.Context) (fired int, err error) {
	ctx, span := s.tracer.Start(ctx, "reminders.Tick")
	defer func() {
		span.SetAttributes(attribute.Int("reminders.fired", fired))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	release, err := s.locker.Obtain(ctx, reminderTickLockKey, s.interval, 0)
	if errors.Is(err, interfaces.ErrLockNotObtained) {
		s.logger.Debug("[reminder][scheduler] tick lock held elsewhere, skipping")
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	defer release()

	eventos, err := s.eventos.List(ctx)
	if err != nil {
		return 0, err
	}

	now := s.clock.Now()
	for _, e := range eventos {
		if ctx.Err() != nil {
			return fired, ctx.Err()
		}
		if !ShouldFireReminder(e, now) {
			continue
		}
		log := s.logger.WithFields(logrus.Fields{"evento_id": e.ID, "fecha_evento": e.FechaEvento})

		if err := s.notifier.Remind(ctx, e); err != nil {
			log.WithError(err).Warn("[reminder][scheduler] notify failed, evento stays pending")
			continue
		}
		flipped, err := s.eventos.MarkReminderShown(ctx, e.ID)
		if err != nil {
			log.WithError(err).Error("[reminder][scheduler] mark shown failed")
			continue
		}
		if flipped {
			fired++
			log.Info("[reminder][scheduler] reminder fired")
		}
	}
	return fired, nil
}
