package scheduler

import (
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

var (
	// ErrInvalidInterval возвращается при неположительном интервале задачи
	ErrInvalidInterval = errors.New("scheduler: interval must be positive")
)

const sessionSweepJob = "session-sweep"

// SessionStore хранилище сессий, очищаемое по таймауту неактивности
type SessionStore interface {
	Sweep(idle time.Duration) int
	Count() int
}

// LimiterStore ограничители частоты запросов по сессиям
type LimiterStore interface {
	Sweep(idle time.Duration) int
}

// Metrics интерфейс метрик сессий
type Metrics interface {
	SetActiveSessions(n int)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры периодической очистки
type Config struct {
	SweepInterval time.Duration
	IdleTimeout   time.Duration
}

// Service периодически удаляет неактивные сессии и их ограничители
type Service struct {
	scheduler gocron.Scheduler
	sessions  SessionStore
	limiters  LimiterStore
	metrics   Metrics
	cfg       Config
	logger    Logger

	stopOnce sync.Once
	stopErr  error
}

// New создает планировщик и регистрирует задачу очистки сессий. limiters может быть nil.
func New(sessions SessionStore, limiters LimiterStore, metrics Metrics, cfg Config, logger Logger) (*Service, error) {
	if cfg.SweepInterval <= 0 || cfg.IdleTimeout <= 0 {
		return nil, ErrInvalidInterval
	}

	s := &Service{
		sessions: sessions,
		limiters: limiters,
		metrics:  metrics,
		cfg:      cfg,
		logger:   logger,
	}

	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					logger.Error("Scheduler: job %s (%s) panicked: %v", jobName, jobID, recoverData)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(cfg.SweepInterval),
		gocron.NewTask(s.SweepSessions),
		gocron.WithName(sessionSweepJob),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, err
	}

	s.scheduler = sched
	return s, nil
}

// Start запускает задачи
func (s *Service) Start() {
	s.logger.Info("Scheduler: starting, session sweep every %s (idle timeout %s)", s.cfg.SweepInterval, s.cfg.IdleTimeout)
	s.scheduler.Start()
}

// Stop останавливает планировщик. Повторный вызов возвращает результат первого.
func (s *Service) Stop() error {
	s.stopOnce.Do(func() {
		s.logger.Info("Scheduler: stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}

// SweepSessions удаляет неактивные сессии и обновляет метрику живых сессий
func (s *Service) SweepSessions() {
	removed := s.sessions.Sweep(s.cfg.IdleTimeout)
	if s.limiters != nil {
		s.limiters.Sweep(s.cfg.IdleTimeout)
	}

	active := s.sessions.Count()
	if s.metrics != nil {
		s.metrics.SetActiveSessions(active)
	}

	if removed > 0 {
		s.logger.Info("Scheduler: swept %d idle sessions, %d active", removed, active)
	}
}
