package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
)

// MaxPendingNotices сколько уведомлений хранится до показа; старые вытесняются
const MaxPendingNotices = 5

type entry struct {
	state    *domain.PageState
	notices  []domain.Notice
	lastSeen time.Time
}

// Repository хранит состояние страницы каждого посетителя в памяти.
// Операции над одной сессией выполняются последовательно под общим мьютексом.
type Repository struct {
	mu       sync.Mutex
	sessions map[string]*entry
	clock    Clock
}

// NewRepository создает пустое хранилище сессий
func NewRepository() *Repository {
	return NewRepositoryWithClock(realClock{})
}

// NewRepositoryWithClock создает хранилище с заданным источником времени
func NewRepositoryWithClock(clock Clock) *Repository {
	return &Repository{
		sessions: make(map[string]*entry),
		clock:    clock,
	}
}

// Ensure создает сессию с начальным состоянием, если ее еще нет.
// Возвращает true, если сессия была создана.
func (r *Repository) Ensure(ctx context.Context, id string, today domain.Day) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if id == "" {
		return false, ErrEmptySessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.sessions[id]; ok {
		e.lastSeen = r.clock.Now()
		return false, nil
	}

	r.sessions[id] = &entry{
		state:    domain.NewPageState(today),
		lastSeen: r.clock.Now(),
	}
	return true, nil
}

// Snapshot возвращает копию состояния страницы
func (r *Repository) Snapshot(ctx context.Context, id string) (*domain.PageState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.get(id)
	if err != nil {
		return nil, err
	}
	return e.state.Clone(), nil
}

// Update выполняет fn над состоянием сессии под блокировкой.
// Если fn вернула ошибку, изменения откатываются.
func (r *Repository) Update(ctx context.Context, id string, fn func(state *domain.PageState) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.get(id)
	if err != nil {
		return err
	}

	working := e.state.Clone()
	if err := fn(working); err != nil {
		return err
	}
	e.state = working
	return nil
}

// PushNotice добавляет уведомление для показа при следующей отрисовке
func (r *Repository) PushNotice(ctx context.Context, id string, notice domain.Notice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.get(id)
	if err != nil {
		return err
	}

	e.notices = append(e.notices, notice)
	if len(e.notices) > MaxPendingNotices {
		e.notices = e.notices[len(e.notices)-MaxPendingNotices:]
	}
	return nil
}

// PopNotices возвращает накопленные уведомления и очищает очередь
func (r *Repository) PopNotices(ctx context.Context, id string) ([]domain.Notice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.get(id)
	if err != nil {
		return nil, err
	}

	notices := e.notices
	e.notices = nil
	return notices, nil
}

// Sweep удаляет сессии, неактивные дольше idle. Возвращает число удаленных.
func (r *Repository) Sweep(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	threshold := r.clock.Now().Add(-idle)
	removed := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(threshold) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Count возвращает число живых сессий
func (r *Repository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// get должен вызываться под r.mu
func (r *Repository) get(id string) (*entry, error) {
	if id == "" {
		return nil, ErrEmptySessionID
	}
	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	e.lastSeen = r.clock.Now()
	return e, nil
}
