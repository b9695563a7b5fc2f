package engine

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ecoquest/internal/storage"
)

// Service owns the session's GameState. Every mutation replaces the state
// first and persists it second; a failed save is reported as a
// *PersistenceError while the in-memory state stays current.
type Service struct {
	slots *storage.SlotRepo
	key   string
	log   *zap.Logger
	now   func() time.Time

	state GameState
	// loadErr blocks writes until a Load succeeds, so an unreadable slot is never overwritten.
	loadErr error
	// dirty is set while memory holds changes the slot does not.
	dirty bool
}

type Option func(*Service)

// WithClock sets the source of "today". Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSlotKey stores the state under a different slot.
func WithSlotKey(key string) Option {
	return func(s *Service) {
		if key != "" {
			s.key = key
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		slots: storage.NewSlotRepo(db),
		key:   storage.MainSlotKey,
		log:   zap.NewNop(),
		now:   time.Now,
		state: NewGameState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) SlotRepo() *storage.SlotRepo { return s.slots }
func (s *Service) SlotKey() string             { return s.key }

// CorruptSlotKey holds the last payload that could not be decoded.
func (s *Service) CorruptSlotKey() string { return s.key + ".corrupt" }

// Dirty reports whether the last save failed and memory is ahead of the slot.
func (s *Service) Dirty() bool { return s.dirty }

// Today is the current calendar day according to the service clock.
func (s *Service) Today() Day { return DayOf(s.now()) }

// Now is the service clock.
func (s *Service) Now() time.Time { return s.now() }

// State returns a copy of the current state.
func (s *Service) State() GameState { return s.state.Clone() }

// Load reads the slot into memory and rolls the day over. A missing or
// undecodable slot yields a fresh state. A storage failure keeps the current
// state and blocks every write until a later Load succeeds.
func (s *Service) Load(ctx context.Context) error {
	today := s.Today()
	slot, err := s.slots.Read(ctx, s.key)
	if err != nil {
		s.log.Error("state load failed, writes disabled", zap.String("slot", s.key), zap.Error(err))
		s.loadErr = err
		return &PersistenceError{Op: "load", Err: err}
	}
	s.loadErr = nil
	s.dirty = false
	if slot == nil {
		s.log.Debug("no saved state, starting fresh", zap.String("slot", s.key))
		s.state = NewGameState()
		return nil
	}

	st, err := DecodeState(slot.Value)
	if err != nil {
		s.log.Warn("saved state unreadable, starting fresh",
			zap.String("slot", s.key),
			zap.String("kept_as", s.CorruptSlotKey()),
			zap.Int("bytes", len(slot.Value)),
			zap.Error(err),
		)
		if err := s.slots.Write(ctx, s.CorruptSlotKey(), slot.Value); err != nil {
			s.loadErr = err
			return &PersistenceError{Op: "load", Err: fmt.Errorf("keep unreadable state: %w", err)}
		}
		st = NewGameState()
	}
	s.state = RolloverDay(st, today)
	s.log.Debug("state loaded",
		zap.String("slot", s.key),
		zap.Int("points", s.state.Points),
		zap.Int("habits", len(s.state.ActiveHabits)),
		zap.String("today", today.String()),
	)
	return nil
}

// Save writes the current state to the slot.
func (s *Service) Save(ctx context.Context) error {
	if err := s.writable(); err != nil {
		return err
	}
	data, err := EncodeState(s.state)
	if err != nil {
		s.log.Error("state encode failed", zap.Error(err))
		return &PersistenceError{Op: "save", Err: err}
	}
	if err := s.slots.Write(ctx, s.key, data); err != nil {
		s.log.Error("state save failed", zap.String("slot", s.key), zap.Error(err))
		s.dirty = true
		return &PersistenceError{Op: "save", Err: err}
	}
	s.dirty = false
	s.log.Debug("state saved", zap.String("slot", s.key), zap.Int("bytes", len(data)))
	return nil
}

func (s *Service) writable() error {
	if s.loadErr == nil {
		return nil
	}
	return &PersistenceError{Op: "save", Err: fmt.Errorf("%w: %v", ErrSlotUnreadable, s.loadErr)}
}

// Refresh brings the session up to date. Unsaved changes are retried rather
// than replaced by the older slot; either way the day is rolled over.
func (s *Service) Refresh(ctx context.Context) error {
	if !s.dirty || s.loadErr != nil {
		return s.Load(ctx)
	}
	s.state = RolloverDay(s.state, s.Today())
	return s.Save(ctx)
}

func (s *Service) commit(ctx context.Context, next GameState) error {
	s.state = next
	return s.Save(ctx)
}

func (s *Service) AdoptHabit(ctx context.Context, templateID int) (TrackedHabit, error) {
	if err := s.writable(); err != nil {
		return TrackedHabit{}, err
	}
	next, err := AdoptHabit(s.state, templateID)
	if err != nil {
		return TrackedHabit{}, err
	}
	h, _ := next.Habit(templateID)
	s.log.Info("habit adopted", zap.Int("habit_id", templateID), zap.String("name", h.Name))
	return h, s.commit(ctx, next)
}

func (s *Service) AdoptCustomHabit(ctx context.Context, in CustomHabitInput) (TrackedHabit, error) {
	if err := s.writable(); err != nil {
		return TrackedHabit{}, err
	}
	next, id, err := AdoptCustomHabit(s.state, in)
	if err != nil {
		return TrackedHabit{}, err
	}
	h, _ := next.Habit(id)
	s.log.Info("custom habit added",
		zap.Int("habit_id", id),
		zap.String("name", h.Name),
		zap.Float64("impact_kg", h.ImpactKg),
		zap.Int("base_points", h.BasePoints),
	)
	return h, s.commit(ctx, next)
}

// RemoveHabit reports whether a habit was removed. Nothing is saved when it was not tracked.
func (s *Service) RemoveHabit(ctx context.Context, id int) (bool, error) {
	if err := s.writable(); err != nil {
		return false, err
	}
	next, removed := RemoveHabit(s.state, id)
	if !removed {
		return false, nil
	}
	s.log.Info("habit removed", zap.Int("habit_id", id))
	return true, s.commit(ctx, next)
}

func (s *Service) CompleteHabit(ctx context.Context, id int) (*CompleteResult, error) {
	if err := s.writable(); err != nil {
		return nil, err
	}
	next, res, err := CompleteHabit(s.state, id, s.Today())
	if err != nil {
		return nil, err
	}
	if res.Status == CompletionAlreadyDone {
		return &res, nil
	}
	s.log.Info("habit completed",
		zap.Int("habit_id", id),
		zap.Int("points", res.PointsAwarded),
		zap.Int("streak", res.Streak),
		zap.Bool("level_up", res.LevelUp),
	)
	return &res, s.commit(ctx, next)
}

func (s *Service) SetWeeklyGoal(ctx context.Context, id int, goal int) error {
	if err := s.writable(); err != nil {
		return err
	}
	next, err := SetWeeklyGoal(s.state, id, goal)
	if err != nil {
		return err
	}
	return s.commit(ctx, next)
}

func (s *Service) ResetWeeklyProgress(ctx context.Context) error {
	if err := s.writable(); err != nil {
		return err
	}
	s.log.Info("weekly progress reset")
	return s.commit(ctx, ResetWeeklyProgress(s.state))
}

// ResetAll discards every habit and all progress.
func (s *Service) ResetAll(ctx context.Context) error {
	if err := s.writable(); err != nil {
		return err
	}
	s.log.Warn("full progress reset", zap.String("slot", s.key))
	return s.commit(ctx, NewGameState())
}

// Export returns the current state as a persisted document.
func (s *Service) Export() ([]byte, error) {
	return EncodeState(s.state)
}

// Import replaces the current state with a document from another save
// (including a browser export). Validation happens before anything changes.
func (s *Service) Import(ctx context.Context, data []byte) error {
	if err := s.writable(); err != nil {
		return err
	}
	if err := storage.ValidateDocument(data); err != nil {
		return ValidationError{Field: "import", Reason: err.Error()}
	}
	st, err := DecodeState(data)
	if err != nil {
		return ValidationError{Field: "import", Reason: fmt.Sprintf("decode: %v", err)}
	}
	s.log.Info("state imported", zap.Int("habits", len(st.ActiveHabits)), zap.Int("points", st.Points))
	return s.commit(ctx, RolloverDay(st, s.Today()))
}
