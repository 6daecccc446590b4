package session

import (
	"context"
	"sync"
	"time"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/srs"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultRetention  = 10 * time.Minute
	defaultPauseLimit = time.Hour
	recordTimeout     = 5 * time.Second
)

// Manager owns every live session. Terminal sessions stay reachable for the
// retention period so late presses are told the session is over.
type Manager struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	pomodoros map[int64]string
	listener  Listener

	rec       Recorder
	log       *zap.Logger
	now       func() time.Time
	afterFunc AfterFunc
	newID     func() string
	retention time.Duration
	pauseMax  time.Duration
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithAfterFunc replaces time.AfterFunc for deadlines.
func WithAfterFunc(f AfterFunc) Option {
	return func(m *Manager) { m.afterFunc = f }
}

// WithRetention sets how long terminal sessions stay reachable.
func WithRetention(d time.Duration) Option {
	return func(m *Manager) { m.retention = d }
}

// WithPauseLimit bounds how long a Pomodoro may stay paused before it is
// stopped. A non-positive d lets it stay paused indefinitely.
func WithPauseLimit(d time.Duration) Option {
	return func(m *Manager) { m.pauseMax = d }
}

func WithIDGenerator(f func() string) Option {
	return func(m *Manager) { m.newID = f }
}

func NewManager(rec Recorder, log *zap.Logger, opts ...Option) *Manager {
	m := &Manager{
		sessions:  make(map[string]*Session),
		pomodoros: make(map[int64]string),
		rec:       rec,
		log:       log,
		now:       time.Now,
		afterFunc: realAfterFunc,
		newID:     uuid.NewString,
		retention: defaultRetention,
		pauseMax:  defaultPauseLimit,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) SetListener(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listener = l
}

// Create starts a session in its initial state with a deadline timeout from
// now. Stores are untouched until the session reaches a terminal state.
func (m *Manager) Create(owner int64, kind Kind, payload Payload, timeout time.Duration) (*Session, error) {
	state, err := initialState(kind)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:        m.newID(),
		Owner:     owner,
		Kind:      kind,
		CreatedAt: m.now(),
		payload:   payload,
		state:     state,
	}

	m.mu.Lock()
	if kind == KindPomodoro {
		if _, busy := m.pomodoros[owner]; busy {
			m.mu.Unlock()
			return nil, ErrDuplicateSession
		}
		m.pomodoros[owner] = s.ID
	}
	m.sessions[s.ID] = s
	m.mu.Unlock()

	s.mu.Lock()
	m.arm(s, timeout)
	s.mu.Unlock()

	m.log.Debug("session created",
		zap.String("session_id", s.ID),
		zap.Stringer("kind", kind),
		zap.Int64("user_id", owner),
		zap.Duration("timeout", timeout),
	)

	return s, nil
}

// arm must be called with s.mu held.
func (m *Manager) arm(s *Session, d time.Duration) {
	s.stopTimer()
	gen := s.gen
	s.deadline = m.now().Add(d)
	s.remaining = d
	s.timer = m.afterFunc(d, func() { m.expire(s, gen) })
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// PendingAnswer finds the oldest open fill-in-the-blank session owned by
// owner in chatID: the session a plain chat message from owner answers.
func (m *Manager) PendingAnswer(owner, chatID int64) (*Session, bool) {
	m.mu.Lock()
	candidates := make([]*Session, 0, 1)
	for _, s := range m.sessions {
		if s.Kind == KindFillBlank && s.Owner == owner {
			candidates = append(candidates, s)
		}
	}
	m.mu.Unlock()

	var found *Session
	for _, s := range candidates {
		snap := s.Snapshot()
		if snap.State.Terminal() || snap.Payload.ChatID != chatID {
			continue
		}
		if found == nil || s.CreatedAt.Before(found.CreatedAt) {
			found = s
		}
	}
	return found, found != nil
}

// Active counts sessions that can still change state.
func (m *Manager) Active() int {
	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.mu.Unlock()

	n := 0
	for _, s := range all {
		if !s.State().Terminal() {
			n++
		}
	}
	return n
}

// Submit offers ev from actor to session id. Only the owner may act, and
// only while the session is not terminal. The store mutation of a terminal
// transition runs before the session lock is released, so concurrent
// submissions cannot both mutate.
func (m *Manager) Submit(ctx context.Context, id string, actor int64, ev Event) (Outcome, error) {
	s, ok := m.Get(id)
	if !ok {
		return Outcome{}, ErrNotFound
	}

	s.mu.Lock()
	out, terminal, err := m.apply(ctx, s, actor, ev)
	s.mu.Unlock()

	if terminal {
		m.finish(s)
	}
	if err != nil {
		m.log.Debug("session event rejected",
			zap.String("session_id", id),
			zap.Int64("actor", actor),
			zap.Error(err),
		)
	}
	return out, err
}

// Cancel stops a Pomodoro early. No statistics are recorded.
func (m *Manager) Cancel(ctx context.Context, id string, actor int64) (Outcome, error) {
	return m.Submit(ctx, id, actor, Event{Type: EventStop})
}

// Expire fires the deadline of session id now. It is a no-op for terminal
// or paused sessions.
func (m *Manager) Expire(id string) bool {
	s, ok := m.Get(id)
	if !ok {
		return false
	}
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()
	return m.expire(s, gen)
}

// Discard drops a session whose message never reached the user.
func (m *Manager) Discard(id string) {
	s, ok := m.Get(id)
	if !ok {
		return
	}
	s.mu.Lock()
	s.stopTimer()
	if !s.state.Terminal() {
		s.state = StateStopped
	}
	s.mu.Unlock()

	m.release(s)
	m.remove(id)
}

func (m *Manager) apply(ctx context.Context, s *Session, actor int64, ev Event) (Outcome, bool, error) {
	current := Outcome{State: s.state, Correct: s.correct, Card: s.payload.Card, Remaining: s.remaining}

	if actor != s.Owner {
		return current, false, ErrUnauthorized
	}
	if s.state == StateExpired {
		return current, false, ErrExpired
	}
	if s.state.Terminal() {
		return current, false, ErrAlreadyAnswered
	}

	switch s.Kind {
	case KindMultipleChoice, KindTrueFalse, KindFillBlank:
		return m.applyAnswer(ctx, s, ev)
	case KindFlashcardReveal, KindFlashcardRate:
		return m.applyFlashcard(ctx, s, ev)
	case KindPomodoro:
		return m.applyPomodoro(s, ev)
	default:
		return current, false, ErrUnknownKind
	}
}

func (m *Manager) applyAnswer(ctx context.Context, s *Session, ev Event) (Outcome, bool, error) {
	if ev.Type != EventAnswer {
		return Outcome{State: s.state}, false, ErrUnexpectedEvent
	}

	s.correct = Evaluate(s.Kind, s.payload.Correct, ev.Answer)
	s.state = StateAnswered
	s.stopTimer()

	if err := m.rec.RecordQuiz(ctx, s.Owner, s.payload.Topic, s.correct); err != nil {
		m.log.Warn("failed to record quiz result",
			zap.String("session_id", s.ID),
			zap.Int64("user_id", s.Owner),
			zap.Error(err),
		)
	}

	return Outcome{State: s.state, Correct: s.correct}, true, nil
}

func (m *Manager) applyFlashcard(ctx context.Context, s *Session, ev Event) (Outcome, bool, error) {
	switch {
	case ev.Type == EventReveal && s.state == StateAwaitingReveal:
		if s.Kind == KindFlashcardReveal {
			s.state = StateRevealed
			s.stopTimer()
			return Outcome{State: s.state, Card: s.payload.Card}, true, nil
		}
		s.state = StateAwaitingRating
		return Outcome{State: s.state, Card: s.payload.Card}, false, nil

	case ev.Type == EventReveal:
		return Outcome{State: s.state, Card: s.payload.Card}, false, ErrAlreadyAnswered

	case ev.Type == EventRate && s.state == StateAwaitingRating:
		difficulty, err := srs.ParseDifficulty(string(ev.Rating))
		if err != nil {
			return Outcome{State: s.state, Card: s.payload.Card}, false, ErrUnexpectedEvent
		}

		s.payload.Card = srs.Rate(s.payload.Card, difficulty, m.now())
		s.state = StateRated
		s.stopTimer()

		if err := m.rec.SaveReview(ctx, s.payload.Card); err != nil {
			m.log.Warn("failed to save flashcard review",
				zap.String("session_id", s.ID),
				zap.Int64("card_id", s.payload.Card.ID),
				zap.Error(err),
			)
		}
		return Outcome{State: s.state, Card: s.payload.Card}, true, nil

	default:
		return Outcome{State: s.state, Card: s.payload.Card}, false, ErrUnexpectedEvent
	}
}

// applyPomodoro pauses by disarming the deadline and keeping what was left;
// resuming re-arms it with the remainder. A pause that outlives the pause
// limit stops the timer.
func (m *Manager) applyPomodoro(s *Session, ev Event) (Outcome, bool, error) {
	switch ev.Type {
	case EventPause:
		if s.state == StateRunning {
			left := s.deadline.Sub(m.now())
			if left < 0 {
				left = 0
			}
			s.stopTimer()
			s.remaining = left
			s.state = StatePaused
			if m.pauseMax > 0 {
				gen := s.gen
				s.timer = m.afterFunc(m.pauseMax, func() { m.abandon(s, gen) })
			}
		} else {
			m.arm(s, s.remaining)
			s.state = StateRunning
		}
		return Outcome{State: s.state, Remaining: s.remaining}, false, nil

	case EventStop:
		s.stopTimer()
		s.state = StateStopped
		return Outcome{State: s.state}, true, nil

	default:
		return Outcome{State: s.state}, false, ErrUnexpectedEvent
	}
}

// expire is the deadline wakeup. It acts only if the session is still in
// the generation that armed it and has not reached a terminal state.
func (m *Manager) expire(s *Session, gen int) bool {
	s.mu.Lock()
	if gen != s.gen || s.state.Terminal() || s.state == StatePaused {
		s.mu.Unlock()
		return false
	}

	s.timer = nil
	completed := s.Kind == KindPomodoro
	if completed {
		s.state = StateCompleted
		s.remaining = 0

		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		if err := m.rec.RecordPomodoro(ctx, s.Owner); err != nil {
			m.log.Warn("failed to record pomodoro",
				zap.String("session_id", s.ID),
				zap.Int64("user_id", s.Owner),
				zap.Error(err),
			)
		}
		cancel()
	} else {
		s.state = StateExpired
	}
	s.mu.Unlock()

	m.finish(s)

	m.mu.Lock()
	l := m.listener
	m.mu.Unlock()

	if l != nil {
		snap := s.Snapshot()
		if completed {
			l.Completed(snap)
		} else {
			l.Expired(snap)
		}
	}
	return true
}

// abandon stops a Pomodoro left paused past the pause limit. No statistics
// are recorded; the listener is told through Expired.
func (m *Manager) abandon(s *Session, gen int) bool {
	s.mu.Lock()
	if gen != s.gen || s.state != StatePaused {
		s.mu.Unlock()
		return false
	}
	s.timer = nil
	s.state = StateStopped
	s.mu.Unlock()

	m.finish(s)

	m.mu.Lock()
	l := m.listener
	m.mu.Unlock()

	if l != nil {
		l.Expired(s.Snapshot())
	}
	return true
}

// finish frees the owner's Pomodoro slot and schedules the session's removal.
func (m *Manager) finish(s *Session) {
	m.release(s)

	if m.retention <= 0 {
		m.remove(s.ID)
		return
	}
	id := s.ID
	m.afterFunc(m.retention, func() { m.remove(id) })
}

func (m *Manager) release(s *Session) {
	if s.Kind != KindPomodoro {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pomodoros[s.Owner] == s.ID {
		delete(m.pomodoros, s.Owner)
	}
}

func (m *Manager) remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
