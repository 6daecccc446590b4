// Package session runs the interactive exchanges behind quizzes, flashcard
// reviews and Pomodoro timers.
//
// A Session belongs to the user who started it and accepts exactly one
// terminal event: a matching answer, a rating, a stop, or its deadline.
// Whatever wins first applies the store mutation for that session; every
// later attempt is rejected without side effects.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/models"
	"github.com/cold-cofffeee/Nibxi-Ai-Discord-BOT/internal/srs"
)

// Errors returned by Manager for rejected events.
var (
	ErrNotFound         = errors.New("session not found")
	ErrUnauthorized     = errors.New("session belongs to another user")
	ErrAlreadyAnswered  = errors.New("session already answered")
	ErrExpired          = errors.New("session expired")
	ErrDuplicateSession = errors.New("an active session of this kind already exists")
	ErrUnexpectedEvent  = errors.New("event does not apply to this session")
	ErrUnknownKind      = errors.New("unknown session kind")
)

// Kind selects the transition rules a session follows.
type Kind int

const (
	KindMultipleChoice Kind = iota + 1
	KindTrueFalse
	KindFillBlank
	KindFlashcardReveal
	KindFlashcardRate
	KindPomodoro
)

func (k Kind) String() string {
	switch k {
	case KindMultipleChoice:
		return "quiz-multiple-choice"
	case KindTrueFalse:
		return "quiz-true-false"
	case KindFillBlank:
		return "quiz-fill-blank"
	case KindFlashcardReveal:
		return "flashcard-reveal"
	case KindFlashcardRate:
		return "flashcard-rate"
	case KindPomodoro:
		return "pomodoro"
	default:
		return "unknown"
	}
}

// IsQuiz reports whether answers to k are scored into QuizStats.
func (k Kind) IsQuiz() bool {
	return k == KindMultipleChoice || k == KindTrueFalse || k == KindFillBlank
}

// State is where a session is in its lifecycle.
type State int

const (
	StateAwaitingResponse State = iota + 1
	StateAnswered
	StateExpired
	StateAwaitingReveal
	StateRevealed
	StateAwaitingRating
	StateRated
	StateRunning
	StatePaused
	StateCompleted
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateAwaitingResponse:
		return "awaiting-response"
	case StateAnswered:
		return "answered"
	case StateExpired:
		return "expired"
	case StateAwaitingReveal:
		return "awaiting-reveal"
	case StateRevealed:
		return "revealed"
	case StateAwaitingRating:
		return "awaiting-rating"
	case StateRated:
		return "rated"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further event can change a session in s.
func (s State) Terminal() bool {
	switch s {
	case StateAnswered, StateExpired, StateRevealed, StateRated, StateCompleted, StateStopped:
		return true
	default:
		return false
	}
}

func initialState(k Kind) (State, error) {
	switch k {
	case KindMultipleChoice, KindTrueFalse, KindFillBlank:
		return StateAwaitingResponse, nil
	case KindFlashcardReveal, KindFlashcardRate:
		return StateAwaitingReveal, nil
	case KindPomodoro:
		return StateRunning, nil
	default:
		return 0, ErrUnknownKind
	}
}

// Payload is the kind-specific data a session carries. Quiz kinds use
// Topic, Question, Options and Correct; flashcard kinds use Card; Pomodoro
// uses Duration. ChatID is the chat the exchange takes place in.
type Payload struct {
	ChatID   int64
	Topic    string
	Question string
	Options  []string
	Correct  string
	Card     models.Flashcard
	Duration time.Duration
}

// EventType names what an actor did to a session.
type EventType int

const (
	EventAnswer EventType = iota + 1
	EventReveal
	EventRate
	EventPause // toggles between running and paused
	EventStop
)

// Event is one action offered to Manager.Submit.
type Event struct {
	Type   EventType
	Answer string
	Rating srs.Difficulty
}

// Outcome describes the session right after an accepted event.
type Outcome struct {
	State     State
	Correct   bool
	Card      models.Flashcard
	Remaining time.Duration
}

// Recorder applies terminal mutations to the per-user stores.
type Recorder interface {
	RecordQuiz(ctx context.Context, userID int64, topic string, correct bool) error
	RecordPomodoro(ctx context.Context, userID int64) error
	SaveReview(ctx context.Context, card models.Flashcard) error
}

// Listener is told about transitions nobody submitted: deadlines.
type Listener interface {
	Expired(s Snapshot)
	Completed(s Snapshot)
}

// Timer is a pending deadline; see AfterFunc.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d, like time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Session is one live exchange owned by a single user.
type Session struct {
	ID        string
	Owner     int64
	Kind      Kind
	CreatedAt time.Time

	mu        sync.Mutex
	payload   Payload
	state     State
	correct   bool
	deadline  time.Time
	remaining time.Duration
	messageID int
	timer     Timer
	gen       int
}

// Snapshot is a consistent copy of a session's mutable fields.
type Snapshot struct {
	ID        string
	Owner     int64
	Kind      Kind
	State     State
	Correct   bool
	Payload   Payload
	MessageID int
	Deadline  time.Time
	Remaining time.Duration
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:        s.ID,
		Owner:     s.Owner,
		Kind:      s.Kind,
		State:     s.state,
		Correct:   s.correct,
		Payload:   s.payload,
		MessageID: s.messageID,
		Deadline:  s.deadline,
		Remaining: s.remaining,
	}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Attach records the message that renders the session so that deadline
// handlers can edit it.
func (s *Session) Attach(messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messageID = messageID
}

func (s *Session) stopTimer() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Evaluate scores answer against correct the way kind prescribes: exact
// label match for multiple choice, case-insensitive for true/false,
// normalized for fill-in-the-blank.
func Evaluate(kind Kind, correct, answer string) bool {
	switch kind {
	case KindTrueFalse:
		return strings.ToLower(answer) == strings.ToLower(correct)
	case KindFillBlank:
		return NormalizeAnswer(answer) == NormalizeAnswer(correct)
	default:
		return answer == correct
	}
}

var punctuation = strings.NewReplacer(".", "", ",", "")

// NormalizeAnswer trims, lower-cases and drops periods and commas.
func NormalizeAnswer(s string) string {
	return punctuation.Replace(strings.ToLower(strings.TrimSpace(s)))
}
