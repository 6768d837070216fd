package session

import (
	"errors"
	"strings"
	"sync"
)

var (
	// ErrEmptyQuestion is returned when the trimmed question is empty.
	ErrEmptyQuestion = errors.New("question is empty")
	// ErrStale is returned when a result arrives for a superseded ticket.
	ErrStale = errors.New("stale result discarded")
)

// Ticket identifies one submission. Only the latest issued ticket may
// resolve the session.
type Ticket uint64

// Session holds the question/answer state. Use New to create one.
type Session struct {
	mu     sync.Mutex
	state  State
	issued Ticket
	answer string
}

func New() *Session {
	return &Session{state: Idle{}}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Loading reports whether a request is in flight.
func (s *Session) Loading() bool {
	_, ok := s.State().(Pending)
	return ok
}

// ResultVisible reports whether a submission has ever started.
func (s *Session) ResultVisible() bool {
	_, idle := s.State().(Idle)
	return !idle
}

// Question returns the question of the current exchange, or "" when idle.
func (s *Session) Question() string {
	switch st := s.State().(type) {
	case Pending:
		return st.Question
	case Resolved:
		return st.Question
	case Failed:
		return st.Question
	default:
		return ""
	}
}

// Answer returns the text to render: the answer, the failure message, or
// the last answer while a new request is pending.
func (s *Session) Answer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answer
}

// Begin moves the session to Pending and issues a new ticket. It is a no-op
// returning false when the trimmed question is empty.
func (s *Session) Begin(question string) (Ticket, bool) {
	if strings.TrimSpace(question) == "" {
		return 0, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.state = Pending{Question: question}
	return s.issued, true
}

// Resolve stores answer if t is the latest ticket.
func (s *Session) Resolve(t Ticket, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.pendingFor(t)
	if err != nil {
		return err
	}
	s.state = Resolved{Question: p.Question, Answer: answer}
	s.answer = answer
	return nil
}

// Fail stores message as the visible answer if t is the latest ticket.
func (s *Session) Fail(t Ticket, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.pendingFor(t)
	if err != nil {
		return err
	}
	s.state = Failed{Question: p.Question, Message: message}
	s.answer = message
	return nil
}

// pendingFor must be called with mu held.
func (s *Session) pendingFor(t Ticket) (Pending, error) {
	if t == 0 || t != s.issued {
		return Pending{}, ErrStale
	}
	p, ok := s.state.(Pending)
	if !ok {
		return Pending{}, ErrStale
	}
	return p, nil
}
