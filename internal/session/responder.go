package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mithrel/gemchat/internal/genai"
	"github.com/mithrel/gemchat/internal/prompt"
)

// FailureMessage replaces the answer when a request fails for any reason.
const FailureMessage = "Something went wrong. Please try again."

// Request is one submission handed from Start to Fetch and Finish.
type Request struct {
	Ticket   Ticket
	Question string
	Text     string
}

// Responder runs submissions against a Generator and records the outcome
// in a Session.
type Responder struct {
	session *Session
	gen     genai.Generator
	log     *slog.Logger
}

func NewResponder(s *Session, gen genai.Generator, logger *slog.Logger) *Responder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Responder{session: s, gen: gen, log: logger}
}

func (r *Responder) Session() *Session {
	return r.session
}

// Start begins a submission. It returns false, leaving the session
// untouched, when the question is blank.
func (r *Responder) Start(question string) (Request, bool) {
	t, ok := r.session.Begin(question)
	if !ok {
		return Request{}, false
	}
	req := Request{Ticket: t, Question: question, Text: prompt.Compose(question)}
	r.log.Info("submitting question",
		"ticket", uint64(t),
		"question_len", prompt.Length(question),
		"formatted", req.Text != question)
	return req, true
}

// Fetch performs the network call for req. It does not touch the session.
func (r *Responder) Fetch(ctx context.Context, req Request) (string, error) {
	return r.gen.Generate(ctx, req.Text)
}

// Finish applies the outcome of req. It returns ErrStale when a newer
// submission has been started since.
func (r *Responder) Finish(req Request, text string, err error) error {
	var applyErr error
	if err != nil {
		r.log.Error("generate content failed", "ticket", uint64(req.Ticket), "error", err)
		applyErr = r.session.Fail(req.Ticket, FailureMessage)
	} else {
		applyErr = r.session.Resolve(req.Ticket, text)
	}
	if errors.Is(applyErr, ErrStale) {
		r.log.Debug("discarding stale response", "ticket", uint64(req.Ticket))
	}
	return applyErr
}

// Submit runs Start, Fetch and Finish in sequence. Request failures are
// not returned; they surface as FailureMessage in the session.
func (r *Responder) Submit(ctx context.Context, question string) error {
	req, ok := r.Start(question)
	if !ok {
		return ErrEmptyQuestion
	}
	text, err := r.Fetch(ctx, req)
	return r.Finish(req, text, err)
}
