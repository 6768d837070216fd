package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mithrel/gemchat/internal/session"
)

// answerMsg conveys the outcome of one generate call back to Update.
type answerMsg struct {
	req  session.Request
	text string
	err  error
	dur  time.Duration
}

// fetchCmd runs the network call for req off the Update goroutine.
func fetchCmd(ctx context.Context, r *session.Responder, req session.Request) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		text, err := r.Fetch(ctx, req)
		return answerMsg{req: req, text: text, err: err, dur: time.Since(start)}
	}
}
