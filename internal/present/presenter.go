package present

import (
	"errors"
	"io"

	"github.com/mithrel/gemchat/internal/present/format"
)

type Mode int

const (
	ModePlain Mode = iota
	ModePretty
	ModeJSON
	ModeNDJSON
	ModeTUI
)

// ErrInteractive is returned by RenderAnswer for ModeTUI; the caller runs
// the chat screen instead.
var ErrInteractive = errors.New("tui output is interactive")

type Options struct {
	Mode       Mode
	JSONIndent bool
	Style      string
	WordWrap   int
}

// ParseMode parses a string like "plain", "pretty", "json", "ndjson", "tui".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	case "ndjson":
		return ModeNDJSON, true
	case "tui":
		return ModeTUI, true
	default:
		return ModePlain, false
	}
}

func (m Mode) String() string {
	switch m {
	case ModePretty:
		return "pretty"
	case ModeJSON:
		return "json"
	case ModeNDJSON:
		return "ndjson"
	case ModeTUI:
		return "tui"
	default:
		return "plain"
	}
}

// RenderAnswer writes a finished exchange according to options.
func RenderAnswer(w io.Writer, r format.Result, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONAnswer(w, r, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONAnswer(w, r)
	case ModePretty:
		style := opts.Style
		if style == "" {
			style = "dark"
		}
		wrap := opts.WordWrap
		if wrap <= 0 {
			wrap = 80
		}
		return format.WritePrettyAnswer(w, r, style, wrap)
	case ModeTUI:
		return ErrInteractive
	default:
		return format.WritePlainAnswer(w, r)
	}
}
