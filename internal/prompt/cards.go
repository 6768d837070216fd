package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

// ErrNoCard is returned when a card query matches nothing.
var ErrNoCard = errors.New("no example prompt matches")

// Card is one of the fixed example prompts offered before the first question.
type Card struct {
	Text string
	Icon string
}

// Cards lists the example prompts in display order.
var Cards = []Card{
	{Text: "Suggest beautiful places to explore on an upcoming road trip", Icon: "compass"},
	{Text: "Briefly summarize this concept: urban planning", Icon: "bulb"},
	{Text: "Brainstorm team-bonding activities for our work retreat", Icon: "message"},
	{Text: "Improve the readability of the following code", Icon: "code"},
}

// FindCard resolves query to a card. A number selects by 1-based position,
// anything else is fuzzy matched against the card texts.
func FindCard(query string) (Card, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Card{}, ErrNoCard
	}
	if n, err := strconv.Atoi(q); err == nil {
		if n < 1 || n > len(Cards) {
			return Card{}, fmt.Errorf("%w: index %d out of range 1-%d", ErrNoCard, n, len(Cards))
		}
		return Cards[n-1], nil
	}
	texts := make([]string, len(Cards))
	for i, c := range Cards {
		texts[i] = strings.ToLower(c.Text)
	}
	matches := fuzzy.Find(strings.ToLower(q), texts)
	if len(matches) == 0 {
		return Card{}, fmt.Errorf("%w: %q", ErrNoCard, q)
	}
	return Cards[matches[0].Index], nil
}
