package session

// State is the lifecycle of the single question/answer exchange.
// It is one of Idle, Pending, Resolved or Failed.
type State interface {
	isState()
}

// Idle is the state before the first submission.
type Idle struct{}

// Pending means a request for Question is in flight.
type Pending struct {
	Question string
}

// Resolved holds the text returned for Question, possibly empty.
type Resolved struct {
	Question string
	Answer   string
}

// Failed holds the user-facing message shown instead of an answer.
type Failed struct {
	Question string
	Message  string
}

func (Idle) isState()     {}
func (Pending) isState()  {}
func (Resolved) isState() {}
func (Failed) isState()   {}
