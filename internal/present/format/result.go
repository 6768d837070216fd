package format

import "github.com/mithrel/gemchat/internal/answer"

// Result is one finished exchange ready for output.
type Result struct {
	Question string        `json:"question"`
	Answer   string        `json:"answer"`
	Failed   bool          `json:"failed"`
	Nodes    []answer.Node `json:"nodes"`
}

// NewResult renders text with render and bundles it with question.
func NewResult(question, text string, failed bool, render answer.Renderer) Result {
	if render == nil {
		render = answer.Render
	}
	nodes := render(text)
	if nodes == nil {
		nodes = []answer.Node{}
	}
	return Result{Question: question, Answer: text, Failed: failed, Nodes: nodes}
}
