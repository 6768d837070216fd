package genai

// GenerateContentRequest is the request envelope of the generateContent API.
type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

// GenerateContentResponse holds the fields of the response envelope we read.
// Everything else in the payload is ignored.
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Content      *Content `json:"content,omitempty"`
	FinishReason string   `json:"finishReason,omitempty"`
}

// NewRequest wraps text in a single content with a single part.
func NewRequest(text string) GenerateContentRequest {
	return GenerateContentRequest{
		Contents: []Content{{Parts: []Part{{Text: text}}}},
	}
}

// ExtractText returns candidates[0].content.parts[0].text, or "" when any
// link of that chain is missing.
func ExtractText(resp GenerateContentResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return ""
	}
	return content.Parts[0].Text
}
