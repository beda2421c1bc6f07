package askd

// Reply is a generated reply from a Provider. Field names and JSON tags
// follow the Generative Language API response.
type Reply struct {
	Candidates []*Candidate `json:"candidates"`
}

// Candidate is one alternative the provider generated.
type Candidate struct {
	Content      *Content `json:"content,omitempty"`
	FinishReason string   `json:"finishReason,omitempty"`
}

// Content is a role-tagged list of parts.
type Content struct {
	Role  string  `json:"role,omitempty"`
	Parts []*Part `json:"parts"`
}

// Part is a single piece of content.
type Part struct {
	Text string `json:"text,omitempty"`
}

// Text returns the text of the first part of the first candidate.
// The second result is false if any link in that chain is missing or the
// text is empty.
func (r *Reply) Text() (string, bool) {
	if r == nil || len(r.Candidates) == 0 {
		return "", false
	}
	c := r.Candidates[0]
	if c == nil || c.Content == nil || len(c.Content.Parts) == 0 {
		return "", false
	}
	p := c.Content.Parts[0]
	if p == nil || p.Text == "" {
		return "", false
	}
	return p.Text, true
}

// NewTextReply returns a reply with a single candidate holding text.
func NewTextReply(text string) *Reply {
	return &Reply{
		Candidates: []*Candidate{{
			Content: &Content{
				Role:  "model",
				Parts: []*Part{{Text: text}},
			},
		}},
	}
}
