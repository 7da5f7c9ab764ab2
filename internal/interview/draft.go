package interview

import "strings"

// Draft is the transient per-question capture buffer. It reconciles the
// two competing input channels (speech recognition and manual editing)
// into one final answer. Nothing in it survives a question change.
type Draft struct {
	speech string
	text   string
}

// SetSpeech records a speech recognition result. The editable text is
// seeded with the same value so the user may revise it.
func (d *Draft) SetSpeech(text string) {
	d.speech = text
	d.text = text
}

// SetText overwrites only the editable text.
func (d *Draft) SetText(text string) {
	d.text = text
}

// FinalAnswer returns the trimmed edited text, falling back to the
// trimmed raw speech result when the text is empty.
func (d *Draft) FinalAnswer() string {
	if t := strings.TrimSpace(d.text); t != "" {
		return t
	}
	return strings.TrimSpace(d.speech)
}

// Reset clears both fields. The engine calls this unconditionally on
// every question-index change so a previous answer's transcript can
// never leak into the next question.
func (d *Draft) Reset() {
	*d = Draft{}
}
