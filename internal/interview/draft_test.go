package interview

import "testing"

func TestDraftSpeechSeedsText(t *testing.T) {
	var d Draft
	d.SetSpeech("spoken answer")

	if got := d.FinalAnswer(); got != "spoken answer" {
		t.Errorf("FinalAnswer = %q", got)
	}
}

func TestDraftTextTakesPrecedence(t *testing.T) {
	var d Draft
	d.SetSpeech("spoken answer")
	d.SetText("edited answer")

	if got := d.FinalAnswer(); got != "edited answer" {
		t.Errorf("FinalAnswer = %q, want edited text", got)
	}
}

func TestDraftFallsBackToSpeech(t *testing.T) {
	var d Draft
	d.SetSpeech("spoken answer")
	d.SetText("   ")

	if got := d.FinalAnswer(); got != "spoken answer" {
		t.Errorf("FinalAnswer = %q, want speech fallback", got)
	}
}

func TestDraftTrimsWhitespace(t *testing.T) {
	var d Draft
	d.SetText("  padded  ")

	if got := d.FinalAnswer(); got != "padded" {
		t.Errorf("FinalAnswer = %q", got)
	}
}

func TestDraftReset(t *testing.T) {
	var d Draft
	d.SetSpeech("spoken")
	d.SetText("typed")
	d.Reset()

	if got := d.FinalAnswer(); got != "" {
		t.Errorf("FinalAnswer after Reset = %q, want empty", got)
	}
}
