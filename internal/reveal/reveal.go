// Package reveal turns a completed answer into a sequence of incremental
// render frames: one more word per frame with a trailing cursor glyph, then
// the untouched full text. Cadence is the caller's policy; Interval is the
// suggested tick.
package reveal

import (
	"strings"
	"time"
)

// Interval is the suggested delay between frames.
const Interval = 30 * time.Millisecond

// CursorGlyph trails the partial text while the reveal is in progress.
const CursorGlyph = "▌"

// Sequence steps through the frames of one reveal. The zero value renders an
// empty final frame.
type Sequence struct {
	full  string
	words []string
	shown int
}

// New starts a reveal of the given text. The text is never altered: the
// final frame is exactly the input.
func New(text string) *Sequence {
	return &Sequence{
		full:  text,
		words: strings.Fields(text),
	}
}

// Advance reveals one more word. It reports whether the sequence is still in
// progress after the step.
func (s *Sequence) Advance() bool {
	if s.shown < len(s.words) {
		s.shown++
	}
	return !s.Done()
}

// Done reports whether every word has been revealed.
func (s *Sequence) Done() bool {
	return s.shown >= len(s.words)
}

// Frame renders the current state: the revealed words with the cursor glyph
// while in progress, the original text once done.
func (s *Sequence) Frame() string {
	if s.Done() {
		return s.full
	}
	return strings.Join(s.words[:s.shown], " ") + " " + CursorGlyph
}

// Full returns the complete text regardless of progress.
func (s *Sequence) Full() string {
	return s.full
}
