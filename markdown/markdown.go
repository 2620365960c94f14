// Package markdown converts note body text into styled preview runs.
//
// The dialect is deliberately small: #/##/### headers, **/__ bold,
// */_ italic, fenced code blocks, and GitHub-style pipe tables. It is
// not CommonMark and does not try to be: there is no nested emphasis,
// no links, and no lists. Rendering is a pure function over the input
// text; every call rebuilds the run sequence from scratch.
package markdown

import "github.com/stickpad/stickpad"

// Render converts a note body into the ordered styled runs consumed by
// the preview surface, using the default width classifier.
func Render(body string) []stickpad.StyledRun {
	return New().Render(body)
}

// Renderer renders note bodies to styled runs. The zero value is not
// usable; construct with New.
type Renderer struct {
	classify Classifier
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClassifier overrides the width classifier used for table column
// layout. The table-formatting algorithm itself is unaffected.
func WithClassifier(c Classifier) Option {
	return func(r *Renderer) { r.classify = c }
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{classify: Classify}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *Renderer) estimate(s string) int {
	return estimateWidth(s, r.classify)
}
