// Package perror is the tokenizer's parse-error side channel: a named-code
// receiver that never interrupts tokenization.
//
// https://html.spec.whatwg.org/multipage/parsing.html#parse-errors
package perror

import "github.com/sirupsen/logrus"

// The twelve parse-error codes this tokenizer can report. No others are
// defined: codes belonging to deferred features (character references,
// DOCTYPE, real comments) are out of scope until those states exist.
const (
	UnexpectedQuestionMarkInsteadOfTagName  = "unexpected-question-mark-instead-of-tag-name"
	InvalidFirstCharacterOfTagName          = "invalid-first-character-of-tag-name"
	EOFBeforeTagName                        = "eof-before-tag-name"
	MissingEndTagName                       = "missing-end-tag-name"
	EOFInTag                                = "eof-in-tag"
	UnexpectedEqualsSignBeforeAttributeName = "unexpected-equals-sign-before-attribute-name"
	UnexpectedCharacterInAttributeName      = "unexpected-character-in-attribute-name"
	MissingAttributeValue                   = "missing-attribute-value"
	UnexpectedCharacterInUnquotedAttrValue  = "unexpected-character-in-unquoted-attribute-value"
	MissingWhitespaceBetweenAttributes      = "missing-whitespace-between-attributes"
	UnexpectedSolidusInTag                  = "unexpected-solidus-in-tag"
	EOFInComment                            = "eof-in-comment"
)

// Sink receives parse-error codes reported by the tokenizer. Reporting
// never halts tokenization; the state machine always continues along the
// transition prescribed for that case.
type Sink interface {
	Report(code string)
}

// LogrusSink is the default Sink: it logs each code at Warn level via
// logrus with structured fields.
type LogrusSink struct {
	Logger *logrus.Logger
}

// NewLogrusSink returns a LogrusSink using logrus's standard logger.
func NewLogrusSink() *LogrusSink {
	return &LogrusSink{Logger: logrus.StandardLogger()}
}

// Report logs code at Warn level under the "html-tokenizer" component.
func (s *LogrusSink) Report(code string) {
	logger := s.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger.WithField("component", "html-tokenizer").Warn(code)
}

// CollectingSink appends every reported code, in order, to Codes. It is
// the "testable implementation" the tokenizer's parse-error contract
// calls for.
type CollectingSink struct {
	Codes []string
}

// Report appends code to s.Codes.
func (s *CollectingSink) Report(code string) {
	s.Codes = append(s.Codes, code)
}

// discardSink silently drops every code; used when a caller passes no
// sink at all.
type discardSink struct{}

func (discardSink) Report(string) {}

// Discard is a Sink that ignores every reported code.
var Discard Sink = discardSink{}
