// Package tokcfg holds the tokenizer's construction options.
package tokcfg

import "github.com/htmlcore/htmlcore/parser/perror"

// Options configures a Tokenizer at construction time. DefaultOptions
// keeps every duplicate attribute and reports parse errors to a
// LogrusSink; the zero value also keeps duplicates but discards parse
// errors.
type Options struct {
	// Sink receives parse-error codes. Nil means perror.Discard.
	Sink perror.Sink

	// DropDuplicateAttributes, when true, drops a later attribute whose
	// name already appears earlier in the same tag instead of appending
	// it a second time.
	DropDuplicateAttributes bool
}

// DefaultOptions returns the tokenizer's default configuration: a
// LogrusSink for parse errors, duplicate attributes kept.
func DefaultOptions() Options {
	return Options{
		Sink:                    perror.NewLogrusSink(),
		DropDuplicateAttributes: false,
	}
}

// SinkOrDiscard returns o.Sink, or perror.Discard if none was set.
func (o Options) SinkOrDiscard() perror.Sink {
	if o.Sink == nil {
		return perror.Discard
	}
	return o.Sink
}
