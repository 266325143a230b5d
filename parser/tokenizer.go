// Package parser implements the HTML tokenizer: a streaming lexical
// analyzer converting a character stream into HTML tokens, following the
// state-machine model of the HTML Living Standard.
//
// https://html.spec.whatwg.org/multipage/parsing.html#tokenization
package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/htmlcore/htmlcore/parser/htmlchar"
	"github.com/htmlcore/htmlcore/parser/perror"
	"github.com/htmlcore/htmlcore/parser/token"
	"github.com/htmlcore/htmlcore/parser/tokcfg"
)

// Tokenizer pulls tokens out of an input string one at a time. It is not
// safe for concurrent use by multiple goroutines; independent Tokenizer
// instances over the same (immutable) input are safe.
type Tokenizer struct {
	input     string
	pos       int
	reconsume bool
	state     state

	// pending holds tokens produced by a single transition that must
	// emit more than one token (EOF inside "<" or "</"). It is a small
	// stack: Next drains it from the end before re-entering the state
	// machine.
	pending []token.Token

	// eofEmitted is set the first time an EndOfFile token is produced
	// (directly or via pending) and makes Next idempotent afterward:
	// every subsequent call returns EndOfFile without re-running any
	// state's EOF branch, so a caller that keeps calling Next past the
	// end of input never triggers repeat parse-error reports.
	eofEmitted bool

	builder *token.TagBuilder
	sink    perror.Sink
	log     *logrus.Logger
}

// New constructs a Tokenizer over input, ready to run from the Data state.
func New(input string, opts tokcfg.Options) *Tokenizer {
	log := logrus.StandardLogger()
	return &Tokenizer{
		input:   input,
		state:   dataState,
		builder: token.NewTagBuilder(opts.DropDuplicateAttributes),
		sink:    opts.SinkOrDiscard(),
		log:     log,
	}
}

// consume returns the next input character, or ok=false past the end. If
// the last call to consume was followed by a reconsume request, the same
// character is returned again without advancing pos: this is the
// tokenizer's only form of lookahead, a single-character "undo" on the
// cursor rather than a real peek buffer. Reconsuming an end-of-input read
// yields end of input again.
func (t *Tokenizer) consume() (c byte, ok bool) {
	if t.reconsume {
		t.reconsume = false
		if t.pos <= 0 {
			return 0, false
		}
		t.pos--
	}

	if t.pos >= len(t.input) {
		// Step one past the end so that backing up for a reconsume lands
		// on the end of input, not on the last character.
		t.pos = len(t.input) + 1
		return 0, false
	}

	c = t.input[t.pos]
	t.pos++
	return c, true
}

// push appends tok to the pending stack, tracking EOF emission so Next
// stays idempotent once the stream is exhausted.
func (t *Tokenizer) push(tok token.Token) {
	if tok.Kind == token.EOFKind {
		t.eofEmitted = true
	}
	t.pending = append(t.pending, tok)
}

func (t *Tokenizer) emitEOF() (token.Token, bool) {
	t.eofEmitted = true
	return token.EOF, true
}

func (t *Tokenizer) reportError(code string) {
	t.sink.Report(code)
}

// Next runs the state machine until exactly one token is produced and
// returns it. Calling Next after it has returned an EndOfFile token keeps
// returning EndOfFile; this is a no-defined-behavior precondition
// violation per the tokenizer's contract, resolved here in favor of never
// panicking.
func (t *Tokenizer) Next() token.Token {
	if n := len(t.pending); n > 0 {
		tok := t.pending[n-1]
		t.pending = t.pending[:n-1]
		return tok
	}

	if t.eofEmitted {
		return token.EOF
	}

	for {
		c, ok := t.consume()

		t.log.WithFields(logrus.Fields{
			"component": "html-tokenizer",
			"state":     t.state.String(),
			"eof":       !ok,
		}).Debug("consume")

		var (
			tok     token.Token
			emitted bool
		)

		switch t.state {
		case dataState:
			tok, emitted = t.stepData(c, ok)
		case tagOpenState:
			tok, emitted = t.stepTagOpen(c, ok)
		case endTagOpenState:
			tok, emitted = t.stepEndTagOpen(c, ok)
		case tagNameState:
			tok, emitted = t.stepTagName(c, ok)
		case beforeAttributeNameState:
			tok, emitted = t.stepBeforeAttributeName(c, ok)
		case attributeNameState:
			tok, emitted = t.stepAttributeName(c, ok)
		case afterAttributeNameState:
			tok, emitted = t.stepAfterAttributeName(c, ok)
		case beforeAttributeValueState:
			tok, emitted = t.stepBeforeAttributeValue(c, ok)
		case attributeValueDoubleQuotedState:
			tok, emitted = t.stepAttributeValueQuoted(c, ok, '"')
		case attributeValueSingleQuotedState:
			tok, emitted = t.stepAttributeValueQuoted(c, ok, '\'')
		case attributeValueUnquotedState:
			tok, emitted = t.stepAttributeValueUnquoted(c, ok)
		case afterAttributeValueQuotedState:
			tok, emitted = t.stepAfterAttributeValueQuoted(c, ok)
		case selfClosingStartTagState:
			tok, emitted = t.stepSelfClosingStartTag(c, ok)
		case commentState:
			tok, emitted = t.stepComment(c, ok)
		}

		if emitted {
			return tok
		}
	}
}

// https://html.spec.whatwg.org/multipage/parsing.html#data-state
func (t *Tokenizer) stepData(c byte, ok bool) (token.Token, bool) {
	if !ok {
		return t.emitEOF()
	}
	if c == '<' {
		t.state = tagOpenState
		return token.Token{}, false
	}
	return token.NewCharacter(c), true
}

// https://html.spec.whatwg.org/multipage/parsing.html#tag-open-state
func (t *Tokenizer) stepTagOpen(c byte, ok bool) (token.Token, bool) {
	if !ok {
		t.reportError(perror.EOFBeforeTagName)
		t.push(token.EOF)
		return token.NewCharacter('<'), true
	}

	switch {
	case c == '!':
		// TODO: markup declaration open is modeled as the bogus-comment
		// absorber until real comment/DOCTYPE/CDATA parsing exists.
		t.state = commentState
	case c == '/':
		t.state = endTagOpenState
	case htmlchar.IsASCIIAlpha(c):
		t.builder.CreateStartTag()
		t.reconsume = true
		t.state = tagNameState
	case c == '?':
		t.reportError(perror.UnexpectedQuestionMarkInsteadOfTagName)
		t.reconsume = true
		t.state = commentState
	default:
		t.reportError(perror.InvalidFirstCharacterOfTagName)
		t.reconsume = true
		t.state = dataState
		return token.NewCharacter('<'), true
	}

	return token.Token{}, false
}

// https://html.spec.whatwg.org/multipage/parsing.html#end-tag-open-state
func (t *Tokenizer) stepEndTagOpen(c byte, ok bool) (token.Token, bool) {
	if !ok {
		t.reportError(perror.EOFBeforeTagName)
		t.push(token.EOF)
		t.push(token.NewCharacter('/'))
		return token.NewCharacter('<'), true
	}

	switch {
	case htmlchar.IsASCIIAlpha(c):
		t.builder.CreateEndTag()
		t.reconsume = true
		t.state = tagNameState
	case c == '>':
		t.reportError(perror.MissingEndTagName)
		t.state = dataState
	default:
		t.reportError(perror.InvalidFirstCharacterOfTagName)
		t.reconsume = true
		t.state = commentState
	}

	return token.Token{}, false
}

// https://html.spec.whatwg.org/multipage/parsing.html#tag-name-state
func (t *Tokenizer) stepTagName(c byte, ok bool) (token.Token, bool) {
	if !ok {
		t.reportError(perror.EOFInTag)
		return t.emitEOF()
	}

	switch {
	case htmlchar.IsWhitespace(c):
		t.state = beforeAttributeNameState
	case c == '/':
		t.state = selfClosingStartTagState
	case c == '>':
		t.state = dataState
		return t.builder.Emit(), true
	default:
		t.builder.WriteName(htmlchar.ToASCIILower(c))
	}

	return token.Token{}, false
}

// https://html.spec.whatwg.org/multipage/parsing.html#before-attribute-name-state
func (t *Tokenizer) stepBeforeAttributeName(c byte, ok bool) (token.Token, bool) {
	if !ok {
		t.reconsume = true
		t.state = afterAttributeNameState
		return token.Token{}, false
	}

	switch {
	case htmlchar.IsWhitespace(c):
		// ignore
	case c == '/' || c == '>':
		t.reconsume = true
		t.state = afterAttributeNameState
	case c == '=':
		t.reportError(perror.UnexpectedEqualsSignBeforeAttributeName)
		t.builder.CreateAttribute()
		t.builder.WriteAttrName(c)
		t.state = attributeNameState
	default:
		t.builder.CreateAttribute()
		t.reconsume = true
		t.state = attributeNameState
	}

	return token.Token{}, false
}

// https://html.spec.whatwg.org/multipage/parsing.html#attribute-name-state
func (t *Tokenizer) stepAttributeName(c byte, ok bool) (token.Token, bool) {
	if !ok {
		t.reconsume = true
		t.state = afterAttributeNameState
		return token.Token{}, false
	}

	switch {
	case htmlchar.IsWhitespace(c) || c == '/' || c == '>':
		t.reconsume = true
		t.state = afterAttributeNameState
	case c == '=':
		t.state = beforeAttributeValueState
	case c == '"' || c == '\'' || c == '<':
		t.reportError(perror.UnexpectedCharacterInAttributeName)
		t.builder.WriteAttrName(htmlchar.ToASCIILower(c))
	default:
		t.builder.WriteAttrName(htmlchar.ToASCIILower(c))
	}

	return token.Token{}, false
}

// https://html.spec.whatwg.org/multipage/parsing.html#after-attribute-name-state
func (t *Tokenizer) stepAfterAttributeName(c byte, ok bool) (token.Token, bool) {
	if !ok {
		t.reportError(perror.EOFInTag)
		return t.emitEOF()
	}

	switch {
	case htmlchar.IsWhitespace(c):
		// ignore
	case c == '/':
		t.state = selfClosingStartTagState
	case c == '=':
		t.state = beforeAttributeValueState
	case c == '>':
		t.state = dataState
		return t.builder.Emit(), true
	default:
		t.builder.CreateAttribute()
		t.reconsume = true
		t.state = attributeNameState
	}

	return token.Token{}, false
}

// https://html.spec.whatwg.org/multipage/parsing.html#before-attribute-value-state
func (t *Tokenizer) stepBeforeAttributeValue(c byte, ok bool) (token.Token, bool) {
	if !ok {
		t.reconsume = true
		t.state = attributeValueUnquotedState
		return token.Token{}, false
	}

	switch {
	case htmlchar.IsWhitespace(c):
		// ignore
	case c == '"':
		t.state = attributeValueDoubleQuotedState
	case c == '\'':
		t.state = attributeValueSingleQuotedState
	case c == '>':
		t.reportError(perror.MissingAttributeValue)
		t.state = dataState
		return t.builder.Emit(), true
	default:
		t.reconsume = true
		t.state = attributeValueUnquotedState
	}

	return token.Token{}, false
}

// https://html.spec.whatwg.org/multipage/parsing.html#attribute-value-(double-quoted)-state
// https://html.spec.whatwg.org/multipage/parsing.html#attribute-value-(single-quoted)-state
func (t *Tokenizer) stepAttributeValueQuoted(c byte, ok bool, quote byte) (token.Token, bool) {
	if !ok {
		t.reportError(perror.EOFInTag)
		return t.emitEOF()
	}

	if c == quote {
		t.state = afterAttributeValueQuotedState
		return token.Token{}, false
	}

	t.builder.WriteAttrValue(c)
	return token.Token{}, false
}

// https://html.spec.whatwg.org/multipage/parsing.html#attribute-value-(unquoted)-state
func (t *Tokenizer) stepAttributeValueUnquoted(c byte, ok bool) (token.Token, bool) {
	if !ok {
		t.reportError(perror.EOFInTag)
		return t.emitEOF()
	}

	switch {
	case htmlchar.IsWhitespace(c):
		t.state = beforeAttributeNameState
	case c == '>':
		t.state = dataState
		return t.builder.Emit(), true
	case c == '"' || c == '\'' || c == '<' || c == '=' || c == '`':
		t.reportError(perror.UnexpectedCharacterInUnquotedAttrValue)
		t.builder.WriteAttrValue(c)
	default:
		t.builder.WriteAttrValue(c)
	}

	return token.Token{}, false
}

// https://html.spec.whatwg.org/multipage/parsing.html#after-attribute-value-(quoted)-state
func (t *Tokenizer) stepAfterAttributeValueQuoted(c byte, ok bool) (token.Token, bool) {
	if !ok {
		t.reportError(perror.EOFInTag)
		return t.emitEOF()
	}

	switch {
	case htmlchar.IsWhitespace(c):
		t.state = beforeAttributeNameState
	case c == '/':
		t.state = selfClosingStartTagState
	case c == '>':
		t.state = dataState
		return t.builder.Emit(), true
	default:
		t.reportError(perror.MissingWhitespaceBetweenAttributes)
		t.reconsume = true
		t.state = beforeAttributeNameState
	}

	return token.Token{}, false
}

// https://html.spec.whatwg.org/multipage/parsing.html#self-closing-start-tag-state
func (t *Tokenizer) stepSelfClosingStartTag(c byte, ok bool) (token.Token, bool) {
	if !ok {
		t.reportError(perror.EOFInTag)
		return t.emitEOF()
	}

	if c == '>' {
		t.builder.EnableSelfClosing()
		t.state = dataState
		return t.builder.Emit(), true
	}

	t.reportError(perror.UnexpectedSolidusInTag)
	t.reconsume = true
	t.state = beforeAttributeNameState
	return token.Token{}, false
}

// stepComment is a placeholder bogus-comment absorber: it consumes up to
// the next ">" and discards everything in between. Real comment and
// markup-declaration-open parsing (DOCTYPE, CDATA) is not implemented.
//
// https://html.spec.whatwg.org/multipage/parsing.html#bogus-comment-state
func (t *Tokenizer) stepComment(c byte, ok bool) (token.Token, bool) {
	if !ok {
		t.reportError(perror.EOFInComment)
		return t.emitEOF()
	}

	if c == '>' {
		t.state = dataState
	}

	return token.Token{}, false
}
