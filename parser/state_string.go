package parser

// state is the tokenizer's current position in the 14-state machine.
//
// https://html.spec.whatwg.org/multipage/parsing.html#tokenization
type state uint8

const (
	dataState state = iota
	tagOpenState
	endTagOpenState
	tagNameState
	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueUnquotedState
	attributeValueDoubleQuotedState
	attributeValueSingleQuotedState
	afterAttributeValueQuotedState
	selfClosingStartTagState
	commentState
)

// String names a state for trace logging.
func (s state) String() string {
	switch s {
	case dataState:
		return "Data"
	case tagOpenState:
		return "TagOpen"
	case endTagOpenState:
		return "EndTagOpen"
	case tagNameState:
		return "TagName"
	case beforeAttributeNameState:
		return "BeforeAttributeName"
	case attributeNameState:
		return "AttributeName"
	case afterAttributeNameState:
		return "AfterAttributeName"
	case beforeAttributeValueState:
		return "BeforeAttributeValue"
	case attributeValueUnquotedState:
		return "AttributeValueUnquoted"
	case attributeValueDoubleQuotedState:
		return "AttributeValueDoubleQuoted"
	case attributeValueSingleQuotedState:
		return "AttributeValueSingleQuoted"
	case afterAttributeValueQuotedState:
		return "AfterAttributeValueQuoted"
	case selfClosingStartTagState:
		return "SelfClosingStartTag"
	case commentState:
		return "Comment"
	default:
		return "Unknown"
	}
}
