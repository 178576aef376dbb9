package nmea

import (
	"errors"
	"fmt"
)

var (
	ErrWrongSentenceHeader = errors.New("wrong sentence header")
	ErrSyntax              = errors.New("syntax error")
)

// WrongSentenceHeaderError is returned when a decoder receives a sentence
// whose message id belongs to another decoder.
type WrongSentenceHeaderError struct {
	Expected SentenceType
	Found    SentenceType
}

func (e *WrongSentenceHeaderError) Error() string {
	return fmt.Sprintf("wrong sentence header: expected %s, found %s", e.Expected, e.Found)
}

func (e *WrongSentenceHeaderError) Is(target error) bool {
	return target == ErrWrongSentenceHeader
}

// SyntaxError reports the point at which a payload stopped matching its
// field grammar. Offset is the byte offset into the payload and Remaining
// is the unconsumed input from that offset.
type SyntaxError struct {
	Offset    int
	Expected  string
	Remaining string
	Err       error
}

func (e *SyntaxError) Error() string {
	found := "end of input"
	if e.Remaining != "" {
		found = fmt.Sprintf("%q", e.Remaining)
	}
	msg := fmt.Sprintf("syntax error at offset %d: expected %s, found %s", e.Offset, e.Expected, found)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}
