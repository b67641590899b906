package domain

import "fmt"

// FetchError reports a failure to obtain a date token from the remote service
type FetchError struct {
	Reason     string
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	msg := "fetch date: " + e.Reason
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports a date token that could not be decomposed
type ParseError struct {
	Token  RawDateToken
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse date token %q: %s", e.Token, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
