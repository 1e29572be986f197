package providers

import "fmt"

// UnparsableReplyError reports a model reply that could not be parsed as
// JSON. Raw carries the reply text so the recovery parser can attempt a
// salvage.
type UnparsableReplyError struct {
	Raw string
	Err error
}

func (e *UnparsableReplyError) Error() string {
	return fmt.Sprintf("unparsable llm reply: %v", e.Err)
}

func (e *UnparsableReplyError) Unwrap() error {
	return e.Err
}
