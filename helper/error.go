package helper

import "fmt"

// NewError wraps err with the name of the operation that failed, so call
// sites read as `helper.NewError("scan", err)` and errors.Is/As keep
// working through the wrap.
func NewError(operation string, err error) error {
	return fmt.Errorf("error in %s: %w", operation, err)
}
