package permission

import (
	"fmt"
)

// ForbiddenError indicates a failed capability check. The message names
// only the operation category and the resource, never which rule failed.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// CanView turns a read decision into either continue (nil) or Forbidden.
func CanView(ok bool, resource string) error {
	if ok {
		return nil
	}
	return &ForbiddenError{Message: fmt.Sprintf("cannot view %s", resource)}
}

// CanManage turns a write decision into either continue (nil) or Forbidden.
func CanManage(ok bool, resource string) error {
	if ok {
		return nil
	}
	return &ForbiddenError{Message: fmt.Sprintf("cannot manage %s", resource)}
}
