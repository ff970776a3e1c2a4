package mines

import "fmt"

type LayoutError struct {
	message string
}

// [LayoutError] implements [error]
func (e LayoutError) Error() string {
	return e.message
}

func layoutErrorf(format string, args ...any) LayoutError {
	return LayoutError{fmt.Sprintf(format, args...)}
}
