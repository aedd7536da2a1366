package aixm

import "fmt"

// ErrInvalidMessage indicates the input document is not an AIXM Basic
// Message.
type ErrInvalidMessage struct {
	Path   string
	Reason string
}

func (e *ErrInvalidMessage) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: invalid AIXM message: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("invalid AIXM message: %s", e.Reason)
}
