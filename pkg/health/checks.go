package health

import (
	"context"
	"fmt"
)

// RequireSetting returns a check that fails while value is empty.
// The setting name is reported, the value never is.
func RequireSetting(name, value string) CheckFunc {
	return func(context.Context) error {
		if value == "" {
			return fmt.Errorf("%w: %s", ErrNotConfigured, name)
		}
		return nil
	}
}
