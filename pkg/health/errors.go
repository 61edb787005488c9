package health

import "errors"

// ErrNotConfigured is returned by RequireSetting checks when a setting is empty.
var ErrNotConfigured = errors.New("health: not configured")
