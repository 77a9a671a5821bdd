// Package workspace coordinates the docking tree, the floating panel
// registry, and the deferred event queue that moves panels between the two.
// It owns the panel lifecycle state machine (Docked, FloatingOpen,
// FloatingClosed) and guarantees that every event handler leaves the
// workspace in an invariant-satisfying state, rolling partial mutations back
// on failure.
package workspace

import (
	"errors"
	"fmt"
)

// ErrStructural categorizes failures where a referenced tile or parent was
// not found, had the wrong variant for the operation, or a child was not
// actually present in its claimed parent.
var ErrStructural = errors.New("structural error")

// ErrPermission categorizes attempts to close or undock a pinned panel.
// Such attempts fail without mutating any state.
var ErrPermission = errors.New("permission denied")

// ErrRecovery marks the critical condition where an in-flight panel could
// not be restored to either the tree or the registry. It must never occur as
// long as every removal-then-insert sequence keeps its paired recovery
// branch.
var ErrRecovery = errors.New("panel recovery failed")

// ErrPanelNotFound is returned when a panel identity is not in the floating
// registry. errors.Is(err, ErrStructural) holds for it.
var ErrPanelNotFound = fmt.Errorf("%w: panel not in registry", ErrStructural)
