package hooks

import (
	"fmt"

	"github.com/glorpus-work/yumctl/pkg/errors"
)

// Common hooks errors.
var (
	// ErrHookTypeEmpty is returned when a hook type is empty.
	ErrHookTypeEmpty = fmt.Errorf("hook type cannot be empty")

	// ErrHookExecution is returned when there's an error executing a hook.
	ErrHookExecution = fmt.Errorf("error executing hook")

	// ErrHookScript is returned when there's an error in a hook script.
	ErrHookScript = fmt.Errorf("hook script error")

	// ErrHookLoad is returned when there's an error loading a hook.
	ErrHookLoad = fmt.Errorf("failed to load hook")
)

// ErrUnsupportedHookType is returned when an unsupported hook type is used.
func ErrUnsupportedHookType(hookType HookType) error {
	return errors.Wrapf(ErrHookLoad, "unsupported hook type: %s", hookType)
}
