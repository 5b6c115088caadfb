package hooks

// DefaultManager implements HookManager on top of the Tengo executor.
type DefaultManager struct {
	executor *TengoExecutor
}

// NewHookManager creates a hook manager with an empty script set.
func NewHookManager() *DefaultManager {
	return &DefaultManager{executor: NewTengoExecutor()}
}

// Execute runs the script registered for hookType, if any.
func (m *DefaultManager) Execute(hookType HookType, ctx HookContext) error {
	if hookType == "" {
		return ErrHookTypeEmpty
	}
	return m.executor.Execute(hookType, ctx)
}

// AddHook registers or replaces the script for a hook type.
func (m *DefaultManager) AddHook(hook Hook) error {
	if hook.Type == "" {
		return ErrHookTypeEmpty
	}
	if !hook.Type.Valid() {
		return ErrUnsupportedHookType(hook.Type)
	}
	m.executor.AddScript(hook.Type, hook.Content)
	return nil
}

// RemoveHook drops the script for a hook type.
func (m *DefaultManager) RemoveHook(hookType HookType) error {
	if hookType == "" {
		return ErrHookTypeEmpty
	}
	m.executor.RemoveScript(hookType)
	return nil
}

// HasHook checks if a script is registered for a hook type.
func (m *DefaultManager) HasHook(hookType HookType) bool {
	return m.executor.HasScript(hookType)
}
