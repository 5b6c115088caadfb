package hooks

// HookType represents the type of hook.
type HookType string

// Supported hook types.
const (
	PreInstall  HookType = "pre-install"
	PostInstall HookType = "post-install"
	PreRemove   HookType = "pre-remove"
	PostRemove  HookType = "post-remove"
	PreUpgrade  HookType = "pre-upgrade"
	PostUpgrade HookType = "post-upgrade"
)

// KnownTypes lists every hook type in a stable order.
var KnownTypes = []HookType{
	PreInstall, PostInstall,
	PreRemove, PostRemove,
	PreUpgrade, PostUpgrade,
}

// Valid reports whether t is a supported hook type.
func (t HookType) Valid() bool {
	switch t {
	case PreInstall, PostInstall, PreRemove, PostRemove, PreUpgrade, PostUpgrade:
		return true
	default:
		return false
	}
}

// Hook represents a hook script with its type and content.
type Hook struct {
	Type    HookType
	Content string
}

// HookContext contains information passed to hooks.
type HookContext struct {
	PackageName string
	Operation   string // "install", "remove" or "upgrade"
	Tool        string // the wrapped package tool command
	Vars        map[string]interface{}
}
