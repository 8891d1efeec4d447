package symlink

import "fmt"

// ActionKind identifies a filesystem mutation performed by the reconciler
type ActionKind int

const (
	ActionCreateDirectory ActionKind = iota
	ActionCreateLink
	ActionRemoveLink
)

func (k ActionKind) String() string {
	switch k {
	case ActionCreateDirectory:
		return "create directory"
	case ActionCreateLink:
		return "create link"
	case ActionRemoveLink:
		return "remove link"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// Action is reported for every mutation, or every mutation that would
// happen in dry-run mode. Source is empty for directory creation.
type Action struct {
	Kind   ActionKind
	Source string
	Target string
	DryRun bool
}

func (a Action) String() string {
	if a.Source == "" {
		return fmt.Sprintf("%s: %s", a.Kind, a.Target)
	}
	return fmt.Sprintf("%s: %s -> %s", a.Kind, a.Source, a.Target)
}

// Observer receives actions as they happen
type Observer func(Action)
