package symlink

import "fmt"

// PathKind is what a path is once links are followed
type PathKind int

const (
	KindFile PathKind = iota
	KindDirectory
)

func (k PathKind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// RelationKind describes how a target path relates to the desired link
type RelationKind int

const (
	// NotPresent means nothing exists at the target
	NotPresent RelationKind = iota
	// Equals means the target is a symlink resolving to the source
	Equals
	// PointsTo means the target is a symlink resolving somewhere else
	PointsTo
	// Occupied means the target is a real file or directory
	Occupied
)

// TargetRelation is the classified target. Kind is only meaningful for
// PointsTo and Occupied.
type TargetRelation struct {
	Relation RelationKind
	Kind     PathKind
}

func (r TargetRelation) String() string {
	switch r.Relation {
	case NotPresent:
		return "not present"
	case Equals:
		return "equals"
	case PointsTo:
		return fmt.Sprintf("points to %s", r.Kind)
	default:
		return fmt.Sprintf("occupied by %s", r.Kind)
	}
}

// StateKind is the outcome of classifying a source/target pair
type StateKind int

const (
	// StateEquals needs no work
	StateEquals StateKind = iota
	// StateVacantFile can take a symlink to a file source. TargetExists is
	// set when a stale symlink has to be replaced first.
	StateVacantFile
	// StateVacantDirectory can hold a mirror of a directory source.
	// TargetExists is set when a real directory is already there.
	StateVacantDirectory
)

func (k StateKind) String() string {
	switch k {
	case StateEquals:
		return "equals"
	case StateVacantFile:
		return "vacant file"
	default:
		return "vacant directory"
	}
}

// State is a classified source/target pair
type State struct {
	Kind         StateKind
	Source       string
	Target       string
	TargetExists bool
}

// classify combines the source kind and target relation. A false ok means
// the target is occupied.
func classify(source PathKind, target TargetRelation) (kind StateKind, targetExists bool, ok bool) {
	switch source {
	case KindDirectory:
		switch target.Relation {
		case Equals:
			return StateEquals, true, true
		case NotPresent:
			return StateVacantDirectory, false, true
		case Occupied:
			if target.Kind == KindDirectory {
				return StateVacantDirectory, true, true
			}
			return 0, false, false
		case PointsTo:
			return 0, false, false
		}
	case KindFile:
		switch target.Relation {
		case Equals:
			return StateEquals, true, true
		case NotPresent:
			return StateVacantFile, false, true
		case PointsTo:
			if target.Kind == KindFile {
				return StateVacantFile, true, true
			}
			return 0, false, false
		case Occupied:
			return 0, false, false
		}
	}
	panic(fmt.Sprintf("symlink: unclassified pair %s / %s", source, target))
}
