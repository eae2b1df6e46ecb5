package chartrie

import "errors"

// Ref is an arena index addressing one node of a Trie.
type Ref uint32

// NoRef marks an absent next or child link.
const NoRef = ^Ref(0)

// Mode selects how a sibling chain is searched.
type Mode uint8

const (
	// ModeSimple finds the node equal to the character, or nothing.
	ModeSimple Mode = iota
	// ModeCreate finds the equal node, splicing a new one into sorted
	// position if it is absent.
	ModeCreate
	// ModeGreaterOrEqual finds the first node not less than the character.
	ModeGreaterOrEqual
)

func (m Mode) String() string {
	switch m {
	case ModeSimple:
		return "simple"
	case ModeCreate:
		return "create"
	case ModeGreaterOrEqual:
		return "greater-or-equal"
	}
	return "unknown"
}

var (
	// ErrPathCreate indicates AddKeyValue could not resolve or build the
	// path for a key. This is an internal invariant violation and is raised
	// by panic.
	ErrPathCreate = errors.New("chartrie: path creation failed")
	// ErrArenaFull indicates the node arena cannot address another node.
	ErrArenaFull = errors.New("chartrie: node arena exhausted")
	// ErrBadRef indicates a Ref that does not address a live node.
	ErrBadRef = errors.New("chartrie: invalid node ref")
)
