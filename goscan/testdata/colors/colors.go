package colors

// Color is a paint color.
type Color int //enums:enum

const (
	Red Color = iota
	Green
	Blue
)

// FileMode groups access bits.
//
//enums:flags
type FileMode uint32

const (
	ModeRead  FileMode = 1 << iota // readable
	ModeWrite                      // writable
	ModeExec
	ModeAll FileMode = ModeRead | ModeWrite | ModeExec
)

const ModeNone FileMode = 0

type internalKind int

const (
	kindA internalKind = iota
	kindB
)

// Label has a non-integer base and is ignored even when marked.
type Label string //enums:enum
