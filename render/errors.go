package render

// Sentinel errors for the rendering engine. These separate contract bugs
// between parser and renderer from anything a malformed document could cause;
// malformed markup never produces an error here, only degraded output.

import "errors"

var (
	// ErrUnknownListType indicates a list event carried a ListType outside
	// the supported enum. The tag mapping is total over the enum, so this is
	// an internal formatting contract violation and aborts the render.
	ErrUnknownListType = errors.New("unknown list type")
	// ErrListStackUnderflow indicates a list-end or list-item event arrived
	// with no list open. The node producer is broken.
	ErrListStackUnderflow = errors.New("list event without open list")
)
