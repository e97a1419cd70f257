package render

import "git.home.luguber.info/inful/docrender/docmodel"

// listStack tracks the currently open lists and, per open list, the deferred
// item-close tag that must be emitted before the next sibling item or the
// list's own close tag. The two slices move in lockstep: one pendingClose
// slot exists per open list at all times.
//
// All operations are O(1). Depth equals the document's current list nesting,
// so callers never need to pre-size it.
type listStack struct {
	types        []docmodel.ListType
	pendingClose []string
}

// push opens a list of the given type with no item pending.
func (s *listStack) push(t docmodel.ListType) {
	s.types = append(s.types, t)
	s.pendingClose = append(s.pendingClose, "")
}

// pop closes the innermost list, returning its type.
func (s *listStack) pop() docmodel.ListType {
	last := len(s.types) - 1
	t := s.types[last]
	s.types = s.types[:last]
	s.pendingClose = s.pendingClose[:last]
	return t
}

// current returns the innermost open list type.
func (s *listStack) current() docmodel.ListType {
	return s.types[len(s.types)-1]
}

// takePendingClose returns the innermost pending item-close tag and clears
// the slot. It returns "" when no item is open.
func (s *listStack) takePendingClose() string {
	last := len(s.pendingClose) - 1
	tag := s.pendingClose[last]
	s.pendingClose[last] = ""
	return tag
}

// setPendingClose records the item-close tag to emit before the next item or
// at list end.
func (s *listStack) setPendingClose(tag string) {
	s.pendingClose[len(s.pendingClose)-1] = tag
}

// depth reports the number of open lists.
func (s *listStack) depth() int { return len(s.types) }
