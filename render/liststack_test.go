package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docrender/docmodel"
)

func TestListStackPushPop(t *testing.T) {
	var s listStack

	s.push(docmodel.ListBullet)
	s.push(docmodel.ListNumber)
	require.Equal(t, 2, s.depth())
	assert.Equal(t, docmodel.ListNumber, s.current())

	assert.Equal(t, docmodel.ListNumber, s.pop())
	assert.Equal(t, docmodel.ListBullet, s.current())
	assert.Equal(t, docmodel.ListBullet, s.pop())
	assert.Equal(t, 0, s.depth())
}

func TestListStackPendingClose(t *testing.T) {
	var s listStack

	s.push(docmodel.ListBullet)
	assert.Equal(t, "", s.takePendingClose(), "fresh list has no item open")

	s.setPendingClose("</li>")
	assert.Equal(t, "</li>", s.takePendingClose())
	assert.Equal(t, "", s.takePendingClose(), "take clears the slot")
}

func TestListStackPendingClosePerLevel(t *testing.T) {
	var s listStack

	s.push(docmodel.ListBullet)
	s.setPendingClose("</li>")
	s.push(docmodel.ListLabel)

	// The inner list starts with its own empty slot; the outer slot is
	// untouched until the inner list is popped.
	assert.Equal(t, "", s.takePendingClose())
	s.setPendingClose("</dd>")
	assert.Equal(t, "</dd>", s.takePendingClose())

	s.pop()
	assert.Equal(t, "</li>", s.takePendingClose())
}
