package render

import (
	"fmt"

	"git.home.luguber.info/inful/docrender/docmodel"
)

// listTags holds the fixed HTML markup for one list type. itemOpen is a
// fmt format string when labeled is set; the verb consumes the item label.
type listTags struct {
	open      string
	close     string
	itemOpen  string
	itemClose string
	labeled   bool
}

// listTagTable is constructed once and read-only; the mapping is total over
// docmodel.ListType. Anything missing from it is rejected by tagsFor, never
// defaulted.
var listTagTable = map[docmodel.ListType]listTags{
	docmodel.ListBullet: {
		open: "<ul>", close: "</ul>",
		itemOpen: "<li>", itemClose: "</li>",
	},
	docmodel.ListNumber: {
		open: "<ol>", close: "</ol>",
		itemOpen: "<li>", itemClose: "</li>",
	},
	docmodel.ListUpperAlpha: {
		open: `<ol type="A">`, close: "</ol>",
		itemOpen: "<li>", itemClose: "</li>",
	},
	docmodel.ListLowerAlpha: {
		open: `<ol type="a">`, close: "</ol>",
		itemOpen: "<li>", itemClose: "</li>",
	},
	docmodel.ListLabel: {
		open: "<dl>", close: "</dl>",
		itemOpen: "<dt>%s</dt><dd>", itemClose: "</dd>",
		labeled: true,
	},
	docmodel.ListNote: {
		open: "<table>", close: "</table>",
		itemOpen: `<tr><td valign="top">%s:</td><td>`, itemClose: "</td></tr>",
		labeled: true,
	},
}

// tagsFor resolves the tag set for a list type. An unrecognized type is a
// parser/renderer contract violation and surfaces as ErrUnknownListType.
func tagsFor(t docmodel.ListType) (listTags, error) {
	tags, ok := listTagTable[t]
	if !ok {
		return listTags{}, fmt.Errorf("%w: %s", ErrUnknownListType, t)
	}
	return tags, nil
}
