package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docrender/docmodel"
)

func TestTagsForCoversEveryListType(t *testing.T) {
	types := []docmodel.ListType{
		docmodel.ListBullet,
		docmodel.ListLabel,
		docmodel.ListLowerAlpha,
		docmodel.ListNote,
		docmodel.ListNumber,
		docmodel.ListUpperAlpha,
	}

	for _, lt := range types {
		t.Run(lt.String(), func(t *testing.T) {
			tags, err := tagsFor(lt)
			require.NoError(t, err)
			assert.NotEmpty(t, tags.open)
			assert.NotEmpty(t, tags.close)
			assert.NotEmpty(t, tags.itemOpen)
			assert.NotEmpty(t, tags.itemClose)
		})
	}
}

func TestTagsForUnknownTypeIsFatal(t *testing.T) {
	_, err := tagsFor(docmodel.ListType(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownListType)
}

func TestAlphaListsCarryTypeAttribute(t *testing.T) {
	upper, err := tagsFor(docmodel.ListUpperAlpha)
	require.NoError(t, err)
	assert.Equal(t, `<ol type="A">`, upper.open)

	lower, err := tagsFor(docmodel.ListLowerAlpha)
	require.NoError(t, err)
	assert.Equal(t, `<ol type="a">`, lower.open)
}
