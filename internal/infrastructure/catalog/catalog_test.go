package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Les 12 tags de template documentés par l'outil d'export.
var knownTags = []string{
	"^value(expression)^",
	"^action( action )^",
	"^if( condition )^",
	"^else^",
	"^endIf^",
	"^include( ^value(item|group)^[, ^value(template)^] )^",
	"^title( [item] )^",
	"^text( [item, N, plain] )^",
	"^children( [template][,N] )^",
	"^descendants( [template][,N] )^",
	"^root^",
	"^url( item )^",
}

func TestLookupKnownTags(t *testing.T) {
	cat := New("ja")
	for _, tag := range knownTags {
		assert.NotEmpty(t, cat.Lookup(tag), "tag %s", tag)
	}
}

func TestLookupRoot(t *testing.T) {
	cat := New("ja")
	require.Equal(t,
		"サイトのルートディレクトリへの相対パスを書き出します。画像やCSSへのパス指定に便利です。",
		cat.Lookup("^root^"))
}

func TestLookupUnknownTag(t *testing.T) {
	cat := New("ja")
	assert.Equal(t, "", cat.Lookup("^unknownTag^"))
	assert.Equal(t, "", cat.Lookup(""))
}

func TestColumnLabel(t *testing.T) {
	assert.Equal(t, "DescriptionJa", New("ja").ColumnLabel())
}

func TestInvalidLocaleFallsBackToJapanese(t *testing.T) {
	cat := New("pas une locale !")
	assert.Equal(t, "DescriptionJa", cat.ColumnLabel())
	assert.NotEmpty(t, cat.Lookup("^root^"))
}
