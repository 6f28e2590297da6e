package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowName(t *testing.T) {
	assert.Equal(t, "^root^", Row{"^root^", "Root."}.Name())
	assert.Equal(t, "", Row{}.Name())
}

func TestSetLocalized(t *testing.T) {
	// Moins de 3 champs: ajout.
	assert.Equal(t, Row{"^root^", "Root.", "ルート"},
		Row{"^root^", "Root."}.SetLocalized("ルート"))

	// 3 champs ou plus: écrasement de l'index 2, le reste intact.
	assert.Equal(t, Row{"^root^", "Root.", "ルート", "extra"},
		Row{"^root^", "Root.", "stale", "extra"}.SetLocalized("ルート"))
}
