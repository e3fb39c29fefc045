package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTense(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("were", Tense(0))
	assert.Equal("was", Tense(1))
	assert.Equal("were", Tense(2))
	assert.Equal("were", Tense(-1))
}

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("line 2: add", From("line %d: %v", 2, "add"))
	assert.Equal("plain", From("plain"))
}
