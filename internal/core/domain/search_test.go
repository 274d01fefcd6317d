package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleCorpus(t *testing.T) {
	scope := SingleCorpus("ipc")

	assert.False(t, scope.All)
	assert.Equal(t, "ipc", scope.Corpus)
	assert.Equal(t, "ipc", scope.String())
}

func TestAllCorpora(t *testing.T) {
	scope := AllCorpora()

	assert.True(t, scope.All)
	assert.Empty(t, scope.Corpus)
	assert.Equal(t, "all", scope.String())
}
