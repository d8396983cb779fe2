package modelerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	err := WithNames(UnspecifiedParameter, "missing values for referenced parameters", []string{"k1", "k2"})

	assert.True(t, errors.Is(err, Sentinel(UnspecifiedParameter)))
	assert.False(t, errors.Is(err, Sentinel(MalformedReaction)))
	assert.Contains(t, err.Error(), "k1")
	assert.Contains(t, err.Error(), "k2")
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(UnparseableRate, "rate string rejected", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}
