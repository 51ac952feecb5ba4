package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestWrapKeepsIdentity(t *testing.T) {
	wrapped := Wrapf(Wrap(errFirst, "inner"), "outer %d", 1)

	assert.True(t, Is(wrapped, errFirst))
	assert.False(t, Is(wrapped, errSecond))
	assert.Equal(t, "outer 1: inner: first", wrapped.Error())
}

func TestIsAny(t *testing.T) {
	wrapped := WithStack(errSecond)

	assert.True(t, IsAny(wrapped, errFirst, errSecond))
	assert.False(t, IsAny(wrapped, errFirst))
	assert.False(t, IsAny(nil, errFirst))
}
