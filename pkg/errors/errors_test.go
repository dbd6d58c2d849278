package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsSentinelInChain(t *testing.T) {
	err := Wrap(ErrNotFound, "post ABC123 is gone")
	assert.True(t, IsNotFound(err))
	assert.False(t, IsBadInput(err))
	assert.Equal(t, "post ABC123 is gone: not found", err.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "user-facing text", Message(Wrap(ErrUpstream, "user-facing text")))
	assert.Equal(t, "plain", Message(New("plain")))

	// Errors wrapped with fmt keep the sentinel but surface their own text.
	plain := fmt.Errorf("upstream status 502: %w", ErrUpstream)
	assert.True(t, IsUpstream(plain))
	assert.Equal(t, "upstream status 502: upstream fetch failed", Message(plain))
}

func TestMessageUsesOutermostWrap(t *testing.T) {
	inner := Wrap(ErrUpstream, "inner detail")
	outer := Wrap(inner, "outer message")
	assert.Equal(t, "outer message", Message(outer))
	assert.True(t, IsUpstream(outer))
}
