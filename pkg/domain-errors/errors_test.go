package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	err := New(CodeNoMarket, "no market is currently running")
	assert.True(t, HasCode(err, CodeNoMarket))
	assert.False(t, HasCode(err, CodeMarketEnded))
	assert.False(t, HasCode(errors.New("plain"), CodeNoMarket))
	assert.False(t, HasCode(nil, CodeNoMarket))
}

func TestHasCodeThroughWrapping(t *testing.T) {
	inner := New(CodeBanned, "banned")
	outer := fmt.Errorf("signup failed: %w", inner)
	assert.True(t, HasCode(outer, CodeBanned))
	assert.Equal(t, CodeBanned, CodeOf(outer))
}

func TestCodeOfDefaultsToInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("socket closed")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "directory service unavailable")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "internalError")
}

func TestWithField(t *testing.T) {
	err := New(CodeCheckInNotStarted, "check-in has not started").
		WithField("startTime", "8:00 AM")
	assert.Equal(t, "8:00 AM", err.Field("startTime"))
	assert.Equal(t, "", err.Field("missing"))
}
