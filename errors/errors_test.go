package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelWrapping(t *testing.T) {
	err := Wrap(ErrInvalidRequest, "requirement text is empty")

	assert.True(t, Is(err, ErrInvalidRequest))
	assert.True(t, IsInvalidRequestError(err))
	assert.False(t, IsNotFoundError(err))
}

func TestNewInvalidRequestError(t *testing.T) {
	err := NewInvalidRequestError("bad field %q", "requirement")

	assert.True(t, IsInvalidRequestError(err))
	assert.Contains(t, err.Error(), `bad field "requirement"`)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("artifact %s", "test_plan_20240101_120000.md")

	assert.True(t, IsNotFoundError(err))
	assert.Contains(t, err.Error(), "test_plan_20240101_120000.md")
}

func TestNilChecks(t *testing.T) {
	assert.False(t, IsInvalidRequestError(nil))
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsWriteFaultError(nil))
}

func TestMarkClassifiesWriteFault(t *testing.T) {
	err := Mark(Wrap(New("disk full"), "failed to write artifact test_cases.csv"), ErrWriteFault)

	assert.True(t, IsWriteFaultError(err))
	assert.False(t, IsInvalidRequestError(err))
	assert.Contains(t, err.Error(), "disk full")
}

func TestWrapPreservesChain(t *testing.T) {
	inner := New("disk full")
	err := Wrap(Wrap(ErrWriteFault, inner.Error()), "writing test_cases artifact")

	assert.True(t, Is(err, ErrWriteFault))
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "writing test_cases artifact")
}
