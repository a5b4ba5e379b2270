package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperr "github.com/KirkDiggler/counterpick-bot/internal/errors"
)

func TestWrap_PreservesCodeAndMeta(t *testing.T) {
	base := apperr.NotFoundf("hero %q not found", "zed").WithMeta("name", "zed")
	wrapped := apperr.Wrap(base, "lookup failed")

	assert.True(t, apperr.IsNotFound(wrapped))
	assert.Equal(t, "zed", apperr.GetMeta(wrapped)["name"])
	assert.Equal(t, `lookup failed: hero "zed" not found`, wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, base))

	// metadata is copied, not shared
	wrapped.WithMeta("extra", 1)
	assert.NotContains(t, base.Meta, "extra")
}

func TestWrap_PlainError(t *testing.T) {
	wrapped := apperr.Wrapf(fmt.Errorf("boom"), "step %d", 2)
	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(wrapped))
	assert.Equal(t, "step 2: boom", wrapped.Error())
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, apperr.Wrap(nil, "x"))
	assert.Nil(t, apperr.Wrapf(nil, "x"))
	assert.Nil(t, apperr.WrapWithCode(nil, apperr.CodeInternal, "x"))
}

func TestWrapWithCode(t *testing.T) {
	err := apperr.WrapWithCode(fmt.Errorf("dial tcp"), apperr.CodeUnavailable, "redis down")
	assert.True(t, apperr.Is(err, apperr.CodeUnavailable))
	assert.False(t, apperr.IsNotFound(err))
}

func TestCodeHelpers(t *testing.T) {
	assert.True(t, apperr.IsInvalidArgument(apperr.InvalidArgument("bad")))
	assert.True(t, apperr.IsFailedPrecondition(apperr.FailedPreconditionf("step %s", "x")))
	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(fmt.Errorf("plain")))
	assert.Nil(t, apperr.GetMeta(fmt.Errorf("plain")))
}
