package errcode

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := New(CodeParse, "bad numeric portion: %q", "xx")
	assert.Equal(t, `parse error: bad numeric portion: "xx"`, err.Error())
	assert.Equal(t, CodeParse, err.Code())
}

func TestCodeOfWrapped(t *testing.T) {
	err := New(CodeDivideByZero, "modulo by zero operand")
	wrapped := errors.Wrap(err, "size arithmetic")

	assert.Equal(t, CodeDivideByZero, CodeOf(wrapped))
	assert.True(t, Is(wrapped, CodeDivideByZero))
	assert.False(t, Is(wrapped, CodeInvariant))
	assert.Equal(t, Code(0), CodeOf(errors.New("plain")))
}
