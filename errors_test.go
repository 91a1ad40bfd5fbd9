package textfile

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("underlying cause")
	err := &Error{Code: CodeNotFound, Op: "open", Path: "hello.txt", Err: cause}

	assert.Equal(t, `textfile: open "hello.txt": NOT_FOUND: underlying cause`, err.Error())
	assert.Equal(t, cause, err.Unwrap())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
	}{
		{
			name: "not exist",
			err:  fmt.Errorf("billy: open %q: %w", "hello.txt", fs.ErrNotExist),
			code: CodeNotFound,
		},
		{
			name: "permission",
			err:  fmt.Errorf("billy: open %q: %w", "hello.txt", fs.ErrPermission),
			code: CodePermission,
		},
		{
			name: "other",
			err:  errors.New("device not configured"),
			code: CodeIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Classify("open", "hello.txt", tt.err)
			assert.Equal(t, tt.code, e.Code)
			assert.Equal(t, "open", e.Op)
			assert.Equal(t, "hello.txt", e.Path)
			assert.True(t, errors.Is(e, tt.err), "cause must stay in the chain")
		})
	}
}

func TestErrorIsSentinels(t *testing.T) {
	notFound := Classify("open", "f", fs.ErrNotExist)
	assert.True(t, errors.Is(notFound, ErrNotFound))
	assert.False(t, errors.Is(notFound, ErrPermission))

	denied := Classify("open", "f", fs.ErrPermission)
	assert.True(t, errors.Is(denied, ErrPermission))
	assert.False(t, errors.Is(denied, ErrNotFound))
}

func TestCodeOf(t *testing.T) {
	e := Classify("read", "f", errors.New("short read"))
	require.Equal(t, CodeIO, CodeOf(e))

	// The code survives further wrapping.
	wrapped := fmt.Errorf("loading config: %w", e)
	assert.Equal(t, CodeIO, CodeOf(wrapped))

	assert.Equal(t, CodeUnknown, CodeOf(errors.New("plain")))
	assert.Equal(t, CodeUnknown, CodeOf(nil))
}
