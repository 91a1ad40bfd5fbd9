package result_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgekit/textfile/result"
)

func TestValue(t *testing.T) {
	r := result.Value("hello")

	v, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
	assert.True(t, r.Ok())
	assert.Equal(t, "hello", r.MustValue())
}

func TestError(t *testing.T) {
	cause := errors.New("boom")
	r := result.Error[string](cause)

	v, err := r.Get()
	assert.Equal(t, "", v)
	assert.Equal(t, cause, err)
	assert.False(t, r.Ok())
	assert.Equal(t, cause, r.Err())
	assert.Panics(t, func() { r.MustValue() })
}

func TestErrorWithNil(t *testing.T) {
	// A nil error is equivalent to the zero value.
	r := result.Error[int](nil)
	assert.True(t, r.Ok())
	assert.Equal(t, 0, r.MustValue())
}
