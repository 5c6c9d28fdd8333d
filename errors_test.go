package sear

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := NewError(ErrCrypto, "seal failed", cause)

	require.True(t, errors.Is(err, ErrCrypto))
	require.False(t, errors.Is(err, ErrParse))
	require.True(t, errors.Is(err, cause))
}

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := Errorf(ErrOverflow, "header too large: %d bytes", 70000)
	require.True(t, errors.Is(err, ErrOverflow))
	require.Equal(t, "sear: overflow: header too large: 70000 bytes", err.Error())
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("inner")
	err := NewError(ErrIO, "write failed", cause)
	require.Equal(t, cause, errors.Unwrap(err))
}
