package fmod

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soniccore/fmod-go/abi"
)

func TestErrFromZeroIsNil(t *testing.T) {
	require.NoError(t, errFrom(abi.OK))
}

func TestErrFromIsDeterministic(t *testing.T) {
	for code := int32(-1); code <= 100; code++ {
		first := errFrom(abi.Result(code))
		second := errFrom(abi.Result(code))
		require.Equal(t, first, second, "code %d", code)
		if code == 0 {
			require.NoError(t, first)
			continue
		}
		var e Error
		require.ErrorAs(t, first, &e)
		require.Equal(t, code, e.Code())
	}
}

func TestErrorSentinels(t *testing.T) {
	err := errFrom(abi.ErrFileNotFound)
	require.ErrorIs(t, err, ErrFileNotFound)
	require.NotErrorIs(t, err, ErrFileBad)
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  Error
		kind Kind
	}{
		{ErrBadCommand, KindCommand},
		{ErrInitialized, KindCommand},
		{ErrMemory, KindResource},
		{ErrChannelStolen, KindStale},
		{ErrInvalidHandle, KindStale},
		{ErrInvalidParam, KindFormat},
		{ErrNotReady, KindNotReady},
		{ErrFileEOF, KindEndOfData},
		{ErrFileNotFound, KindIO},
		{ErrHTTPTimeout, KindNetwork},
		{ErrOutputInit, KindOutput},
		{ErrPluginMissing, KindPlugin},
		{ErrHeaderMismatch, KindVersion},
		{ErrInternal, KindInternal},
		{ErrInternalWrapper, KindWrapper},
		{Error(9999), KindUnknown},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("code_%d", tt.err.Code()), func(t *testing.T) {
			require.Equal(t, tt.kind, tt.err.Kind())
		})
	}
}

func TestEveryKnownCodeHasMessageAndKind(t *testing.T) {
	for code := int32(1); code <= int32(abi.ErrTooManySamples); code++ {
		e := Error(code)
		require.NotEqual(t, KindUnknown, e.Kind(), "code %d", code)
		require.NotEmpty(t, e.message(), "code %d", code)
	}
}

func TestUnknownCodeStillRepresentable(t *testing.T) {
	err := errFrom(abi.Result(4242))
	var e Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, int32(4242), e.Code())
	require.Equal(t, KindUnknown, e.Kind())
	require.Contains(t, e.Error(), "4242")
}

func TestKindHelpers(t *testing.T) {
	require.True(t, IsStale(errFrom(abi.ErrChannelStolen)))
	require.True(t, IsStale(errFrom(abi.ErrInvalidHandle)))
	require.False(t, IsStale(errFrom(abi.ErrNotReady)))
	require.False(t, IsStale(nil))

	require.True(t, IsNotReady(errFrom(abi.ErrNotReady)))
	require.False(t, IsNotReady(errFrom(abi.ErrFileEOF)))
	require.False(t, IsNotReady(errors.New("plain")))
}

func TestResultOfRoundTrip(t *testing.T) {
	require.Equal(t, abi.OK, resultOf(nil))
	require.Equal(t, abi.ErrNotReady, resultOf(ErrNotReady))
	// Arbitrary user errors carry no code; the boundary reports them
	// as wrapper-internal.
	require.Equal(t, abi.ErrInternalWrapper, resultOf(errors.New("user failure")))
}
