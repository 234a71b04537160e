package wireerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMandateSatisfies(t *testing.T) {
	assert.True(t, ExactlyN(4).Satisfies(4))
	assert.False(t, ExactlyN(4).Satisfies(3))
	assert.True(t, AtLeastN(4).Satisfies(5))
	assert.False(t, AtLeastN(4).Satisfies(3))
}

func TestWireErrorAsMatchesKind(t *testing.T) {
	err := ErrWrongRecordLength(3, ExactlyN(4))

	var we *WireError
	require := assert.New(t)
	require.True(errors.As(err, &we))
	require.Equal(WrongRecordLength, we.Kind)
	require.Equal(3, we.Stated)
}

func TestTransportErrorUnwrap(t *testing.T) {
	inner := errors.New("dial tcp: connection refused")
	err := ErrNetworkError(inner)

	assert.ErrorIs(t, err, inner)
}

func TestErrWrongHttpStatusCarriesCode(t *testing.T) {
	err := ErrWrongHttpStatus(503, "Service Unavailable")

	var te *TransportError
	require := assert.New(t)
	require.True(errors.As(err, &te))
	require.Equal(503, te.StatusCode)
	require.Equal("Service Unavailable", te.Reason)
}

func TestErrMismatchedResponseIsProtocolPhase(t *testing.T) {
	err := ErrMismatchedResponse()

	var te *TransportError
	require := assert.New(t)
	require.True(errors.As(err, &te))
	require.Equal(MismatchedResponse, te.Kind)
	require.Equal(PhaseProtocol, te.Phase)
}
