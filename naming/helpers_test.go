package naming

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil error", nil, KindGeneric},
		{"naming error", New(KindNameNotFound, "missing"), KindNameNotFound},
		{"wrapped naming error", fmt.Errorf("lookup: %w", New(KindNoPermission, "denied")), KindNoPermission},
		{"standard error", stderrors.New("plain"), KindGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetKind(tt.err))
		})
	}
}

func TestGetClassification(t *testing.T) {
	require.Equal(t, ClassificationPermanent, GetClassification(nil))
	require.Equal(t, ClassificationPermanent, GetClassification(stderrors.New("plain")))
	require.Equal(t, ClassificationRetryable, GetClassification(New(KindCommunication, "reset")))
}

func TestIsRetryable(t *testing.T) {
	require.False(t, IsRetryable(nil))
	require.False(t, IsRetryable(New(KindNameNotFound, "missing")))
	require.True(t, IsRetryable(fmt.Errorf("op: %w", New(KindTimeLimitExceeded, "slow"))))
}

func TestRootCause(t *testing.T) {
	cause := stderrors.New("directory said no")
	err := Wrap(cause, KindNoPermission, "denied")

	require.Equal(t, cause, RootCause(err))
	require.Equal(t, cause, RootCause(fmt.Errorf("outer: %w", err)))
	require.Nil(t, RootCause(nil))
	require.Nil(t, RootCause(cause))
	require.Nil(t, RootCause(New(KindGeneric, "no cause")))
}

func TestIsAndAs(t *testing.T) {
	cause := stderrors.New("cause")
	err := Wrap(cause, KindGeneric, "wrapped")

	require.True(t, Is(err, cause))

	var namingErr NamingError
	require.True(t, As(fmt.Errorf("outer: %w", err), &namingErr))
	require.Equal(t, KindGeneric, namingErr.Kind())
}
