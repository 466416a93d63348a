package codec

import (
	"testing"

	goldap "github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TremoloSecurity/directory-ldap-api/naming"
)

func TestLDAPCodec_ToGeneric(t *testing.T) {
	tests := []struct {
		name    string
		control goldap.Control
		want    naming.Control
	}{
		{
			name:    "manage dsa it critical",
			control: goldap.NewControlManageDsaIT(true),
			want:    naming.Control{ID: goldap.ControlTypeManageDsaIT, Critical: true},
		},
		{
			name:    "manage dsa it not critical",
			control: goldap.NewControlManageDsaIT(false),
			want:    naming.Control{ID: goldap.ControlTypeManageDsaIT},
		},
		{
			name:    "paging",
			control: goldap.NewControlPaging(100),
			want: naming.Control{
				ID:    goldap.ControlTypePaging,
				Value: []byte{0x30, 0x05, 0x02, 0x01, 0x64, 0x04, 0x00},
			},
		},
		{
			name:    "opaque string control",
			control: &goldap.ControlString{ControlType: "1.3.6.1.4.1.4203.1.10.1", Criticality: true, ControlValue: "abc"},
			want:    naming.Control{ID: "1.3.6.1.4.1.4203.1.10.1", Critical: true, Value: []byte("abc")},
		},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ToGeneric(tt.control)
			require.NoError(t, err)
			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.want.Critical, got.Critical)
			assert.Equal(t, tt.want.Value, got.Value)
		})
	}
}

func TestLDAPCodec_ToGeneric_Nil(t *testing.T) {
	_, err := New().ToGeneric(nil)
	require.Error(t, err)
}

func TestLDAPCodec_FromGeneric(t *testing.T) {
	c := New()

	t.Run("manage dsa it", func(t *testing.T) {
		got, err := c.FromGeneric(naming.Control{ID: goldap.ControlTypeManageDsaIT, Critical: true})
		require.NoError(t, err)

		manage, ok := got.(*goldap.ControlManageDsaIT)
		require.True(t, ok, "got %T", got)
		assert.True(t, manage.Criticality)
	})

	t.Run("paging", func(t *testing.T) {
		got, err := c.FromGeneric(naming.Control{
			ID:    goldap.ControlTypePaging,
			Value: []byte{0x30, 0x05, 0x02, 0x01, 0x64, 0x04, 0x00},
		})
		require.NoError(t, err)

		paging, ok := got.(*goldap.ControlPaging)
		require.True(t, ok, "got %T", got)
		assert.Equal(t, uint32(100), paging.PagingSize)
		assert.Empty(t, paging.Cookie)
	})

	t.Run("unknown type", func(t *testing.T) {
		got, err := c.FromGeneric(naming.Control{ID: "1.2.3.4", Value: []byte("payload")})
		require.NoError(t, err)

		str, ok := got.(*goldap.ControlString)
		require.True(t, ok, "got %T", got)
		assert.Equal(t, "1.2.3.4", str.ControlType)
		assert.False(t, str.Criticality)
		assert.Equal(t, "payload", str.ControlValue)
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := c.FromGeneric(naming.Control{Critical: true})
		require.Error(t, err)
	})
}

func TestLDAPCodec_RoundTrip(t *testing.T) {
	controls := []goldap.Control{
		goldap.NewControlManageDsaIT(true),
		goldap.NewControlPaging(500),
		&goldap.ControlString{ControlType: "1.2.3.4", ControlValue: "opaque"},
	}

	c := New()
	for _, control := range controls {
		t.Run(control.GetControlType(), func(t *testing.T) {
			generic, err := c.ToGeneric(control)
			require.NoError(t, err)

			back, err := c.FromGeneric(generic)
			require.NoError(t, err)
			assert.Equal(t, control.GetControlType(), back.GetControlType())
			assert.Equal(t, control.Encode().Bytes(), back.Encode().Bytes())
		})
	}
}
