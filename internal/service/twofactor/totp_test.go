package twofactor

import (
	"encoding/base32"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 6238 appendix B vectors, truncated to six digits, for the
// standard SHA-1 test key.
func TestTOTPAt_ReferenceVectors(t *testing.T) {
	secret := base32.StdEncoding.WithPadding(base32.NoPadding).
		EncodeToString([]byte("12345678901234567890"))

	cases := []struct {
		unix int64
		code string
	}{
		{59, "287082"},
		{1111111109, "081804"},
		{1111111111, "050471"},
		{1234567890, "005924"},
		{2000000000, "279037"},
	}

	for _, tc := range cases {
		code, err := totpAt(secret, time.Unix(tc.unix, 0).UTC())
		require.NoError(t, err)
		assert.Equal(t, tc.code, code, "at unix %d", tc.unix)
	}
}

func TestVerifyTOTP_AcceptsAdjacentStep(t *testing.T) {
	secret, err := generateSecret()
	require.NoError(t, err)

	now := time.Date(2024, 6, 3, 10, 0, 15, 0, time.UTC)

	previous, err := totpAt(secret, now.Add(-30*time.Second))
	require.NoError(t, err)
	next, err := totpAt(secret, now.Add(30*time.Second))
	require.NoError(t, err)

	assert.True(t, verifyTOTP(secret, previous, now))
	assert.True(t, verifyTOTP(secret, next, now))
	assert.False(t, verifyTOTP(secret, "000000", now))
}

func TestTOTPAt_RejectsBadSecret(t *testing.T) {
	_, err := totpAt("not-base32!", time.Now())
	assert.Error(t, err)
}
