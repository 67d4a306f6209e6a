package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", digest)
	assert.True(t, h.Verify("correct horse", digest))
	assert.False(t, h.Verify("battery staple", digest))
}

func TestHashIsSalted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Verify("same", a))
	assert.True(t, h.Verify("same", b))
}

func TestVerifyMalformedDigest(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("x", ""))
	assert.False(t, h.Verify("x", "not-a-bcrypt-digest"))
}

func TestHashAcceptsLongPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	long := strings.Repeat("a", 100)

	digest, err := h.Hash(long)
	require.NoError(t, err)
	assert.True(t, h.Verify(long, digest))

	// Inputs that only differ past byte 72 must not collide.
	assert.False(t, h.Verify(strings.Repeat("a", 72)+"b", digest))
	assert.False(t, h.Verify(strings.Repeat("a", 72), digest))
}

func TestHashShortPasswordIsPlainBcrypt(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	exact := strings.Repeat("z", 72)

	digest, err := h.Hash(exact)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(digest), []byte(exact)))
}

func TestHashEmptyPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("")
	require.NoError(t, err)
	assert.True(t, h.Verify("", digest))
	assert.False(t, h.Verify("x", digest))
}

func TestNewHasherFallsBackToDefaultCost(t *testing.T) {
	assert.Equal(t, DefaultCost, NewHasher(0).cost)
	assert.Equal(t, DefaultCost, NewHasher(99).cost)
	assert.Equal(t, 12, NewHasher(12).cost)
}
