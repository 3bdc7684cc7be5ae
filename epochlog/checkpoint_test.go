package epochlog

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.New("TEST")
	m.Run()
}

func testKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	return key
}

func TestSignAndVerifyCheckpointRoundTrip(t *testing.T) {
	key := testKey(t)

	l := NewLog(uuid.New())
	require.NoError(t, l.Append(1, digestOf(1)))
	state, err := l.State(1000)
	require.NoError(t, err)

	msg, err := Sign(key, "test-key", state)
	require.NoError(t, err)

	got, err := VerifyCheckpoint(&key.PublicKey, msg)
	require.NoError(t, err)
	require.Equal(t, state, got)
}

func TestVerifyCheckpointRejectsWrongKey(t *testing.T) {
	key := testKey(t)
	otherKey := testKey(t)

	l := NewLog(uuid.New())
	require.NoError(t, l.Append(1, digestOf(1)))
	state, err := l.State(1000)
	require.NoError(t, err)

	msg, err := Sign(key, "test-key", state)
	require.NoError(t, err)

	_, err = VerifyCheckpoint(&otherKey.PublicKey, msg)
	require.Error(t, err)
}

func TestVerifyCheckpointRejectsTamperedSignature(t *testing.T) {
	key := testKey(t)

	l := NewLog(uuid.New())
	require.NoError(t, l.Append(1, digestOf(1)))
	state, err := l.State(1000)
	require.NoError(t, err)

	msg, err := Sign(key, "test-key", state)
	require.NoError(t, err)

	tampered := append([]byte(nil), msg...)
	tampered[len(tampered)-1] ^= 0xff

	_, err = VerifyCheckpoint(&key.PublicKey, tampered)
	require.Error(t, err)
}
