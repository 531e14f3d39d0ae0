package keystore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lowerScryptN(t *testing.T) {
	// Use a lower N for faster testing
	originalScryptN := ScryptN
	ScryptN = 2
	t.Cleanup(func() { ScryptN = originalScryptN })
}

func TestSealOpen(t *testing.T) {
	lowerScryptN(t)

	payload := []byte(`{"keys":{"n":2,"k":2}}`)
	password := "my-secret-password"

	sealed, err := Seal(payload, "shares/json", password)
	require.NoError(t, err)
	require.NotEmpty(t, sealed)
	assert.True(t, IsSealed(sealed))
	assert.NotContains(t, string(sealed), `"keys"`)

	t.Logf("Keystore JSON: %s", string(sealed))

	opened, content, err := Open(sealed, password)
	require.NoError(t, err)
	assert.Equal(t, payload, opened)
	assert.Equal(t, "shares/json", content)

	_, _, err = Open(sealed, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestOpenRejectsTamperedContent(t *testing.T) {
	lowerScryptN(t)

	sealed, err := Seal([]byte("payload"), "shares/json", "pw")
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(sealed, &env))
	env.Content = "shares/binary"
	tampered, err := json.Marshal(env)
	require.NoError(t, err)

	_, _, err = Open(tampered, "pw")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestOpenUnsupported(t *testing.T) {
	lowerScryptN(t)

	sealed, err := Seal([]byte("payload"), "x", "pw")
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(sealed, &env))
	env.Crypto.KDF = "pbkdf2"
	bad, err := json.Marshal(env)
	require.NoError(t, err)
	_, _, err = Open(bad, "pw")
	assert.ErrorContains(t, err, "unsupported KDF")

	_, _, err = Open([]byte("not json"), "pw")
	assert.Error(t, err)
}

func TestIsSealed(t *testing.T) {
	assert.False(t, IsSealed([]byte(`{"keys":{"n":1,"k":1},"1":{"base":"10","value":"5"}}`)))
	assert.False(t, IsSealed([]byte(`garbage`)))
}

func TestGCMRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	ct, err := GCMEncrypt([]byte("hello"), key, []byte("ad"))
	require.NoError(t, err)

	pt, err := GCMDecrypt(ct, key, []byte("ad"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), pt)

	_, err = GCMDecrypt(ct[:4], key, nil)
	assert.Error(t, err)
}
