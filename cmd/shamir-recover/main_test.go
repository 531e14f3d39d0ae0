package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/izouxv/goShamir/keystore"
	"github.com/izouxv/goShamir/shamir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	// f(x) = x^2 + 3
	testcase1 = `{"keys":{"n":4,"k":3},"1":{"base":"10","value":"4"},"2":{"base":"2","value":"111"},"3":{"base":"10","value":"12"},"6":{"base":"4","value":"213"}}`
	// f(x) = 2x + 255
	testcase2 = `{"keys":{"n":3,"k":2},"1":{"base":"16","value":"101"},"3":{"base":"10","value":"261"}}`
	duplicate = `{"keys":{"n":3,"k":2},"1":{"base":"10","value":"4"},"01":{"base":"10","value":"5"}}`
)

func writeFiles(t *testing.T, docs ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(docs))
	for i, doc := range docs {
		paths[i] = filepath.Join(dir, "testcase"+string(rune('1'+i))+".json")
		require.NoError(t, os.WriteFile(paths[i], []byte(doc), 0o600))
	}
	return paths
}

func TestRunSolve(t *testing.T) {
	paths := writeFiles(t, testcase1, testcase2)

	for _, strategy := range []string{"modular", "rational"} {
		var out bytes.Buffer
		f := &solveFlags{strategy: strategy, format: "dec", jobs: 2}
		require.NoError(t, runSolve(context.Background(), &out, zap.NewNop(), "", f, paths))
		assert.Equal(t, "3\n255\n", out.String(), strategy)
	}

	var out bytes.Buffer
	f := &solveFlags{strategy: "modular", modulus: "secp256k1", format: "hex"}
	require.NoError(t, runSolve(context.Background(), &out, zap.NewNop(), "", f, paths))
	assert.Equal(t, "0x3\n0xff\n", out.String())
}

func TestRunSolveErrors(t *testing.T) {
	paths := writeFiles(t, testcase1, duplicate)

	err := runSolve(context.Background(), &bytes.Buffer{}, zap.NewNop(), "", &solveFlags{strategy: "modular", format: "dec"}, paths)
	assert.ErrorIs(t, err, shamir.ErrDuplicateXCoordinate)

	err = runSolve(context.Background(), &bytes.Buffer{}, zap.NewNop(), "", &solveFlags{strategy: "modular", format: "oct"}, paths[:1])
	assert.ErrorContains(t, err, "unknown output format")

	err = runSolve(context.Background(), &bytes.Buffer{}, zap.NewNop(), "", &solveFlags{strategy: "fft", format: "dec"}, paths[:1])
	assert.ErrorContains(t, err, "unknown strategy")

	err = runSolve(context.Background(), &bytes.Buffer{}, zap.NewNop(), "", &solveFlags{strategy: "modular", format: "dec"}, []string{"/nonexistent/shares.json"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSealThenSolve(t *testing.T) {
	originalScryptN := keystore.ScryptN
	keystore.ScryptN = 2
	defer func() { keystore.ScryptN = originalScryptN }()

	paths := writeFiles(t, testcase2)
	sealedPath := paths[0] + ".sealed"

	require.Error(t, runSeal(paths[0], sealedPath, ""))
	require.NoError(t, runSeal(paths[0], sealedPath, "pw"))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"solve", "--password", "pw", "--strategy", "rational", sealedPath})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "255\n", out.String())

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"solve", "--password", "nope", sealedPath})
	assert.ErrorIs(t, cmd.Execute(), keystore.ErrInvalidPassword)
}

func TestModuliCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"moduli"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "prime256\t256 bits (default)")
	assert.Contains(t, out.String(), "secp256k1\t256 bits")
	assert.True(t, strings.Contains(out.String(), "P-521\t521 bits"))
}

func TestSecretPassword(t *testing.T) {
	env := func(v string, ok bool) func(string) (string, bool) {
		return func(string) (string, bool) { return v, ok }
	}
	g := &globalFlags{}
	assert.Equal(t, "", g.secretPassword(env("", false)))
	assert.Equal(t, "from-env", g.secretPassword(env("from-env", true)))
	g.password = "flag"
	assert.Equal(t, "flag", g.secretPassword(env("from-env", true)))
}
