package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyze_Tokens(t *testing.T) {
	out, err := run(t, "", "analyze", "0.5 + 1")
	require.NoError(t, err)
	assert.Equal(t, "Number(0.5)\nPlus\nNumber(1)\n", out)
}

func TestAnalyze_Expr(t *testing.T) {
	out, err := run(t, "", "analyze", "--format", "expr", "1 -2", "3*4")
	require.NoError(t, err)
	assert.Equal(t, "1 - 2\n3 * 4\n", out)
}

func TestAnalyze_JSON(t *testing.T) {
	out, err := run(t, "", "analyze", "--format", "json", "7/0")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"kind":"number","value":7},{"kind":"operator","operator":"/"},{"kind":"number","value":0}]`, out)
}

func TestAnalyze_Stdin(t *testing.T) {
	out, err := run(t, "1 + 1\n2 * 2\n", "analyze", "--format", "expr")
	require.NoError(t, err)
	assert.Equal(t, "1 + 1\n2 * 2\n", out)
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := run(t, "", "analyze", "01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad number")

	_, err = run(t, "", "analyze", "1 +")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad expression structure")

	out, err := run(t, "", "analyze", "--format", "expr", "1", "2 +", "3")
	require.Error(t, err)
	assert.Equal(t, "1\n", out, "stops at the first failure")

	_, err = run(t, "", "analyze", "--format", "xml", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}
