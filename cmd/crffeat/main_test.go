// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestCollectCountDump(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "crf.yaml", "labels: [O, LOC]\nkinds: [start, end, word]\nrare_threshold: 0\nworkers: 2\nlog_level: debug\n")
	train := writeFile(t, dir, "train.tsv", "in\tO\nParis\tLOC\n\nParis\tLOC\n")
	eval := writeFile(t, dir, "eval.tsv", "in\nParis\n\nRome\n")
	features := filepath.Join(dir, "features.txt")

	out, err := run(t, "collect", "-c", cfg, "--data", train, "--out", features)
	require.NoError(t, err)
	require.Contains(t, out, "features written")

	// start×2, word in/O, end×2, word Paris/LOC
	stored, err := os.ReadFile(features)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(stored), "2\nParis 2 1:2\nin 1 0:1\n6\n"), string(stored))

	out, err = run(t, "count", "-c", cfg, "--features", features, "--data", eval)
	require.NoError(t, err)
	// eval[0]: start 0, start 1, word in/O at 0; end 0, end 1, word Paris at 1
	// eval[1]: "Rome" is unseen; one position is both start and end, so
	// start×2 and end×2 are all legal
	require.Equal(t, "0\t6\n1\t4\n", out)

	weights := writeFile(t, dir, "weights.txt", "0.5\n1\n\n-2\n0\n0\n3\n")
	out, err = run(t, "dump", "-c", cfg, "--features", features, "--weights", weights)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	require.Equal(t, "start 0 0 0.5", lines[0])
	require.Equal(t, "word.Paris 1 1 3", lines[5])
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "collect", "-c", filepath.Join(dir, "missing.yaml"), "--data", "x")
	require.Error(t, err)

	cfg := writeFile(t, dir, "crf.yaml", "labels: [O]\n")
	_, err = run(t, "collect", "-c", cfg, "--data", filepath.Join(dir, "missing.tsv"))
	require.Error(t, err)

	_, err = run(t, "collect", "-c", cfg, "--data", "x", "--log-level", "loud")
	require.Error(t, err)

	bad := writeFile(t, dir, "features.txt", "3\nstart::0:-1 0\n")
	data := writeFile(t, dir, "eval.tsv", "a\n")
	_, err = run(t, "count", "-c", cfg, "--features", bad, "--data", data)
	require.Error(t, err)

	weights := writeFile(t, dir, "w.txt", "abc\n")
	_, err = run(t, "dump", "-c", cfg, "--features", bad, "--weights", weights)
	require.Error(t, err)
}
