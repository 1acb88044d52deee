package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/yamlbridge/errors"
)

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	valid := filepath.Join(dir, "valid.yaml")
	require.NoError(t, os.WriteFile(valid, []byte("a: 1\n"), 0o600))
	overflow := filepath.Join(dir, "overflow.yaml")
	require.NoError(t, os.WriteFile(overflow, []byte("a: 99999999999999999999\n"), 0o600))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"version", []string{"version"}, errUtils.ExitCodeSuccess},
		{"convert", []string{"convert", valid, "--logs-file", "/dev/null"}, errUtils.ExitCodeSuccess},
		{"range error", []string{"convert", overflow, "--logs-file", "/dev/null"}, errUtils.ExitCodeInput},
		{"missing file", []string{"convert", filepath.Join(dir, "missing.yaml")}, errUtils.ExitCodeInput},
		{"unknown command", []string{"frobnicate"}, errUtils.ExitCodeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()
			os.Args = append([]string{"yamlbridge"}, tt.args...)

			assert.Equal(t, tt.want, run(context.Background()))
		})
	}
}
