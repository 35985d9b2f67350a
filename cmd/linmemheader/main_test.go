package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/golinmem/linmem/internal/testing/require"
)

func TestHeader(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "linmem_cabi.h")

	exitCode, _, stdErr := runMain(t, []string{"header", outPath})
	require.Equal(t, 0, exitCode)
	require.Equal(t, "", stdErr)

	contents, err := os.ReadFile(outPath)
	require.NoError(t, err)

	require.Contains(t, string(contents), "#ifndef LINMEM_CABI_H")
	require.Contains(t, string(contents), "uintptr_t alloc(uint32_t pages);")
	require.Contains(t, string(contents), "int64_t atomic_compare_exchange_i64_to_i32(uintptr_t handle, int32_t addr, int64_t current, int64_t new_val);")
}

func TestHelp(t *testing.T) {
	exitCode, _, stdErr := runMain(t, []string{"-h"})
	require.Equal(t, 0, exitCode)
	require.Contains(t, stdErr, "linmemheader <command>")
}

func TestHeaderErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "missing out_path",
			args:    []string{"header"},
			message: "missing out_path",
		},
		{
			name:    "invalid command",
			args:    []string{"bogus"},
			message: "invalid command",
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			exitCode, _, stdErr := runMain(t, tt.args)
			require.Equal(t, 1, exitCode)
			require.Contains(t, stdErr, tt.message)
		})
	}
}

func runMain(t *testing.T, args []string) (int, string, string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() {
		os.Args = oldArgs
	})
	os.Args = append([]string{"linmemheader"}, args...)

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}
	exitCode := doMain(stdOut, stdErr)

	return exitCode, stdOut.String(), stdErr.String()
}
