package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/reflbin/convert"
	"github.com/arloliu/reflbin/errs"
	"github.com/arloliu/reflbin/format"
	"github.com/arloliu/reflbin/internal/monitoring"
)

func configOf(t *testing.T, cli *cliArgs) convert.Config {
	t.Helper()
	c, err := convert.New(cli.opts...)
	require.NoError(t, err)

	return c.Config()
}

func TestParseArgs_Defaults(t *testing.T) {
	cli, err := parseArgs([]string{"a.psd", "b.psd.gz"})
	require.NoError(t, err)
	require.Equal(t, []string{"a.psd", "b.psd.gz"}, cli.files)

	cfg := configOf(t, cli)
	require.Equal(t, convert.DefaultConfig(), cfg)
}

func TestParseArgs_Flags(t *testing.T) {
	cli, err := parseArgs([]string{"-w4", "a.psd", "-h2", "-x10-200", "-y1-64", "-vtk", "-p", "-d/tmp/out", "-zzst", "b.psd"})
	require.NoError(t, err)
	require.Equal(t, []string{"a.psd", "b.psd"}, cli.files)

	cfg := configOf(t, cli)
	require.Equal(t, 4, cfg.Binning.Factor.Width)
	require.Equal(t, 2, cfg.Binning.Factor.Height)
	require.Equal(t, 9, cfg.Binning.Window.XStart)
	require.Equal(t, 199, cfg.Binning.Window.XStop)
	require.Equal(t, 0, cfg.Binning.Window.YStart)
	require.Equal(t, 63, cfg.Binning.Window.YStop)
	require.Equal(t, format.VTK, cfg.Format)
	require.Equal(t, format.KeepAlways, cfg.Binning.RowPolicy)
	require.Equal(t, format.KeepAlways, cfg.Binning.FramePolicy)
	require.Equal(t, "/tmp/out", cfg.OutputDir)
	require.Equal(t, format.CompressionZstd, cfg.OutputCompression)
}

func TestParseArgs_LastFormatWins(t *testing.T) {
	cli, err := parseArgs([]string{"-vtk", "-icp", "a"})
	require.NoError(t, err)
	require.Equal(t, format.ICP, configOf(t, cli).Format)
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  error
	}{
		{name: "zero width", args: []string{"-w0"}, err: errs.ErrInvalidBinning},
		{name: "bad height", args: []string{"-hx"}, err: errs.ErrInvalidBinning},
		{name: "range without dash", args: []string{"-x10"}, err: errs.ErrInvalidRange},
		{name: "range zero origin", args: []string{"-x0-5"}, err: errs.ErrInvalidRange},
		{name: "range reversed", args: []string{"-y9-2"}, err: errs.ErrInvalidRange},
		{name: "dir with space", args: []string{"-d", "out"}, err: errs.ErrInvalidConfig},
		{name: "unknown codec", args: []string{"-zbz2"}, err: errs.ErrUnsupportedCompression},
		{name: "unknown flag", args: []string{"-q"}, err: errs.ErrInvalidConfig},
		{name: "misspelled format", args: []string{"-vtx"}, err: errs.ErrUnknownFormat},
		{name: "format prefix only", args: []string{"-i"}, err: errs.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(tt.args)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRun(t *testing.T) {
	prev := monitoring.Logf
	monitoring.SetLogger(nil)
	t.Cleanup(func() { monitoring.SetLogger(prev) })

	dir := t.TempDir()
	in := filepath.Join(dir, "scan.psd")
	require.NoError(t, os.WriteFile(in, []byte(" Mot: 1\nQZ\n#P1\n1,2;\n3,4\n"), 0o600))

	t.Run("usage", func(t *testing.T) {
		var stderr bytes.Buffer
		require.Equal(t, 0, run(nil, &stderr))
		require.Contains(t, stderr.String(), "usage: reflbin")
	})

	t.Run("bad flag", func(t *testing.T) {
		var stderr bytes.Buffer
		require.Equal(t, 1, run([]string{"-w0", in}, &stderr))
		require.Contains(t, stderr.String(), "invalid binning factor")
		require.NoFileExists(t, filepath.Join(dir, "Iscan.psd"))
	})

	t.Run("convert", func(t *testing.T) {
		var stderr bytes.Buffer
		require.Equal(t, 0, run([]string{"-w1", "-h1", in}, &stderr))

		got, err := os.ReadFile(filepath.Join(dir, "Iscan.psd"))
		require.NoError(t, err)
		require.Equal(t, " Mot: 1\nQZ\n#P1\n 1,3\n 2,4\n", string(got))
	})

	t.Run("missing file", func(t *testing.T) {
		var stderr bytes.Buffer
		require.Equal(t, 1, run([]string{in, filepath.Join(dir, "nope.psd")}, &stderr))
	})
}
