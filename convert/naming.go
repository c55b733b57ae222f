package convert

import (
	"path/filepath"
	"strings"

	"github.com/arloliu/reflbin/format"
)

// OutputPath returns the output file name for input.
//
// A compression suffix on the input is removed first. ICP output is the base
// name prefixed with "I"; VTK output replaces the last extension with ".vtk".
// The file goes into dir, or next to the input when dir is empty, and carries
// the output codec's suffix when ct compresses.
//
// Examples:
//
//	OutputPath("data/run12.psd.gz", format.ICP, "", format.CompressionNone)   // data/Irun12.psd
//	OutputPath("data/run12.psd.gz", format.VTK, "out", format.CompressionZstd) // out/run12.vtk.zst
func OutputPath(input string, f format.OutputFormat, dir string, ct format.CompressionType) string {
	base := filepath.Base(input)
	if ext := format.CompressionFromPath(base).Extension(); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	if dir == "" {
		dir = filepath.Dir(input)
	}

	var name string
	switch f {
	case format.VTK:
		name = strings.TrimSuffix(base, filepath.Ext(base)) + ".vtk"
	default:
		name = "I" + base
	}

	return filepath.Join(dir, name) + ct.Extension()
}
