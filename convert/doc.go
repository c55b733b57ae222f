// Package convert drives the conversion of scan files.
//
// A scan file is a text header, a " Mot:" line, a column header line and then
// one block per acquisition point: a metadata line followed by the point's
// frame in the comma/semicolon matrix notation. For each file the converter
// creates a ScanFile holding all per-file state, tokenizes frame after frame,
// bins and accumulates them, reconciles their shape, and streams them to the
// ICP or VTK encoder. ICP frames are transposed to column-major order first.
//
// Files are processed strictly one after another. A file that cannot be read
// or violates a hard bound fails on its own; ConvertFiles logs it and moves on
// to the next file.
//
// Example:
//
//	c, err := convert.New(
//		convert.WithBinning(4, 4),
//		convert.WithFormat(format.VTK),
//		convert.WithOutputDir("out"),
//	)
//	if err != nil {
//		return err
//	}
//	res := c.ConvertFiles(paths)
//	if res.Failed() {
//		return res.Err()
//	}
package convert
