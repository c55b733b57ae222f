package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/reflbin"
	"github.com/arloliu/reflbin/errs"
	"github.com/arloliu/reflbin/format"
)

const usage = `usage: reflbin [-vtk|-icp] [-w##] [-h##] [-x##-##] [-y##-##] [-p] [-dpath] [-zcodec] f1 f2 ...

 -w##       bin width (default 1)
 -h##       bin height (default 1000000)
 -x#LO-#HI  pixel range in x (1-origin, inclusive)
 -y#LO-#HI  pixel range in y (1-origin, inclusive)
 -vtk       use VTK format for output
 -icp       use ICP format for output (default)
 -dpath     store output in path rather than the input's directory
 -p         keep final bins even if they are not full
 -zcodec    compress output with gz, zst, s2 or lz4 (default none)

If output is ICP, the outfile for xxx.yyy is Ixxx.yyy.
If output is VTK, the outfile for xxx.yyy is xxx.vtk.
To get the bare data, use -vtk and strip the header, e.g.
    tail -n +11 f1.vtk > f1.raw
Compressed inputs (.gz, .zst, .sz, .lz4) are handled directly.
`

// cliArgs is the parsed command line. Flags apply to every input file
// regardless of their position.
type cliArgs struct {
	opts  []reflbin.Option
	files []string
}

// parseArgs parses the reflbin command line. Flag values are attached to the
// flag letter (-w4, -x10-200, -d/tmp/out).
func parseArgs(args []string) (*cliArgs, error) {
	res := &cliArgs{}
	width, height := 1, 1_000_000

	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			res.files = append(res.files, arg)
			continue
		}

		val := arg[2:]
		switch arg[1] {
		case 'w':
			n, err := positive(arg, val)
			if err != nil {
				return nil, err
			}
			width = n
		case 'h':
			n, err := positive(arg, val)
			if err != nil {
				return nil, err
			}
			height = n
		case 'x':
			lo, hi, err := pixelRange(arg, val)
			if err != nil {
				return nil, err
			}
			res.opts = append(res.opts, reflbin.WithWindowX(lo, hi))
		case 'y':
			lo, hi, err := pixelRange(arg, val)
			if err != nil {
				return nil, err
			}
			res.opts = append(res.opts, reflbin.WithWindowY(lo, hi))
		case 'v', 'i':
			f, err := format.ParseOutputFormat(arg[1:])
			if err != nil {
				return nil, err
			}
			res.opts = append(res.opts, reflbin.WithFormat(f))
		case 'p':
			res.opts = append(res.opts, reflbin.WithKeepPartial())
		case 'd':
			if val == "" {
				return nil, fmt.Errorf("%w: no space allowed between -d and dir name", errs.ErrInvalidConfig)
			}
			res.opts = append(res.opts, reflbin.WithOutputDir(val))
		case 'z':
			ct, err := format.ParseCompression(val)
			if err != nil {
				return nil, err
			}
			res.opts = append(res.opts, reflbin.WithOutputCompression(ct))
		default:
			return nil, fmt.Errorf("%w: unknown option %s", errs.ErrInvalidConfig, arg)
		}
	}
	res.opts = append(res.opts, reflbin.WithBinning(width, height))

	return res, nil
}

func positive(arg, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s needs a positive integer", errs.ErrInvalidBinning, arg)
	}

	return n, nil
}

// pixelRange converts a 1-origin "lo-hi" range into 0-origin bounds.
func pixelRange(arg, val string) (int, int, error) {
	loStr, hiStr, ok := strings.Cut(val, "-")
	lo, errLo := strconv.Atoi(loStr)
	hi, errHi := strconv.Atoi(hiStr)
	if !ok || errLo != nil || errHi != nil || lo < 1 || hi < lo {
		return 0, 0, fmt.Errorf("%w: %s needs a ###-### pixel range", errs.ErrInvalidRange, arg)
	}

	return lo - 1, hi - 1, nil
}
