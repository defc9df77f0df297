package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

const usage = `Usage: ffview <command> [flags] [args]

Commands:
  elements [-category magnetic|xray] [-map out.png]   list elements with data
  valences <element>                                   list valences of an element
  types <element> <valence>                            list model types of an ion
  curve [sampling flags] [-out file] <element> <valence> [j0,j2,...]
                                                       evaluate form factor curves
  xray [-out file] <element>                           export X-ray scattering data
  stats [-v]                                           load statistics and metrics

Every command accepts -config <path> (default config.json; see config.example.json).
Output files are chosen by extension: .dat, .arrow, .png or .pdf.
Without -out, curve and xray print .dat text to stdout.
`

var errUsage = errors.New("invalid usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "ffview: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usage)
		return errUsage
	}

	command := args[0]
	switch command {
	case "elements":
		return runElements(args[1:], stdout)
	case "valences":
		return runValences(args[1:], stdout)
	case "types":
		return runTypes(args[1:], stdout)
	case "curve":
		return runCurve(args[1:], stdout)
	case "xray":
		return runXray(args[1:], stdout)
	case "stats":
		return runStats(args[1:], stdout)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n%s", command, usage)
		return errUsage
	}
}
