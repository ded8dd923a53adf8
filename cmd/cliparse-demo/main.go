// Command cliparse-demo declares a small set of parameters, parses its own
// command line and prints the results listing. Try:
//
//	cliparse-demo --n 50 1 2 3 4 -lisa --help
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	cliparser "github.com/Spooghetti420/CLI-Parser"
	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelWarn,
		TimeFormat: time.Kitchen,
	})))

	p, err := cliparser.FromMapping("Demo", []cliparser.Entry{
		{Name: "help", Spec: cliparser.Flag("Prints help message as to how to use the program.")},
		{Name: "n", Spec: cliparser.Argument(cliparser.IntValue, 1, true)},
		{Name: "data", Spec: cliparser.Argument(cliparser.IntValue, 4, false)},
		{Name: "l", Spec: cliparser.Flag("Flag l.")},
		{Name: "i", Spec: cliparser.Flag("Flag i.")},
		{Name: "s", Spec: cliparser.Flag("Flag s.")},
		{Name: "a", Spec: cliparser.Flag("Flag a.")},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p.Parse(os.Args[1:])
	fmt.Print(p)
}
