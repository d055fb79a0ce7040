// Cubemath is a command line calculator for three component vectors.
//
// Usage:
//
//	cubemath [flags] -op OPERATION LEFT [RIGHT]
//	cubemath [flags] -file CASES.yaml
//
// Vectors are given as comma separated components, e.g. 7,8,3.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ErikKalkoken/cubemath/internal/calc"
)

var errBatchFailed = errors.New("batch failed")

func main() {
	flag.Usage = usage
	flag.Parse()
	slog.SetLogLoggerLevel(levelFlag.value)
	if *logFileFlag != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   *logFileFlag,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		})
	}
	format := calc.FormatPlain
	if *humanFlag {
		format = calc.FormatHuman
	}
	c := calc.New(format)
	var err error
	if *fileFlag != "" {
		err = evaluateFile(c, os.Stdout, *fileFlag)
	} else {
		err = evaluateArgs(c, os.Stdout, *typeFlag, *opFlag, flag.Args())
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage: %s [flags] -op OPERATION LEFT [RIGHT]\n", os.Args[0])
	fmt.Fprintf(w, "       %s [flags] -file CASES.yaml\n\n", os.Args[0])
	ops := make([]string, 0)
	for _, op := range calc.Operations() {
		ops = append(ops, string(op))
	}
	fmt.Fprintf(w, "Operations: %s\n\nFlags:\n", strings.Join(ops, ", "))
	flag.PrintDefaults()
}

// evaluateArgs evaluates one operation given on the command line and writes the result to w.
func evaluateArgs(c *calc.Calculator, w io.Writer, domain, op string, args []string) error {
	if op == "" {
		return fmt.Errorf("no operation given")
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("need one or two operands, got %d", len(args))
	}
	r := calc.Request{Domain: domain, Op: op, Left: args[0]}
	if len(args) == 2 {
		r.Right = args[1]
	}
	out, err := c.Evaluate(r)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, out)
	return nil
}

// evaluateFile evaluates all cases in a batch file and writes one line per case to w.
func evaluateFile(c *calc.Calculator, w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	reqs, err := calc.LoadBatch(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	var failed int
	for _, r := range c.RunBatch(reqs) {
		if r.Err != nil {
			fmt.Fprintf(w, "ERROR: %s\n", r.Err)
			failed++
			continue
		}
		fmt.Fprintf(w, "%s = %s\n", r.Request, r.Output)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cases: %w", failed, len(reqs), errBatchFailed)
	}
	return nil
}
