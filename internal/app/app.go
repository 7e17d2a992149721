// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"cmsift-core/cmsearch"
	"cmsift-core/scanio"
	"cmsift/internal/cli"
	"cmsift/internal/version"
	"cmsift/internal/writers"

	"github.com/charmbracelet/log"
)

// RunContext parses argv, reads every input report, and streams accepted
// records to the selected writer. Exit codes: 0 ok, 2 usage, 3 runtime or
// write failure, 130 canceled; a broken pipe downstream is success.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("cmsift")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "cmsift version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	logger := log.NewWithOptions(stderr, log.Options{Prefix: "cmsift"})
	if opts.Quiet {
		logger.SetLevel(log.ErrorLevel)
	}

	cfg := cmsearch.Config{
		MinScore:       opts.MinScore,
		Model:          opts.Model,
		Accession:      opts.Accession,
		QueryDesc:      opts.QueryDesc,
		Source:         opts.Source,
		PrimaryTag:     opts.PrimaryTag,
		ProgramVersion: opts.ProgramVersion,
		Warn:           logger.Warnf,
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	in, writeErr := writers.StartRecordWriter(outw, opts.Output, opts.Sort, opts.Header, 64)

	total := 0
	var runErr error
	for _, path := range opts.Inputs {
		rc, err := scanio.Open(path)
		if err != nil {
			runErr = err
			break
		}
		p := cmsearch.NewParser(rc, cfg)
		for {
			rec, err := p.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				runErr = err
				break
			}
			rec.SourceFile = path
			select {
			case in <- rec:
				total++
			case <-ctx.Done():
				runErr = ctx.Err()
			}
			if runErr != nil {
				break
			}
		}
		_ = rc.Close()
		if runErr != nil {
			break
		}
	}

	close(in)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, runErr)
		return 3
	}
	if total == 0 {
		return opts.NoMatchExitCode
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
