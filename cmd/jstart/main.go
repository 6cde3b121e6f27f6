// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jstart reports the kind of JSON value at the start of each of its
// inputs.
//
// Usage:
//
//	jstart [flags] [file ...]
//
// With no files, or for a file named "-", jstart reads standard input.
// For each input jstart prints a line giving the kind of value the input
// begins with, or "invalid", followed by the name of the input. Only the first
// few bytes of each input are read (see -n); an input cut short in the middle
// of a value is reported as that value.
//
// Inputs compressed with gzip, zstd, or LZ4 are decompressed automatically.
//
// The exit status is 0 if every input was checked and accepted, and 1 if any
// input was invalid, was not of a kind listed by -only, or could not be read.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/creachadair/jstart"
	"github.com/creachadair/jstart/internal/decomp"
	"github.com/creachadair/mds/mapset"
	"github.com/tailscale/hujson"
	"golang.org/x/sync/errgroup"
)

var (
	readLimit = flag.Int("n", 4096, "Read at most this many bytes of each input (0 means all)")
	doHuJSON  = flag.Bool("hujson", false, "Convert HuJSON (comments, trailing commas) to JSON before checking; reads all input")
	onlyKinds = flag.String("only", "", "Comma-separated kinds to accept (object, array, string, number, boolean, null)")
	numJobs   = flag.Int("j", runtime.NumCPU(), "Check up to this many inputs concurrently")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %[1]s [flags] [file ...]

Report the kind of JSON value at the start of each input.
With no files, or for "-", read standard input.

Flags:
`, filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("jstart: ")

	only, err := parseKinds(*onlyKinds)
	if err != nil {
		log.Fatalf("Invalid -only: %v", err)
	}
	cfg := config{
		Limit:  *readLimit,
		HuJSON: *doHuJSON,
		Only:   only,
		Jobs:   *numJobs,
	}
	ok, err := run(context.Background(), cfg, flag.Args(), os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal(err)
	} else if !ok {
		os.Exit(1)
	}
}

// config carries the settings for a run.
type config struct {
	Limit  int                     // bytes read per input; 0 means all
	HuJSON bool                    // standardize HuJSON before checking
	Only   mapset.Set[jstart.Kind] // if non-empty, the accepted kinds
	Jobs   int                     // concurrent inputs; <= 0 means 1
}

// accepts reports whether kind is an accepted result under c.
func (c config) accepts(kind jstart.Kind, ok bool) bool {
	return ok && (len(c.Only) == 0 || c.Only.Has(kind))
}

// parseKinds parses a comma-separated list of kind names.
func parseKinds(s string) (mapset.Set[jstart.Kind], error) {
	var kinds []jstart.Kind
	for name := range strings.SplitSeq(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		k, ok := jstart.ParseKind(strings.ToLower(name))
		if !ok {
			return nil, fmt.Errorf("unknown kind %q", name)
		}
		kinds = append(kinds, k)
	}
	return mapset.New(kinds...), nil
}

// result is the outcome of checking one input.
type result struct {
	name string
	kind jstart.Kind
	ok   bool
	err  error
}

// run checks each of the named inputs and writes one line per input to out,
// in the order given. It reports whether all inputs were accepted. An error
// is returned only if the run was interrupted or stdin could not be read;
// failures on individual inputs are logged and reported as not accepted.
//
// Standard input is read once, before any checks begin, and each "-" in names
// checks a copy of what was read.
func run(ctx context.Context, cfg config, names []string, stdin io.Reader, out io.Writer) (bool, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	var input []byte
	if slices.Contains(names, "-") {
		var err error
		input, err = io.ReadAll(stdin)
		if err != nil {
			return false, fmt.Errorf("read stdin: %w", err)
		}
	}
	rs := make([]result, len(names))

	var g errgroup.Group
	g.SetLimit(max(cfg.Jobs, 1))
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			kind, ok, err := checkNamed(cfg, name, input)
			rs[i] = result{name: name, kind: kind, ok: ok, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	allOK := true
	for _, r := range rs {
		if r.err != nil {
			log.Printf("Checking %q: %v", r.name, r.err)
			allOK = false
			continue
		}
		fmt.Fprintf(out, "%v\t%s\n", r.kind, r.name)
		if !cfg.accepts(r.kind, r.ok) {
			allOK = false
		}
	}
	return allOK, nil
}

// checkNamed opens the named input and checks it. The name "-" denotes the
// contents of stdin, already read.
func checkNamed(cfg config, name string, stdin []byte) (jstart.Kind, bool, error) {
	if name == "-" {
		return check(cfg, bytes.NewReader(stdin))
	}
	f, err := os.Open(name)
	if err != nil {
		return jstart.Invalid, false, err
	}
	defer f.Close()
	return check(cfg, f)
}

// check reads the input from r, decompressing if necessary, and reports the
// kind of value it begins with.
func check(cfg config, r io.Reader) (jstart.Kind, bool, error) {
	rc, format, err := decomp.Open(r)
	if err != nil {
		return jstart.Invalid, false, err
	}
	defer rc.Close()

	var src io.Reader = rc
	if cfg.Limit > 0 && !cfg.HuJSON {
		src = io.LimitReader(rc, int64(cfg.Limit))
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return jstart.Invalid, false, fmt.Errorf("read %v input: %w", format, err)
	}
	if cfg.HuJSON {
		std, err := hujson.Standardize(data)
		if err != nil {
			return jstart.Invalid, false, nil // not valid HuJSON
		}
		data = std
	}
	kind, ok := jstart.Check(data)
	return kind, ok, nil
}
