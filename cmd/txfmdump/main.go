// Command txfmdump produces, inspects and verifies coefficient dumps.
//
// Usage:
//
//	txfmdump gen [options]             Transform random blocks and write a dump
//	txfmdump verify [options] <dump>   Recompute a dump and compare coefficients
//	txfmdump info <dump>               Summarize the records of a dump
//	txfmdump block [options]           Transform one block read from stdin
//
// Use "-" for stdin or stdout.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/deepteams/av1txfm"
	"github.com/deepteams/av1txfm/coefdump"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	var err error
	switch args[0] {
	case "gen":
		err = runGen(args[1:], stdout, stderr)
	case "verify":
		err = runVerify(args[1:], stdin, stdout, stderr)
	case "info":
		err = runInfo(args[1:], stdin, stdout, stderr)
	case "block":
		err = runBlock(args[1:], stdin, stdout, stderr)
	case "-h", "-help", "--help", "help":
		printUsage(stderr)
		return 0
	default:
		fmt.Fprintf(stderr, "txfmdump: unknown command %q\n\n", args[0])
		printUsage(stderr)
		return 1
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "txfmdump: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage:
  txfmdump gen [options]             Transform random blocks and write a dump
  txfmdump verify [options] <dump>   Recompute a dump and compare coefficients
  txfmdump info <dump>               Summarize the records of a dump
  txfmdump block [options]           Transform one block read from stdin

Use "-" for stdin or stdout.

Run "txfmdump <command> -h" for command-specific options.
`)
}

// openInput returns an io.ReadCloser for the given path.
// If path is "-", stdin is returned and closing it is a no-op.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

func parseBackend(s string) (av1txfm.Backend, error) {
	switch strings.ToLower(s) {
	case "integer", "int":
		return av1txfm.BackendInteger, nil
	case "float", "float64":
		return av1txfm.BackendFloat, nil
	}
	return 0, fmt.Errorf("unknown backend %q (use integer/float)", s)
}

func parseCompression(s string) (coefdump.Compression, error) {
	switch strings.ToLower(s) {
	case "none":
		return coefdump.CompressNone, nil
	case "zstd":
		return coefdump.CompressZstd, nil
	case "zlib":
		return coefdump.CompressZlib, nil
	}
	return 0, fmt.Errorf("unknown compression %q (use zstd/zlib/none)", s)
}

// parseSizes accepts "all" or a comma-separated list of WxH shapes.
func parseSizes(s string) ([]av1txfm.TxSize, error) {
	if s == "all" {
		sizes := make([]av1txfm.TxSize, av1txfm.NumTxSizes)
		for i := range sizes {
			sizes[i] = av1txfm.TxSize(i)
		}
		return sizes, nil
	}
	var sizes []av1txfm.TxSize
	for _, f := range strings.Split(s, ",") {
		var w, h int
		if _, err := fmt.Sscanf(strings.TrimSpace(f), "%dx%d", &w, &h); err != nil {
			return nil, fmt.Errorf("bad size %q (want WxH)", f)
		}
		sz, ok := av1txfm.SizeOf(w, h)
		if !ok {
			return nil, fmt.Errorf("unsupported size %dx%d", w, h)
		}
		sizes = append(sizes, sz)
	}
	return sizes, nil
}

// parseTypes accepts "all" or a comma-separated list of type names such as
// DCT_DCT or h_flipadst.
func parseTypes(s string) ([]av1txfm.TxType, error) {
	all := make([]av1txfm.TxType, av1txfm.NumTxTypes)
	for i := range all {
		all[i] = av1txfm.TxType(i)
	}
	if s == "all" {
		return all, nil
	}
	var types []av1txfm.TxType
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		found := false
		for _, t := range all {
			if strings.EqualFold(t.String(), f) {
				types = append(types, t)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown transform type %q", f)
		}
	}
	return types, nil
}

// --- gen ---

func runGen(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", 1000, "number of transform blocks")
	whts := fs.Int("wht", 0, "number of lossless Walsh-Hadamard blocks")
	seed := fs.Int64("seed", 1, "random seed")
	amp := fs.Int("amp", 255, "residual amplitude (samples in [-amp, amp])")
	sizeFlag := fs.String("size", "all", `block sizes, e.g. "8x8,16x32" or "all"`)
	typeFlag := fs.String("type", "all", `transform types, e.g. "DCT_DCT,IDTX" or "all"`)
	backend := fs.String("backend", "integer", "kernel backend: integer/float")
	compress := fs.String("z", "zstd", "compression: zstd/zlib/none")
	level := fs.Int("level", 0, "compression level (0=codec default)")
	output := fs.String("o", "-", `output path ("-" for stdout)`)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 0 || *whts < 0 {
		return fmt.Errorf("gen: block counts must be >= 0")
	}
	if *amp < 0 || *amp > 32767 {
		return fmt.Errorf("gen: amp %d out of range 0-32767", *amp)
	}
	sizes, err := parseSizes(*sizeFlag)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	types, err := parseTypes(*typeFlag)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	b, err := parseBackend(*backend)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	c, err := parseCompression(*compress)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	e, err := av1txfm.NewEngine(&av1txfm.Options{Backend: b})
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seed))
	sample := func() int16 { return int16(rng.Intn(2**amp+1) - *amp) }
	blocks := make([]av1txfm.Block, *n)
	for i := range blocks {
		s := sizes[rng.Intn(len(sizes))]
		src := make([]int16, s.Width()*s.Height())
		for j := range src {
			src[j] = sample()
		}
		blocks[i] = av1txfm.Block{
			Src:    src,
			Stride: s.Width(),
			Out:    make([]int32, s.CoeffCount()),
			Size:   s,
			Type:   types[rng.Intn(len(types))],
		}
	}
	if err := e.ForwardBatch(context.Background(), blocks); err != nil {
		return err
	}

	var w io.Writer = stdout
	if *output != "-" {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	dw, err := coefdump.NewWriter(bw, &coefdump.WriterOptions{
		Compression: c,
		Level:       *level,
		Info:        "av1txfm " + e.Backend(),
	})
	if err != nil {
		return err
	}
	if err := dw.WriteBatch(blocks); err != nil {
		return err
	}
	for i := 0; i < *whts; i++ {
		src := make([]int16, 16)
		for j := range src {
			src[j] = sample()
		}
		coeffs := make([]int32, 16)
		if err := e.ForwardWHT(src, 4, coeffs); err != nil {
			return err
		}
		if err := dw.WriteWHT(src, 4, coeffs); err != nil {
			return err
		}
	}
	if err := dw.Close(); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if *output != "-" {
		fmt.Fprintf(stderr, "Wrote %d records to %s\n", dw.Count(), *output)
	}
	return nil
}

// --- verify ---

func runVerify(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	backend := fs.String("backend", "integer", "kernel backend: integer/float")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("verify: missing input file\nUsage: txfmdump verify [options] <dump>")
	}
	b, err := parseBackend(*backend)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	e, err := av1txfm.NewEngine(&av1txfm.Options{Backend: b})
	if err != nil {
		return err
	}

	in, err := openInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	defer in.Close()

	rep, err := coefdump.Verify(context.Background(), bufio.NewReader(in), e)
	if rep != nil {
		if rep.Info != "" {
			fmt.Fprintf(stdout, "Producer:   %s\n", rep.Info)
		}
		fmt.Fprintf(stdout, "Backend:    %s\n", e.Backend())
		fmt.Fprintf(stdout, "Blocks:     %d\n", rep.Blocks)
		fmt.Fprintf(stdout, "WHT blocks: %d\n", rep.WHTBlocks)
		fmt.Fprintf(stdout, "Mismatches: %d\n", rep.Mismatches)
		if rep.First != nil {
			fmt.Fprintf(stdout, "First:      %v\n", rep.First)
		}
	}
	return err
}

// --- info ---

func runInfo(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("info: missing input file\nUsage: txfmdump info <dump>")
	}
	in, err := openInput(fs.Arg(0), stdin)
	if err != nil {
		return err
	}
	defer in.Close()

	r, err := coefdump.NewReader(bufio.NewReader(in))
	if err != nil {
		return err
	}
	defer r.Close()

	perSize := map[string]int{}
	var whts int
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if rec.Kind == coefdump.KindWHT {
			whts++
			continue
		}
		perSize[rec.Size.String()]++
	}

	if r.Info() != "" {
		fmt.Fprintf(stdout, "Producer: %s\n", r.Info())
	}
	fmt.Fprintf(stdout, "Records:  %d\n", r.Count())
	keys := make([]string, 0, len(perSize))
	for k := range perSize {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(stdout, "  %-6s %d\n", k, perSize[k])
	}
	if whts > 0 {
		fmt.Fprintf(stdout, "  %-6s %d\n", "wht", whts)
	}
	return nil
}

// --- block ---

func runBlock(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("block", flag.ContinueOnError)
	fs.SetOutput(stderr)
	sizeFlag := fs.String("size", "4x4", "block size WxH")
	typeFlag := fs.String("type", "DCT_DCT", `transform type, or "WHT" for the lossless transform`)
	backend := fs.String("backend", "integer", "kernel backend: integer/float")

	if err := fs.Parse(args); err != nil {
		return err
	}
	sizes, err := parseSizes(*sizeFlag)
	if err != nil || len(sizes) != 1 {
		return fmt.Errorf("block: bad size %q", *sizeFlag)
	}
	s := sizes[0]
	wht := strings.EqualFold(*typeFlag, "wht")
	if wht && s != av1txfm.TX4x4 {
		return fmt.Errorf("block: WHT requires a 4x4 block")
	}
	b, err := parseBackend(*backend)
	if err != nil {
		return fmt.Errorf("block: %w", err)
	}
	e, err := av1txfm.NewEngine(&av1txfm.Options{Backend: b})
	if err != nil {
		return err
	}

	n := s.Width() * s.Height()
	src := make([]int16, 0, n)
	sc := bufio.NewScanner(stdin)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseInt(sc.Text(), 10, 16)
		if err != nil {
			return fmt.Errorf("block: sample %d: %w", len(src), err)
		}
		src = append(src, int16(v))
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if len(src) != n {
		return fmt.Errorf("block: read %d samples, want %d for %v", len(src), n, s)
	}

	out := make([]int32, s.CoeffCount())
	if wht {
		err = e.ForwardWHT(src, 4, out)
	} else {
		types, perr := parseTypes(*typeFlag)
		if perr != nil || len(types) != 1 {
			return fmt.Errorf("block: bad transform type %q", *typeFlag)
		}
		err = e.Forward(src, s.Width(), out, s, types[0])
	}
	if err != nil {
		return err
	}

	cw := s.CoeffWidth()
	bw := bufio.NewWriter(stdout)
	for i := 0; i < len(out); i += cw {
		for j, v := range out[i : i+cw] {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(int(v)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
