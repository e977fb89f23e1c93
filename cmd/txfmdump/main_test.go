package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// runCmd executes txfmdump in-process with the given arguments and stdin.
func runCmd(t *testing.T, stdin []byte, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	code = run(args, bytes.NewReader(stdin), &outBuf, &errBuf)
	return code, outBuf.String(), errBuf.String()
}

func assertContains(t *testing.T, haystack, needle, msg string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Errorf("%s: output does not contain %q:\n%s", msg, needle, haystack)
	}
}

func TestGenVerify_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blocks.txfd")

	code, _, stderr := runCmd(t, nil, "gen", "-n", "200", "-wht", "10", "-seed", "3", "-o", path)
	if code != 0 {
		t.Fatalf("gen failed: %s", stderr)
	}
	assertContains(t, stderr, "Wrote 210 records", "gen")

	code, stdout, stderr := runCmd(t, nil, "verify", path)
	if code != 0 {
		t.Fatalf("verify failed: %s\n%s", stdout, stderr)
	}
	assertContains(t, stdout, "Blocks:     200", "verify")
	assertContains(t, stdout, "WHT blocks: 10", "verify")
	assertContains(t, stdout, "Mismatches: 0", "verify")
	assertContains(t, stdout, "Producer:   av1txfm integer", "verify")
}

func TestGenVerify_Stdio(t *testing.T) {
	for _, z := range []string{"zstd", "zlib", "none"} {
		code, dump, stderr := runCmd(t, nil, "gen", "-n", "50", "-z", z, "-size", "8x8,64x16", "-type", "DCT_DCT,h_flipadst")
		if code != 0 {
			t.Fatalf("%s: gen failed: %s", z, stderr)
		}
		code, stdout, stderr := runCmd(t, []byte(dump), "verify", "-")
		if code != 0 {
			t.Fatalf("%s: verify failed: %s\n%s", z, stdout, stderr)
		}

		code, stdout, _ = runCmd(t, []byte(dump), "info", "-")
		if code != 0 {
			t.Fatalf("%s: info failed", z)
		}
		assertContains(t, stdout, "Records:  50", z)
		if strings.Contains(stdout, "16x16") {
			t.Errorf("%s: unexpected size in info:\n%s", z, stdout)
		}
	}
}

func TestVerify_FloatBackendMismatch(t *testing.T) {
	_, dump, _ := runCmd(t, nil, "gen", "-n", "40", "-size", "32x32")
	code, stdout, stderr := runCmd(t, []byte(dump), "verify", "-backend", "float", "-")
	if code == 0 {
		t.Fatalf("verify with float backend unexpectedly passed:\n%s", stdout)
	}
	assertContains(t, stdout, "Backend:    float64", "verify")
	assertContains(t, stdout, "First:", "verify")
	assertContains(t, stderr, "mismatch", "verify")
}

func TestVerify_Corrupt(t *testing.T) {
	code, _, stderr := runCmd(t, []byte("not a dump"), "verify", "-")
	if code == 0 {
		t.Fatal("expected failure on corrupt input")
	}
	assertContains(t, stderr, "txfmdump:", "verify")
}

func TestBlock(t *testing.T) {
	ramp := make([]string, 16)
	for i := range ramp {
		ramp[i] = strconv.Itoa(i*3 - 20)
	}
	in := []byte(strings.Join(ramp, " "))

	code, stdout, stderr := runCmd(t, in, "block", "-size", "4x4", "-type", "DCT_DCT")
	if code != 0 {
		t.Fatalf("block failed: %s", stderr)
	}
	want := "80 -107 0 -8\n-428 0 0 0\n0 0 0 0\n-31 0 0 0\n"
	if stdout != want {
		t.Errorf("DCT_DCT output:\n%s\nwant:\n%s", stdout, want)
	}

	code, stdout, _ = runCmd(t, in, "block", "-type", "wht")
	if code != 0 {
		t.Fatal("wht block failed")
	}
	if !strings.HasPrefix(stdout, "40 -48 0 -24\n") {
		t.Errorf("WHT output:\n%s", stdout)
	}
}

func TestBlock_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"too few samples", "1 2 3", []string{"block"}, "read 3 samples"},
		{"bad sample", "1 x", []string{"block"}, "sample 1"},
		{"bad size", "", []string{"block", "-size", "5x5"}, "bad size"},
		{"bad type", strings.Repeat("0 ", 16), []string{"block", "-type", "FOO"}, "bad transform type"},
		{"wht size", "", []string{"block", "-size", "8x8", "-type", "wht"}, "WHT requires"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCmd(t, []byte(tt.stdin), tt.args...)
			if code == 0 {
				t.Fatal("expected failure")
			}
			assertContains(t, stderr, tt.want, tt.name)
		})
	}
}

func TestGen_BadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"gen", "-z", "lzma"},
		{"gen", "-backend", "simd"},
		{"gen", "-size", "3x3"},
		{"gen", "-type", "DCT"},
		{"gen", "-amp", "40000"},
		{"gen", "-n", "-1"},
	} {
		code, _, _ := runCmd(t, nil, args...)
		if code == 0 {
			t.Errorf("%v: expected failure", args)
		}
	}
}

func TestGen_UnwritableOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txfd")
	code, _, _ := runCmd(t, nil, "gen", "-n", "1", "-o", path)
	if code == 0 {
		t.Fatal("expected failure")
	}
	if _, err := os.Stat(path); err == nil {
		t.Fatal("output unexpectedly created")
	}
}

func TestUnknownCommand(t *testing.T) {
	code, _, stderr := runCmd(t, nil, "transmogrify")
	if code == 0 {
		t.Fatal("expected failure")
	}
	assertContains(t, stderr, "unknown command", "unknown")
}

func TestNoArgs(t *testing.T) {
	code, _, stderr := runCmd(t, nil)
	if code == 0 {
		t.Fatal("expected failure")
	}
	assertContains(t, stderr, "Usage:", "no args")
}

func TestHelp(t *testing.T) {
	code, _, stderr := runCmd(t, nil, "help")
	if code != 0 {
		t.Fatal("help should succeed")
	}
	assertContains(t, stderr, "txfmdump verify", "help")

	code, _, stderr = runCmd(t, nil, "gen", "-h")
	if code != 0 {
		t.Fatal("gen -h should succeed")
	}
	assertContains(t, stderr, "-backend", "gen -h")
}

func TestInfo_MissingInput(t *testing.T) {
	code, _, stderr := runCmd(t, nil, "info")
	if code == 0 {
		t.Fatal("expected failure")
	}
	assertContains(t, stderr, "missing input", "info")
}
