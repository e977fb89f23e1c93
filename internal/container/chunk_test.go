package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestFileHeader_RoundTrip(t *testing.T) {
	buf := AppendFileHeader(nil, FileHeader{Version: Version, Compression: CompressionZlib})
	if len(buf) != FileHeaderSize {
		t.Fatalf("header length = %d, want %d", len(buf), FileHeaderSize)
	}
	h, err := ParseFileHeader(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Version != Version || h.Compression != CompressionZlib {
		t.Fatalf("got %+v", h)
	}
}

func TestParseFileHeader_Errors(t *testing.T) {
	good := AppendFileHeader(nil, FileHeader{Version: Version})

	if _, err := ParseFileHeader(good[:5]); err != ErrTruncated {
		t.Fatalf("short: expected ErrTruncated, got %v", err)
	}

	bad := append([]byte(nil), good...)
	copy(bad[0:4], "RIFF")
	if _, err := ParseFileHeader(bad); err != ErrInvalidSignature {
		t.Fatalf("signature: expected ErrInvalidSignature, got %v", err)
	}

	bad = append([]byte(nil), good...)
	bad[4] = 9
	if _, err := ParseFileHeader(bad); !errors.Is(err, ErrVersion) {
		t.Fatalf("version: expected ErrVersion, got %v", err)
	}

	bad = append([]byte(nil), good...)
	bad[5] = numCompressions
	if _, err := ParseFileHeader(bad); !errors.Is(err, ErrCompression) {
		t.Fatalf("compression: expected ErrCompression, got %v", err)
	}
}

func TestChunk_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	payloads := [][]byte{{}, {1}, {1, 2, 3}, bytes.Repeat([]byte{0xab}, 1000)}
	for _, p := range payloads {
		if err := WriteChunk(&buf, FourCCBLCK, p); err != nil {
			t.Fatalf("WriteChunk: %v", err)
		}
	}
	// Odd payloads are padded to an even length.
	if want := 4*ChunkHeaderSize + 0 + 2 + 4 + 1000; buf.Len() != want {
		t.Fatalf("stream length = %d, want %d", buf.Len(), want)
	}
	for i, p := range payloads {
		c, err := ReadChunk(&buf)
		if err != nil {
			t.Fatalf("chunk %d: %v", i, err)
		}
		if c.FourCC != FourCCBLCK || !bytes.Equal(c.Payload, p) {
			t.Fatalf("chunk %d: got %s len %d", i, FourCCString(c.FourCC), len(c.Payload))
		}
	}
	if _, err := ReadChunk(&buf); err != io.EOF {
		t.Fatalf("expected io.EOF at end, got %v", err)
	}
}

func TestReadChunk_Truncated(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteChunk(&buf, FourCCLWHT, make([]byte, 96)); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	if _, err := ReadChunk(bytes.NewReader(data[:5])); !errors.Is(err, ErrTruncated) {
		t.Fatalf("header: expected ErrTruncated, got %v", err)
	}
	if _, err := ReadChunk(bytes.NewReader(data[:50])); !errors.Is(err, ErrTruncated) {
		t.Fatalf("payload: expected ErrTruncated, got %v", err)
	}
}

func TestChunk_TooLarge(t *testing.T) {
	hdr := make([]byte, ChunkHeaderSize)
	binary.LittleEndian.PutUint32(hdr[0:4], FourCCBLCK)
	binary.LittleEndian.PutUint32(hdr[4:8], MaxChunkPayload+1)
	if _, err := ReadChunk(bytes.NewReader(hdr)); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if err := WriteChunk(io.Discard, FourCCBLCK, make([]byte, MaxChunkPayload+1)); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestFourCCString(t *testing.T) {
	tests := []struct {
		fourcc uint32
		want   string
	}{
		{FourCCTXFD, "TXFD"},
		{FourCCINFO, "INFO"},
		{FourCCBLCK, "BLCK"},
		{FourCCLWHT, "LWHT"},
		{FourCCDONE, "DONE"},
	}
	for _, tt := range tests {
		if got := FourCCString(tt.fourcc); got != tt.want {
			t.Errorf("FourCCString(%#x) = %q, want %q", tt.fourcc, got, tt.want)
		}
	}
}
