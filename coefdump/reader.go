package coefdump

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"

	"github.com/deepteams/av1txfm/internal/container"
)

// ErrUnterminated is returned when a dump ends without its DONE chunk.
var ErrUnterminated = errors.New("coefdump: dump ends without DONE chunk")

// Reader iterates over the records of a dump.
type Reader struct {
	cr      io.Reader
	release func()
	info    string
	pending *container.Chunk
	count   uint64
	done    bool
}

// NewReader parses the dump header from r and prepares the chunk stream.
// Close releases the decompressor.
func NewReader(r io.Reader) (*Reader, error) {
	var hdr [container.FileHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("coefdump: reading header: %w", container.ErrTruncated)
	}
	h, err := container.ParseFileHeader(hdr[:])
	if err != nil {
		return nil, err
	}

	dr := &Reader{release: func() {}}
	switch Compression(h.Compression) {
	case CompressZstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("coefdump: zstd: %w", err)
		}
		dr.cr, dr.release = dec, dec.Close
	case CompressZlib:
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("coefdump: zlib: %w", err)
		}
		dr.cr, dr.release = zr, func() { zr.Close() }
	default:
		dr.cr = bufio.NewReader(r)
	}

	// INFO, when present, is the first chunk.
	c, err := container.ReadChunk(dr.cr)
	switch {
	case err == io.EOF:
		dr.Close()
		return nil, ErrUnterminated
	case err != nil:
		dr.Close()
		return nil, err
	case c.FourCC == container.FourCCINFO:
		dr.info = string(c.Payload)
	default:
		dr.pending = &c
	}
	return dr, nil
}

// Info returns the producer description of the dump, if any.
func (r *Reader) Info() string { return r.info }

// Count returns the number of records read so far.
func (r *Reader) Count() uint64 { return r.count }

// Next returns the next record. It returns io.EOF after the last record
// once the record count in the DONE chunk has been checked.
func (r *Reader) Next() (*Record, error) {
	for !r.done {
		c, err := r.nextChunk()
		if err == io.EOF {
			return nil, ErrUnterminated
		}
		if err != nil {
			return nil, err
		}

		var rec *Record
		switch c.FourCC {
		case container.FourCCBLCK:
			rec, err = decodeBlock(c.Payload)
		case container.FourCCLWHT:
			rec, err = decodeWHT(c.Payload)
		case container.FourCCDONE:
			if len(c.Payload) != container.DoneChunkSize {
				return nil, fmt.Errorf("%w: DONE payload %d bytes", ErrCorrupt, len(c.Payload))
			}
			if n := binary.LittleEndian.Uint64(c.Payload); n != r.count {
				return nil, fmt.Errorf("%w: DONE counts %d records, read %d", ErrCorrupt, n, r.count)
			}
			r.done = true
			continue
		default:
			// Unknown chunks are skipped.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", r.count, err)
		}
		r.count++
		return rec, nil
	}
	return nil, io.EOF
}

func (r *Reader) nextChunk() (container.Chunk, error) {
	if c := r.pending; c != nil {
		r.pending = nil
		return *c, nil
	}
	return container.ReadChunk(r.cr)
}

// Close releases the decompressor. It does not close the underlying reader.
func (r *Reader) Close() error {
	if r.release != nil {
		r.release()
		r.release = nil
	}
	return nil
}
