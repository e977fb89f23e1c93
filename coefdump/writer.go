package coefdump

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"

	"github.com/deepteams/av1txfm"
	"github.com/deepteams/av1txfm/internal/container"
)

// Compression selects how the chunk stream of a dump is stored.
type Compression uint8

const (
	CompressNone Compression = container.CompressionNone
	CompressZstd Compression = container.CompressionZstd
	CompressZlib Compression = container.CompressionZlib
)

func (c Compression) String() string {
	switch c {
	case CompressNone:
		return "none"
	case CompressZstd:
		return "zstd"
	case CompressZlib:
		return "zlib"
	}
	return fmt.Sprintf("Compression(%d)", uint8(c))
}

// WriterOptions configures a Writer.
type WriterOptions struct {
	// Compression of the chunk stream. The zero value stores it as is; a
	// nil *WriterOptions selects CompressZstd.
	Compression Compression

	// Level is the compression level: a zstd level (1-22) or a zlib level
	// (1-9). Zero selects the codec default.
	Level int

	// Info is stored in the INFO chunk, typically the producing backend.
	Info string
}

// ErrClosed is returned by writes to a closed Writer.
var ErrClosed = errors.New("coefdump: writer closed")

// Writer appends records to a dump.
type Writer struct {
	cw    io.WriteCloser // compressor, or a pass-through for CompressNone
	buf   []byte
	count uint64
	done  bool
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// NewWriter writes the dump header to w and returns a Writer for the
// records. A nil opts selects zstd with no INFO chunk. Close must be called
// to terminate the stream; it does not close w.
func NewWriter(w io.Writer, opts *WriterOptions) (*Writer, error) {
	o := WriterOptions{Compression: CompressZstd}
	if opts != nil {
		o = *opts
	}
	if o.Compression > CompressZlib {
		return nil, fmt.Errorf("%w: %d", container.ErrCompression, uint8(o.Compression))
	}

	hdr := container.AppendFileHeader(nil, container.FileHeader{
		Version:     container.Version,
		Compression: uint8(o.Compression),
	})
	if _, err := w.Write(hdr); err != nil {
		return nil, err
	}

	var cw io.WriteCloser
	switch o.Compression {
	case CompressZstd:
		level := zstd.SpeedDefault
		if o.Level != 0 {
			level = zstd.EncoderLevelFromZstd(o.Level)
		}
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(level))
		if err != nil {
			return nil, fmt.Errorf("coefdump: zstd: %w", err)
		}
		cw = enc
	case CompressZlib:
		level := zlib.DefaultCompression
		if o.Level != 0 {
			level = o.Level
		}
		zw, err := zlib.NewWriterLevel(w, level)
		if err != nil {
			return nil, fmt.Errorf("coefdump: zlib: %w", err)
		}
		cw = zw
	default:
		cw = nopWriteCloser{w}
	}

	dw := &Writer{cw: cw}
	if o.Info != "" {
		if err := container.WriteChunk(cw, container.FourCCINFO, []byte(o.Info)); err != nil {
			cw.Close()
			return nil, err
		}
	}
	return dw, nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() uint64 { return w.count }

// WriteRecord appends rec. Its residual and coefficient lengths must match
// its kind and size.
func (w *Writer) WriteRecord(rec *Record) error {
	if w.done {
		return ErrClosed
	}
	n, m := 16, 16
	if rec.Kind == KindBlock {
		if rec.Size >= av1txfm.NumTxSizes {
			return fmt.Errorf("%w: %d", av1txfm.ErrInvalidTxSize, uint8(rec.Size))
		}
		if rec.Type >= av1txfm.NumTxTypes {
			return fmt.Errorf("%w: %d", av1txfm.ErrInvalidTxType, uint8(rec.Type))
		}
		n, m = rec.Size.Width()*rec.Size.Height(), rec.Size.CoeffCount()
	} else if rec.Kind != KindWHT {
		return fmt.Errorf("coefdump: invalid record kind %d", uint8(rec.Kind))
	}
	if len(rec.Residual) != n {
		return fmt.Errorf("%w: residual has %d samples, want %d", av1txfm.ErrShortSource, len(rec.Residual), n)
	}
	if len(rec.Coeffs) < m {
		return fmt.Errorf("%w: have %d coefficients, need %d", av1txfm.ErrShortOutput, len(rec.Coeffs), m)
	}

	var fourcc uint32
	r := *rec
	r.Coeffs = rec.Coeffs[:m]
	w.buf, fourcc = encodeRecord(w.buf[:0], &r)
	if err := container.WriteChunk(w.cw, fourcc, w.buf); err != nil {
		return err
	}
	w.count++
	return nil
}

// WriteBlock records the size.Width() x size.Height() residual block at src
// (row stride stride) and its coefficients.
func (w *Writer) WriteBlock(src []int16, stride int, size av1txfm.TxSize, t av1txfm.TxType, coeffs []int32) error {
	if size >= av1txfm.NumTxSizes {
		return fmt.Errorf("%w: %d", av1txfm.ErrInvalidTxSize, uint8(size))
	}
	res, err := packResidual(src, stride, size.Width(), size.Height())
	if err != nil {
		return err
	}
	return w.WriteRecord(&Record{Kind: KindBlock, Size: size, Type: t, Residual: res, Coeffs: coeffs})
}

// WriteWHT records a 4x4 lossless block and its Walsh-Hadamard coefficients.
func (w *Writer) WriteWHT(src []int16, stride int, coeffs []int32) error {
	res, err := packResidual(src, stride, 4, 4)
	if err != nil {
		return err
	}
	return w.WriteRecord(&Record{Kind: KindWHT, Size: av1txfm.TX4x4, Residual: res, Coeffs: coeffs})
}

// WriteBatch records every block of a batch, typically after
// av1txfm.ForwardBatch filled their outputs.
func (w *Writer) WriteBatch(blocks []av1txfm.Block) error {
	for i := range blocks {
		b := &blocks[i]
		if err := w.WriteBlock(b.Src, b.Stride, b.Size, b.Type, b.Out); err != nil {
			return &av1txfm.BlockError{Index: i, Err: err}
		}
	}
	return nil
}

// Close writes the DONE chunk and flushes the compressor. The underlying
// writer is not closed.
func (w *Writer) Close() error {
	if w.done {
		return nil
	}
	w.done = true
	var p [container.DoneChunkSize]byte
	binary.LittleEndian.PutUint64(p[:], w.count)
	if err := container.WriteChunk(w.cw, container.FourCCDONE, p[:]); err != nil {
		return err
	}
	return w.cw.Close()
}
