package coefdump

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepteams/av1txfm"
	"github.com/deepteams/av1txfm/internal/container"
)

func randomBlocks(t *testing.T, seed int64, n int) []av1txfm.Block {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	blocks := make([]av1txfm.Block, n)
	for i := range blocks {
		s := av1txfm.TxSize(rng.Intn(int(av1txfm.NumTxSizes)))
		w, h := s.Width(), s.Height()
		stride := w + rng.Intn(3)
		src := make([]int16, stride*h)
		for j := range src {
			src[j] = int16(rng.Intn(511) - 255)
		}
		blocks[i] = av1txfm.Block{
			Src:    src,
			Stride: stride,
			Out:    make([]int32, s.CoeffCount()),
			Size:   s,
			Type:   av1txfm.TxType(rng.Intn(int(av1txfm.NumTxTypes))),
		}
	}
	require.NoError(t, av1txfm.ForwardBatch(context.Background(), blocks))
	return blocks
}

func writeDump(t *testing.T, opts *WriterOptions, blocks []av1txfm.Block, whts int) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, opts)
	require.NoError(t, err)
	require.NoError(t, w.WriteBatch(blocks))

	rng := rand.New(rand.NewSource(99))
	for i := 0; i < whts; i++ {
		src := make([]int16, 16)
		for j := range src {
			src[j] = int16(rng.Intn(65536) - 32768)
		}
		coeffs := make([]int32, 16)
		require.NoError(t, av1txfm.ForwardWHT(src, 4, coeffs))
		require.NoError(t, w.WriteWHT(src, 4, coeffs))
	}
	assert.Equal(t, uint64(len(blocks)+whts), w.Count())
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	blocks := randomBlocks(t, 42, 40)
	for _, c := range []Compression{CompressNone, CompressZstd, CompressZlib} {
		t.Run(c.String(), func(t *testing.T) {
			data := writeDump(t, &WriterOptions{Compression: c, Info: "integer"}, blocks, 3)

			r, err := NewReader(bytes.NewReader(data))
			require.NoError(t, err)
			defer r.Close()
			assert.Equal(t, "integer", r.Info())

			for i, b := range blocks {
				rec, err := r.Next()
				require.NoError(t, err, "record %d", i)
				assert.Equal(t, KindBlock, rec.Kind)
				assert.Equal(t, b.Size, rec.Size)
				assert.Equal(t, b.Type, rec.Type)
				assert.Equal(t, b.Out, rec.Coeffs)

				w := b.Size.Width()
				for row := 0; row < b.Size.Height(); row++ {
					require.Equal(t, b.Src[row*b.Stride:row*b.Stride+w], rec.Residual[row*w:row*w+w])
				}
			}
			for i := 0; i < 3; i++ {
				rec, err := r.Next()
				require.NoError(t, err)
				assert.Equal(t, KindWHT, rec.Kind)
				assert.Len(t, rec.Residual, 16)
			}
			_, err = r.Next()
			assert.Equal(t, io.EOF, err)
			_, err = r.Next()
			assert.Equal(t, io.EOF, err)
			assert.Equal(t, uint64(43), r.Count())
		})
	}
}

func TestCompressionShrinks(t *testing.T) {
	blocks := randomBlocks(t, 1, 64)
	raw := writeDump(t, &WriterOptions{Compression: CompressNone}, blocks, 0)
	zst := writeDump(t, nil, blocks, 0)
	assert.Less(t, len(zst), len(raw))

	h, err := container.ParseFileHeader(zst)
	require.NoError(t, err)
	assert.Equal(t, uint8(CompressZstd), h.Compression)
}

func TestVerify_OK(t *testing.T) {
	blocks := randomBlocks(t, 7, 50)
	data := writeDump(t, &WriterOptions{Compression: CompressZstd, Level: 3, Info: "test"}, blocks, 5)

	rep, err := Verify(context.Background(), bytes.NewReader(data), nil)
	require.NoError(t, err)
	assert.Equal(t, 50, rep.Blocks)
	assert.Equal(t, 5, rep.WHTBlocks)
	assert.Equal(t, 55, rep.Records())
	assert.Zero(t, rep.Mismatches)
	assert.Nil(t, rep.First)
	assert.Equal(t, "test", rep.Info)
}

func TestVerify_Mismatch(t *testing.T) {
	blocks := randomBlocks(t, 7, 20)
	blocks[4].Out[3]++
	blocks[11].Out[0]--
	data := writeDump(t, &WriterOptions{Compression: CompressZlib}, blocks, 0)

	rep, err := Verify(context.Background(), bytes.NewReader(data), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatch))
	assert.Equal(t, 20, rep.Records())
	assert.Equal(t, 2, rep.Mismatches)
	require.NotNil(t, rep.First)
	assert.Equal(t, 4, rep.First.Record)
	assert.Equal(t, 3, rep.First.Coeff)
	assert.Equal(t, blocks[4].Out[3], rep.First.Want)
	assert.Equal(t, blocks[4].Out[3]-1, rep.First.Got)
	assert.Contains(t, err.Error(), "record 4")
}

func TestVerify_FloatBackendDiffers(t *testing.T) {
	blocks := randomBlocks(t, 3, 30)
	data := writeDump(t, nil, blocks, 0)
	fe, err := av1txfm.NewEngine(&av1txfm.Options{Backend: av1txfm.BackendFloat})
	require.NoError(t, err)

	rep, err := Verify(context.Background(), bytes.NewReader(data), fe)
	assert.ErrorIs(t, err, ErrMismatch)
	assert.Equal(t, 30, rep.Records())
	assert.Positive(t, rep.Mismatches)
}

func TestVerify_Canceled(t *testing.T) {
	data := writeDump(t, nil, randomBlocks(t, 3, 4), 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Verify(ctx, bytes.NewReader(data), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReader_Errors(t *testing.T) {
	_, err := NewReader(bytes.NewReader([]byte("TXF")))
	assert.ErrorIs(t, err, container.ErrTruncated)

	_, err = NewReader(bytes.NewReader([]byte("RIFF\x01\x00\x00\x00")))
	assert.ErrorIs(t, err, container.ErrInvalidSignature)

	// Missing DONE chunk.
	var buf bytes.Buffer
	buf.Write(container.AppendFileHeader(nil, container.FileHeader{Version: container.Version}))
	require.NoError(t, container.WriteChunk(&buf, container.FourCCLWHT, make([]byte, whtPayloadSize)))
	r, err := NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	_, err = r.Next()
	require.NoError(t, err)
	_, err = r.Next()
	assert.ErrorIs(t, err, ErrUnterminated)

	// Header only.
	_, err = NewReader(bytes.NewReader(container.AppendFileHeader(nil, container.FileHeader{Version: container.Version})))
	assert.ErrorIs(t, err, ErrUnterminated)
}

func TestReader_Corrupt(t *testing.T) {
	hdr := container.AppendFileHeader(nil, container.FileHeader{Version: container.Version})
	tests := []struct {
		name    string
		fourcc  uint32
		payload []byte
	}{
		{"bad size", container.FourCCBLCK, []byte{byte(av1txfm.NumTxSizes), 0, 0, 0}},
		{"bad type", container.FourCCBLCK, []byte{0, byte(av1txfm.NumTxTypes), 0, 0}},
		{"short block", container.FourCCBLCK, []byte{0, 0, 0, 0, 1, 2}},
		{"short wht", container.FourCCLWHT, make([]byte, 10)},
		{"bad count", container.FourCCDONE, []byte{5, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(append([]byte(nil), hdr...))
			require.NoError(t, container.WriteChunk(buf, tt.fourcc, tt.payload))
			r, err := NewReader(buf)
			require.NoError(t, err)
			_, err = r.Next()
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

func TestReader_SkipsUnknownChunks(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(container.AppendFileHeader(nil, container.FileHeader{Version: container.Version}))
	require.NoError(t, container.WriteChunk(&buf, container.FourCC('X', 'T', 'R', 'A'), []byte{1, 2, 3}))
	require.NoError(t, container.WriteChunk(&buf, container.FourCCDONE, make([]byte, 8)))

	r, err := NewReader(&buf)
	require.NoError(t, err)
	assert.Empty(t, r.Info())
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestWriter_Errors(t *testing.T) {
	_, err := NewWriter(io.Discard, &WriterOptions{Compression: 9})
	assert.ErrorIs(t, err, container.ErrCompression)

	_, err = NewWriter(io.Discard, &WriterOptions{Compression: CompressZlib, Level: 42})
	assert.Error(t, err)

	w, err := NewWriter(io.Discard, nil)
	require.NoError(t, err)

	src := make([]int16, 64)
	out := make([]int32, 64)
	assert.ErrorIs(t, w.WriteBlock(src, 8, av1txfm.NumTxSizes, av1txfm.DCTDCT, out), av1txfm.ErrInvalidTxSize)
	assert.ErrorIs(t, w.WriteBlock(src, 8, av1txfm.TX8x8, av1txfm.NumTxTypes, out), av1txfm.ErrInvalidTxType)
	assert.ErrorIs(t, w.WriteBlock(src, 4, av1txfm.TX8x8, av1txfm.DCTDCT, out), av1txfm.ErrInvalidStride)
	assert.ErrorIs(t, w.WriteBlock(src[:60], 8, av1txfm.TX8x8, av1txfm.DCTDCT, out), av1txfm.ErrShortSource)
	assert.ErrorIs(t, w.WriteBlock(src, 8, av1txfm.TX8x8, av1txfm.DCTDCT, out[:10]), av1txfm.ErrShortOutput)
	assert.Error(t, w.WriteRecord(&Record{Kind: Kind(7)}))
	assert.Zero(t, w.Count())

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.WriteWHT(src, 4, out), ErrClosed)
}

// limitWriter accepts n bytes and fails every write after that.
type limitWriter struct{ n int }

var errWriteLimit = errors.New("write limit reached")

func (w *limitWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		k := w.n
		w.n = 0
		return k, errWriteLimit
	}
	w.n -= len(p)
	return len(p), nil
}

func TestNewWriter_WriteFailures(t *testing.T) {
	_, err := NewWriter(&limitWriter{n: 3}, nil)
	assert.ErrorIs(t, err, errWriteLimit)

	// The header fits but the INFO chunk does not.
	_, err = NewWriter(&limitWriter{n: container.FileHeaderSize}, &WriterOptions{
		Compression: CompressNone,
		Info:        "producer",
	})
	assert.ErrorIs(t, err, errWriteLimit)
}

func TestRecompute_InvalidSize(t *testing.T) {
	rec := &Record{Kind: KindBlock, Size: av1txfm.TxSize(200)}
	var err error
	require.NotPanics(t, func() { _, err = rec.Recompute(nil) })
	assert.ErrorIs(t, err, av1txfm.ErrInvalidTxSize)
}

func TestWriteBatch_Error(t *testing.T) {
	blocks := randomBlocks(t, 5, 6)
	blocks[2].Out = blocks[2].Out[:1]
	w, err := NewWriter(io.Discard, nil)
	require.NoError(t, err)
	err = w.WriteBatch(blocks)
	var be *av1txfm.BlockError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 2, be.Index)
	assert.Equal(t, uint64(2), w.Count())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "block", KindBlock.String())
	assert.Equal(t, "wht", KindWHT.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.Equal(t, "Compression(7)", Compression(7).String())
}
