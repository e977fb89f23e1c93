package coefdump

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/deepteams/av1txfm"
)

// ErrMismatch is returned by Verify when recomputed coefficients differ
// from the recorded ones.
var ErrMismatch = errors.New("coefdump: coefficient mismatch")

// Mismatch locates the first differing coefficient of a record.
type Mismatch struct {
	Record int
	Kind   Kind
	Size   av1txfm.TxSize
	Type   av1txfm.TxType
	Coeff  int   // index into the packed coefficients
	Got    int32 // recomputed
	Want   int32 // recorded
}

func (m *Mismatch) String() string {
	if m.Kind == KindWHT {
		return fmt.Sprintf("record %d (wht): coefficient %d = %d, recorded %d", m.Record, m.Coeff, m.Got, m.Want)
	}
	return fmt.Sprintf("record %d (%v %v): coefficient %d = %d, recorded %d",
		m.Record, m.Size, m.Type, m.Coeff, m.Got, m.Want)
}

// Report summarizes a verification pass.
type Report struct {
	Info       string
	Blocks     int
	WHTBlocks  int
	Mismatches int
	First      *Mismatch // nil when every record matched
}

// Records returns the number of records checked.
func (r *Report) Records() int { return r.Blocks + r.WHTBlocks }

// Verify reads the dump from r, recomputes every record with e (the default
// integer engine when nil) and compares the coefficients. All records are
// checked; if any differ the returned error wraps ErrMismatch and the report
// locates the first difference. Format errors stop the pass.
func Verify(ctx context.Context, r io.Reader, e *av1txfm.Engine) (*Report, error) {
	if e == nil {
		var err error
		if e, err = av1txfm.NewEngine(nil); err != nil {
			return nil, err
		}
	}
	dr, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dr.Close()

	rep := &Report{Info: dr.Info()}
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		rec, err := dr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rep, err
		}
		got, err := rec.Recompute(e)
		if err != nil {
			return rep, fmt.Errorf("coefdump: record %d: %w", i, err)
		}
		if rec.Kind == KindWHT {
			rep.WHTBlocks++
		} else {
			rep.Blocks++
		}
		for k, v := range got {
			if v == rec.Coeffs[k] {
				continue
			}
			rep.Mismatches++
			if rep.First == nil {
				rep.First = &Mismatch{
					Record: i, Kind: rec.Kind, Size: rec.Size, Type: rec.Type,
					Coeff: k, Got: v, Want: rec.Coeffs[k],
				}
			}
			break
		}
	}
	if rep.Mismatches > 0 {
		return rep, fmt.Errorf("%w: %d of %d records differ, first %v",
			ErrMismatch, rep.Mismatches, rep.Records(), rep.First)
	}
	return rep, nil
}
