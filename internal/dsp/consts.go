package dsp

import "math"

// Cosine basis constants at 14-bit precision: cospiK = round(2^14 * cos(K*pi/64)).
// Values match the AV1 reference encoder tables (cospi_K_64).
const (
	cospi1  = 16364
	cospi2  = 16305
	cospi3  = 16207
	cospi4  = 16069
	cospi5  = 15893
	cospi6  = 15679
	cospi7  = 15426
	cospi8  = 15137
	cospi9  = 14811
	cospi10 = 14449
	cospi11 = 14053
	cospi12 = 13623
	cospi13 = 13160
	cospi14 = 12665
	cospi15 = 12140
	cospi16 = 11585
	cospi17 = 11003
	cospi18 = 10394
	cospi19 = 9760
	cospi20 = 9102
	cospi21 = 8423
	cospi22 = 7723
	cospi23 = 7005
	cospi24 = 6270
	cospi25 = 5520
	cospi26 = 4756
	cospi27 = 3981
	cospi28 = 3196
	cospi29 = 2404
	cospi30 = 1606
	cospi31 = 804
)

// Sine basis constants for the 4-point ADST:
// sinpiK_9 = round(2^14 * 2*sqrt(2)/3 * sin(K*pi/9)).
const (
	sinpi1_9 = 5283
	sinpi2_9 = 9929
	sinpi3_9 = 13377
	sinpi4_9 = 15212
)

// sqrt2 is round(2^14 * sqrt(2)).
const sqrt2 = 23170

// dctConstBits is the fractional precision of the 14-bit constants above.
const dctConstBits = 14

// UnitQuantShift and UnitQuantFactor describe the fixed scale the lossless
// Walsh-Hadamard transform applies to its output.
const (
	UnitQuantShift  = 2
	UnitQuantFactor = 1 << UnitQuantShift
)

// Supported precisions of the variable-precision cosine tables.
const (
	cosBitMin = 10
	cosBitMax = 16
)

// cospiTables[n][i] = round(2^n * cos(i*pi/128)), for n in [cosBitMin, cosBitMax].
// Read-only after init.
var cospiTables [cosBitMax + 1][64]int32

func initCospiTables() {
	for n := cosBitMin; n <= cosBitMax; n++ {
		scale := float64(int64(1) << uint(n))
		for i := 0; i < 64; i++ {
			cospiTables[n][i] = int32(math.Round(math.Cos(math.Pi*float64(i)/128) * scale))
		}
	}
}
