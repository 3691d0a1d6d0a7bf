package subghz

import "strconv"

// Ratio is an exact rational quantity. Signal strength readings are kept as
// ratios so that repeated reads can be averaged without rounding drift;
// round to a machine number only at presentation time.
type Ratio struct {
	Num int16
	Den int16
}

// Round returns the ratio rounded to the nearest integer, halves away
// from zero.
func (r Ratio) Round() int16 {
	n, d := int32(r.Num), int32(r.Den)
	if d < 0 {
		n, d = -n, -d
	}
	if n >= 0 {
		return int16((n + d/2) / d)
	}
	return int16((n - d/2) / d)
}

func (r Ratio) String() string {
	return strconv.Itoa(int(r.Num)) + "/" + strconv.Itoa(int(r.Den))
}
