package subghz

// CalibrateImage is the frequency band pair for image calibration.
// Each byte is a band edge in 4 MHz units.
type CalibrateImage struct {
	f1 byte
	f2 byte
}

// Image calibration bands for common ISM allocations.
var (
	Ism430_440 = NewCalibrateImage(0x6B, 0x6F)
	Ism470_510 = NewCalibrateImage(0x75, 0x81)
	Ism779_787 = NewCalibrateImage(0xC1, 0xC5)
	Ism863_870 = NewCalibrateImage(0xD7, 0xDB)
	Ism902_928 = NewCalibrateImage(0xE1, 0xE9)
)

// NewCalibrateImage builds a band pair from raw band edge bytes.
func NewCalibrateImage(f1, f2 byte) CalibrateImage {
	return CalibrateImage{f1: f1, f2: f2}
}
