package subghz

// PaSel selects the power amplifier.
type PaSel byte

const (
	// High-power PA, up to +22 dBm.
	PaSelHp PaSel = 0x00
	// Low-power PA, up to +15 dBm.
	PaSelLp PaSel = 0x01
)

// PaConfig customizes the power amplifier maximum output power and
// efficiency, pre-framed for the SetPaConfig command. Setters return a
// modified copy. The last frame byte is fixed at 0x01.
type PaConfig struct {
	buf [5]byte
}

// NewPaConfig returns a configuration with the low-power PA selected and
// duty cycle and HP max at zero.
func NewPaConfig() PaConfig {
	return PaConfig{buf: [5]byte{
		byte(opSetPaConfig), 0x00, 0x00, byte(PaSelLp), 0x01,
	}}
}

// SetPaDutyCycle sets the PA duty cycle (conduction angle) control.
// Values above 0x07 can damage the device and are clamped.
func (p PaConfig) SetPaDutyCycle(dc uint8) PaConfig {
	if dc > 0x07 {
		dc = 0x07
	}
	p.buf[1] = dc
	return p
}

// SetHpMax sets the high-power PA output ceiling, 0x00 to 0x07.
// Only meaningful with the high-power PA selected.
func (p PaConfig) SetHpMax(hp uint8) PaConfig {
	if hp > 0x07 {
		hp = 0x07
	}
	p.buf[2] = hp
	return p
}

// SetPa selects the power amplifier.
func (p PaConfig) SetPa(pa PaSel) PaConfig {
	p.buf[3] = byte(pa)
	return p
}

// AsSlice returns the complete SetPaConfig frame.
func (p PaConfig) AsSlice() []byte { return p.buf[:] }
