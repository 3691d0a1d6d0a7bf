package subghz

// TcxoTrim is the TCXO supply voltage trim.
type TcxoTrim byte

const (
	TcxoTrim1V6 TcxoTrim = 0x00
	TcxoTrim1V7 TcxoTrim = 0x01
	TcxoTrim1V8 TcxoTrim = 0x02
	TcxoTrim2V2 TcxoTrim = 0x03
	TcxoTrim2V4 TcxoTrim = 0x04
	TcxoTrim2V7 TcxoTrim = 0x05
	TcxoTrim3V0 TcxoTrim = 0x06
	TcxoTrim3V3 TcxoTrim = 0x07
)

// Millivolts returns the trim supply voltage in millivolts.
func (t TcxoTrim) Millivolts() uint16 {
	switch t {
	case TcxoTrim1V6:
		return 1600
	case TcxoTrim1V7:
		return 1700
	case TcxoTrim1V8:
		return 1800
	case TcxoTrim2V2:
		return 2200
	case TcxoTrim2V4:
		return 2400
	case TcxoTrim2V7:
		return 2700
	case TcxoTrim3V0:
		return 3000
	case TcxoTrim3V3:
		return 3300
	}
	return 0
}

// TcxoMode is the TCXO supply trim and HSE32 ready timeout, pre-framed for
// the SetTcxoMode command. Setters return a modified copy.
type TcxoMode struct {
	buf [5]byte
}

// NewTcxoMode returns a mode with 1.6V trim and no timeout.
func NewTcxoMode() TcxoMode {
	return TcxoMode{buf: [5]byte{0: byte(opSetTcxoMode)}}
}

// SetTcxoTrim sets the TCXO supply voltage trim.
func (m TcxoMode) SetTcxoTrim(trim TcxoTrim) TcxoMode {
	m.buf[1] = byte(trim)
	return m
}

// SetTimeout sets the HSE32 ready timeout.
func (m TcxoMode) SetTimeout(to Timeout) TcxoMode {
	b := to.asBytes()
	m.buf[2] = b[0]
	m.buf[3] = b[1]
	m.buf[4] = b[2]
	return m
}

// AsSlice returns the complete SetTcxoMode frame.
func (m TcxoMode) AsSlice() []byte { return m.buf[:] }
