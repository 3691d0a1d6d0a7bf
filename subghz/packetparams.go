package subghz

// PreambleDetection is the minimum preamble length the receiver must see
// before it starts demodulating.
type PreambleDetection byte

const (
	// Preamble detection disabled.
	PreambleDetectionOff PreambleDetection = 0x00
	// 8-bit preamble detection.
	PreambleDetection8 PreambleDetection = 0x04
	// 16-bit preamble detection.
	PreambleDetection16 PreambleDetection = 0x05
	// 24-bit preamble detection.
	PreambleDetection24 PreambleDetection = 0x06
	// 32-bit preamble detection.
	PreambleDetection32 PreambleDetection = 0x07
)

// AddrComp selects receiver address filtering.
type AddrComp byte

const (
	// No address filtering.
	AddrCompOff AddrComp = 0x00
	// Filter on the node address.
	AddrCompNode AddrComp = 0x01
	// Filter on the node or broadcast address.
	AddrCompBroadcast AddrComp = 0x02
)

// PayloadType selects fixed or variable length packets.
type PayloadType byte

const (
	// Payload length is known on both sides, not sent on the wire.
	PayloadTypeFixed PayloadType = 0x00
	// Payload length is sent in the packet header.
	PayloadTypeVariable PayloadType = 0x01
)

// CrcType selects the packet CRC.
type CrcType byte

const (
	Crc1Byte    CrcType = 0x00
	CrcOff      CrcType = 0x01
	Crc2Byte    CrcType = 0x02
	Crc1ByteInv CrcType = 0x04
	Crc2ByteInv CrcType = 0x06
)

// GenericPacketParams are the generic (FSK) packet parameters, pre-framed
// for the SetPacketParams command. Setters return a modified copy.
//
// The wire slot is shared with the other modulation families; the radio
// interprets it under the active packet type.
type GenericPacketParams struct {
	buf [10]byte
}

// NewGenericPacketParams returns packet params with a one-symbol preamble
// and everything else at its reset value.
func NewGenericPacketParams() GenericPacketParams {
	p := GenericPacketParams{buf: [10]byte{0: byte(opSetPacketParams)}}
	return p.SetPreambleLen(1)
}

// SetPreambleLen sets the preamble length in symbols. Zero is coerced to
// one, the shortest preamble the radio can emit.
func (p GenericPacketParams) SetPreambleLen(len uint16) GenericPacketParams {
	if len == 0 {
		len = 1
	}
	p.buf[1] = byte(len >> 8)
	p.buf[2] = byte(len)
	return p
}

// SetPreambleDetection sets the receiver preamble detector length.
func (p GenericPacketParams) SetPreambleDetection(pd PreambleDetection) GenericPacketParams {
	p.buf[3] = byte(pd)
	return p
}

// SetSyncWordLen sets the sync word length in bits, saturating at 64.
func (p GenericPacketParams) SetSyncWordLen(bits uint8) GenericPacketParams {
	if bits > 0x40 {
		bits = 0x40
	}
	p.buf[4] = bits
	return p
}

// SetAddrComp sets receiver address filtering.
func (p GenericPacketParams) SetAddrComp(ac AddrComp) GenericPacketParams {
	p.buf[5] = byte(ac)
	return p
}

// SetPayloadType sets fixed or variable length packets.
func (p GenericPacketParams) SetPayloadType(pt PayloadType) GenericPacketParams {
	p.buf[6] = byte(pt)
	return p
}

// SetPayloadLen sets the payload length in bytes.
func (p GenericPacketParams) SetPayloadLen(len uint8) GenericPacketParams {
	p.buf[7] = len
	return p
}

// SetCrcType sets the CRC.
func (p GenericPacketParams) SetCrcType(ct CrcType) GenericPacketParams {
	p.buf[8] = byte(ct)
	return p
}

// SetWhiteningEnable enables or disables payload whitening.
func (p GenericPacketParams) SetWhiteningEnable(en bool) GenericPacketParams {
	p.buf[9] = b2u8(en)
	return p
}

// AsSlice returns the complete SetPacketParams frame.
func (p GenericPacketParams) AsSlice() []byte { return p.buf[:] }
