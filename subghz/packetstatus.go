package subghz

// GfskPacketStatus describes the last received (G)FSK packet.
type GfskPacketStatus struct {
	buf [4]byte
}

// GfskPacketStatusFromRaw decodes the 4-byte GetPacketStatus block.
// Decoding is total.
func GfskPacketStatusFromRaw(raw [4]byte) GfskPacketStatus {
	return GfskPacketStatus{buf: raw}
}

// Status returns the status sampled when the packet status was read.
func (p GfskPacketStatus) Status() Status { return Status(p.buf[0]) }

// RxStatus returns the raw receiver status bits.
func (p GfskPacketStatus) RxStatus() uint8 { return p.buf[1] }

// RssiSync returns the RSSI captured at sync word detection, in dBm.
func (p GfskPacketStatus) RssiSync() Ratio {
	return Ratio{Num: int16(p.buf[2]), Den: -2}
}

// RssiAvg returns the RSSI averaged over the payload, in dBm.
func (p GfskPacketStatus) RssiAvg() Ratio {
	return Ratio{Num: int16(p.buf[3]), Den: -2}
}
