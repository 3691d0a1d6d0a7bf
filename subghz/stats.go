package subghz

// FskStats are packet statistics decoded under the (G)FSK interpretation.
// Decoding the raw block while LoRa is the active packet type yields
// garbage counters; the caller tracks which family is active.
type FskStats struct {
	// Status sampled when the stats were read.
	Status Status
	// Packets received.
	PktReceived uint16
	// Packets received with a CRC error.
	CrcErrors uint16
	// Packets received with a length error.
	LenErrors uint16
}

// LoRaStats are packet statistics decoded under the LoRa interpretation.
type LoRaStats struct {
	// Status sampled when the stats were read.
	Status Status
	// Packets received.
	PktReceived uint16
	// Packets received with a CRC error.
	CrcErrors uint16
	// Packets received with a header error.
	HeaderErrors uint16
}

// FskStatsFromRaw decodes the 7-byte GetStats block as (G)FSK statistics.
// Decoding is total; every input produces a defined result.
func FskStatsFromRaw(raw [7]byte) FskStats {
	s, rx, crc, last := decodeStats(raw)
	return FskStats{Status: s, PktReceived: rx, CrcErrors: crc, LenErrors: last}
}

// LoRaStatsFromRaw decodes the 7-byte GetStats block as LoRa statistics.
func LoRaStatsFromRaw(raw [7]byte) LoRaStats {
	s, rx, crc, last := decodeStats(raw)
	return LoRaStats{Status: s, PktReceived: rx, CrcErrors: crc, HeaderErrors: last}
}

func decodeStats(raw [7]byte) (s Status, rx, crc, last uint16) {
	s = Status(raw[0])
	rx = uint16(raw[1])<<8 | uint16(raw[2])
	crc = uint16(raw[3])<<8 | uint16(raw[4])
	last = uint16(raw[5])<<8 | uint16(raw[6])
	return s, rx, crc, last
}
