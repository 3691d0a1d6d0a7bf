package subghz

import "errors"

// ErrBadPacketType is returned when the radio reports a packet type
// outside the defined set.
var ErrBadPacketType = errors.New("subghz: invalid packet type")

// Operating mode commands.

// SetStandby puts the radio into standby mode on the given clock.
func (d *Device) SetStandby(clk StandbyClk) error {
	return d.write([]byte{byte(opSetStandby), byte(clk)})
}

// SetTx puts the radio in TX mode. A disabled timeout transmits with no
// time limit.
func (d *Device) SetTx(timeout Timeout) error {
	b := timeout.asBytes()
	return d.write([]byte{byte(opSetTx), b[0], b[1], b[2]})
}

// SetRx puts the radio in RX mode. A disabled timeout selects single
// reception with no time limit, a one-shot that ends at the first packet.
func (d *Device) SetRx(timeout Timeout) error {
	b := timeout.asBytes()
	return d.write([]byte{byte(opSetRx), b[0], b[1], b[2]})
}

// SetRxTimeoutStop selects the receiver event that stops the RX timeout
// timer.
func (d *Device) SetRxTimeoutStop(stop RxTimeoutStop) error {
	return d.write([]byte{byte(opSetStopRxTimerOnPreamb), byte(stop)})
}

// SetTxContinuousWave transmits a continuous carrier, for testing.
func (d *Device) SetTxContinuousWave() error {
	return d.write([]byte{byte(opSetTxContinuousWave)})
}

// Radio configuration commands.

// SetPacketType sets the modulation scheme. It must precede the
// family-specific parameter and status commands.
func (d *Device) SetPacketType(pt PacketType) error {
	return d.write([]byte{byte(opSetPacketType), byte(pt)})
}

// PacketType returns the active modulation scheme.
func (d *Device) PacketType() (PacketType, error) {
	var buf [2]byte
	if err := d.read(opGetPacketType, buf[:]); err != nil {
		return 0, err
	}
	pt, ok := packetTypeFromBits(buf[1])
	if !ok {
		return pt, ErrBadPacketType
	}
	return pt, nil
}

// SetRfFrequency sets the radio carrier frequency.
func (d *Device) SetRfFrequency(freq RfFreq) error {
	return d.write(freq.AsSlice())
}

// SetTxParams sets the TX output power and PA ramp time. The power scale
// depends on the PA selected with SetPaConfig.
func (d *Device) SetTxParams(power uint8, ramp RampTime) error {
	return d.write([]byte{byte(opSetTxParams), power, byte(ramp)})
}

// SetPaConfig customizes the power amplifier.
func (d *Device) SetPaConfig(cfg PaConfig) error {
	return d.write(cfg.AsSlice())
}

// SetBufferBaseAddress sets the TX and RX packet buffer base addresses.
func (d *Device) SetBufferBaseAddress(tx, rx uint8) error {
	return d.write([]byte{byte(opSetBufferBaseAddress), tx, rx})
}

// SetGfskModParams sets the (G)FSK modulation parameters. The FSK packet
// type must be active.
func (d *Device) SetGfskModParams(params GfskModParams) error {
	return d.write(params.AsSlice())
}

// SetLoRaModParams sets the LoRa modulation parameters. The LoRa packet
// type must be active.
func (d *Device) SetLoRaModParams(params LoRaModParams) error {
	return d.write(params.AsSlice())
}

// SetPacketParams sets the packet parameters for the active packet type.
func (d *Device) SetPacketParams(params GenericPacketParams) error {
	return d.write(params.AsSlice())
}

// Communication status and information commands.

// Status returns the radio status. The hardware has documented conditions
// under which both fields hold reserved values.
func (d *Device) Status() (Status, error) {
	b, err := d.read1(opGetStatus)
	return Status(b), err
}

// RxBufferStatus returns the length and buffer pointer of the last
// received packet.
func (d *Device) RxBufferStatus() (status Status, len, ptr uint8, err error) {
	var buf [3]byte
	err = d.read(opGetRxBufferStatus, buf[:])
	return Status(buf[0]), buf[1], buf[2], err
}

// GfskPacketStatus returns information on the last received (G)FSK packet.
func (d *Device) GfskPacketStatus() (GfskPacketStatus, error) {
	var buf [4]byte
	err := d.read(opGetPacketStatus, buf[:])
	return GfskPacketStatusFromRaw(buf), err
}

// RssiInst returns the instantaneous signal strength during reception,
// in dBm.
func (d *Device) RssiInst() (Status, Ratio, error) {
	var buf [2]byte
	err := d.read(opGetRssiInst, buf[:])
	return Status(buf[0]), Ratio{Num: int16(buf[1]), Den: -2}, err
}

// FskStats returns packet statistics under the (G)FSK interpretation.
func (d *Device) FskStats() (FskStats, error) {
	var buf [7]byte
	err := d.read(opGetStats, buf[:])
	return FskStatsFromRaw(buf), err
}

// LoRaStats returns packet statistics under the LoRa interpretation.
func (d *Device) LoRaStats() (LoRaStats, error) {
	var buf [7]byte
	err := d.read(opGetStats, buf[:])
	return LoRaStatsFromRaw(buf), err
}

// ResetStats resets the counters reported by FskStats and LoRaStats.
func (d *Device) ResetStats() error {
	return d.write([]byte{byte(opResetStats), 0, 0, 0, 0, 0, 0})
}

// IRQ commands.

// SetIrqCfg sets the interrupt configuration.
func (d *Device) SetIrqCfg(cfg CfgDioIrq) error {
	return d.write(cfg.AsSlice())
}

// IrqStatus returns the pending interrupt causes.
func (d *Device) IrqStatus() (Status, Irq, error) {
	var buf [3]byte
	err := d.read(opGetIrqStatus, buf[:])
	return Status(buf[0]), Irq(buf[1])<<8 | Irq(buf[2]), err
}

// ClearIrqStatus clears the given pending interrupt causes.
func (d *Device) ClearIrqStatus(mask Irq) error {
	return d.write([]byte{byte(opClrIrqStatus), byte(mask >> 8), byte(mask)})
}

// Miscellaneous commands.

// Calibrate calibrates the selected blocks. Requires standby mode; busy
// stays asserted until every enabled calibration finishes. Bit 7 is
// reserved and always written as zero.
func (d *Device) Calibrate(cal Calibrate) error {
	return d.write([]byte{byte(opCalibrate), byte(cal) & 0x7F})
}

// CalibrateImage calibrates the image rejection for a frequency band.
// Requires standby mode.
func (d *Device) CalibrateImage(cal CalibrateImage) error {
	return d.write([]byte{byte(opCalibrateImage), cal.f1, cal.f2})
}

// SetRegulatorMode sets the radio power supply regulator.
func (d *Device) SetRegulatorMode(mode RegMode) error {
	return d.write([]byte{byte(opSetRegulatorMode), byte(mode)})
}

// OpError returns the operational error bitmask. Errors accumulate until
// cleared with ClearError; the driver never clears them on its own.
func (d *Device) OpError() (Status, OpError, error) {
	var buf [3]byte
	err := d.read(opGetError, buf[:])
	return Status(buf[0]), OpError(buf[1])<<8 | OpError(buf[2]), err
}

// ClearError clears every error reported by OpError.
func (d *Device) ClearError() error {
	return d.write([]byte{byte(opClrError), 0x00})
}

// SetTcxoMode sets the TCXO supply trim and HSE32 ready timeout.
func (d *Device) SetTcxoMode(mode TcxoMode) error {
	return d.write(mode.AsSlice())
}

// Direct register access.

// SetLoRaSyncWord sets the two-byte LoRa sync word. The LoRa packet type
// must be active.
func (d *Device) SetLoRaSyncWord(sync uint16) error {
	return d.writeRegister(regLSYNCH, byte(sync>>8), byte(sync))
}

// SetSyncWord sets the 8-byte generic (FSK) sync word.
func (d *Device) SetSyncWord(sync [8]byte) error {
	return d.writeRegister(regGSYNC7, sync[:]...)
}

// SetPaOcp sets the power amplifier over-current protection.
func (d *Device) SetPaOcp(ocp Ocp) error {
	return d.writeRegister(regPAOCP, byte(ocp))
}

// SetHseInTrim sets the HSE32 OSC_IN capacitor trim.
func (d *Device) SetHseInTrim(trim uint8) error {
	return d.writeRegister(regHSEINTRIM, trim)
}

// SetHseOutTrim sets the HSE32 OSC_OUT capacitor trim.
func (d *Device) SetHseOutTrim(trim uint8) error {
	return d.writeRegister(regHSEOUTTRIM, trim)
}
