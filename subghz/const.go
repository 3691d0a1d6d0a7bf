package subghz

// opCode is a one-byte command identifier, see table 41 "Sub-GHz radio SPI
// commands overview" in the reference manual. The set is exhaustive; commands
// without a corresponding Device method are not implemented yet.
type opCode byte

const (
	opCalibrate              opCode = 0x89
	opCalibrateImage         opCode = 0x98
	opCfgDioIrq              opCode = 0x08
	opClrError               opCode = 0x07
	opClrIrqStatus           opCode = 0x02
	opGetError               opCode = 0x17
	opGetIrqStatus           opCode = 0x12
	opGetPacketStatus        opCode = 0x14
	opGetPacketType          opCode = 0x11
	opGetRssiInst            opCode = 0x15
	opGetRxBufferStatus      opCode = 0x13
	opGetStats               opCode = 0x10
	opGetStatus              opCode = 0xC0
	opReadBuffer             opCode = 0x1E
	opReadRegister           opCode = 0x1D
	opResetStats             opCode = 0x00
	opSetBufferBaseAddress   opCode = 0x8F
	opSetCad                 opCode = 0xC5
	opSetCadParams           opCode = 0x88
	opSetFs                  opCode = 0xC1
	opSetLoRaSymbTimeout     opCode = 0xA0
	opSetModulationParams    opCode = 0x8B
	opSetPacketParams        opCode = 0x8C
	opSetPacketType          opCode = 0x8A
	opSetPaConfig            opCode = 0x95
	opSetRegulatorMode       opCode = 0x96
	opSetRfFrequency         opCode = 0x86
	opSetRx                  opCode = 0x82
	opSetRxDutyCycle         opCode = 0x94
	opSetSleep               opCode = 0x84
	opSetStandby             opCode = 0x80
	opSetStopRxTimerOnPreamb opCode = 0x9F
	opSetTcxoMode            opCode = 0x97
	opSetTx                  opCode = 0x83
	opSetTxContinuousPreamb  opCode = 0xD2
	opSetTxContinuousWave    opCode = 0xD1
	opSetTxParams            opCode = 0x8E
	opSetTxRxFallbackMode    opCode = 0x93
	opWriteBuffer            opCode = 0x0E
	opWriteRegister          opCode = 0x0D
)

// register is a 16-bit radio register address, accessed with the
// ReadRegister/WriteRegister opcodes.
type register uint16

const (
	// PA over-current protection.
	regPAOCP register = 0x08E7
	// LoRa synchronization word MSB.
	regLSYNCH register = 0x0740
	// LoRa synchronization word LSB.
	regLSYNCL register = 0x0741
	// Generic synchronization word 7 (base of the 8-byte sync word).
	regGSYNC7 register = 0x06C0
	// HSE32 OSC_IN capacitor trim.
	regHSEINTRIM register = 0x0911
	// HSE32 OSC_OUT capacitor trim.
	regHSEOUTTRIM register = 0x0912
)

// StandbyClk selects the clock the radio runs from in standby mode.
type StandbyClk byte

const (
	// Standby on the 13 MHz RC oscillator.
	StandbyRc StandbyClk = 0x00
	// Standby on the HSE32 crystal oscillator.
	StandbyHse32 StandbyClk = 0x01
)

// RegMode selects the radio power supply regulator.
type RegMode byte

const (
	// Linear dropout regulator only.
	RegModeLdo RegMode = 0x00
	// Switch mode power supply, falling back to LDO where needed.
	RegModeSmps RegMode = 0x01
)

// RxTimeoutStop selects the receiver event that stops the RX timeout timer.
type RxTimeoutStop byte

const (
	// Timer stops on sync word or header detection.
	RxTimeoutStopSync RxTimeoutStop = 0x00
	// Timer stops on preamble detection.
	RxTimeoutStopPreamble RxTimeoutStop = 0x01
)

// PacketType is the framing and modulation scheme, set with SetPacketType.
// The parameter and status commands that follow it are interpreted under the
// active packet type; the driver does not sequence-check this (see Device).
type PacketType byte

const (
	PacketTypeFsk  PacketType = 0x00
	PacketTypeLoRa PacketType = 0x01
	PacketTypeBpsk PacketType = 0x02
	PacketTypeMsk  PacketType = 0x03
)

// packetTypeFromBits decodes the GetPacketType reply byte. ok is false for
// values outside the defined set.
func packetTypeFromBits(bits byte) (pt PacketType, ok bool) {
	return PacketType(bits), bits <= byte(PacketTypeMsk)
}

func (pt PacketType) String() string {
	switch pt {
	case PacketTypeFsk:
		return "FSK"
	case PacketTypeLoRa:
		return "LoRa"
	case PacketTypeBpsk:
		return "BPSK"
	case PacketTypeMsk:
		return "MSK"
	}
	return "unknown"
}

// Ocp is the power amplifier over-current protection limit,
// written to register 0x08E7.
type Ocp byte

const (
	// 60 mA limit, for the low-power PA.
	OcpMax60m Ocp = 0x18
	// 140 mA limit, for the high-power PA.
	OcpMax140m Ocp = 0x38
)

// Calibrate selects internal blocks to calibrate. Values combine with
// bitwise or. Bit 7 is reserved and always written as zero.
type Calibrate uint8

const (
	CalibrateRc64K    Calibrate = 1 << 0
	CalibrateRc13M    Calibrate = 1 << 1
	CalibratePll      Calibrate = 1 << 2
	CalibrateAdcPulse Calibrate = 1 << 3
	CalibrateAdcBulkN Calibrate = 1 << 4
	CalibrateAdcBulkP Calibrate = 1 << 5
	// Image rejection calibration.
	CalibrateImg Calibrate = 1 << 6

	// Every calibratable block.
	CalibrateAll Calibrate = 0x7F
)

// OpError is the radio operational error bitmask reported by GetError.
// The driver never clears these; use ClearError explicitly.
type OpError uint16

const (
	// RC64K calibration failed.
	OpErrorRc64kCalibration OpError = 1 << 0
	// RC13M calibration failed.
	OpErrorRc13mCalibration OpError = 1 << 1
	// PLL calibration failed.
	OpErrorPllCalibration OpError = 1 << 2
	// ADC calibration failed.
	OpErrorAdcCalibration OpError = 1 << 3
	// Image calibration failed.
	OpErrorImageCalibration OpError = 1 << 4
	// HSE32 oscillator failed to start.
	OpErrorXoscStart OpError = 1 << 5
	// PLL failed to lock.
	OpErrorPllLock OpError = 1 << 6
	// PA ramping failed.
	OpErrorPaRamp OpError = 1 << 8
)
