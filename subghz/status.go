package subghz

// StatusMode is the 3-bit chip operating mode field of Status.
type StatusMode uint8

const (
	StatusModeStandbyRc    StatusMode = 0x2
	StatusModeStandbyHse32 StatusMode = 0x3
	StatusModeFs           StatusMode = 0x4
	StatusModeRx           StatusMode = 0x5
	StatusModeTx           StatusMode = 0x6
)

func (m StatusMode) String() string {
	switch m {
	case StatusModeStandbyRc:
		return "standby RC"
	case StatusModeStandbyHse32:
		return "standby HSE32"
	case StatusModeFs:
		return "FS"
	case StatusModeRx:
		return "RX"
	case StatusModeTx:
		return "TX"
	}
	return "reserved"
}

// CmdStatus is the 3-bit command status field of Status.
type CmdStatus uint8

const (
	// Data is available to the host.
	CmdStatusAvailable CmdStatus = 0x2
	// Command timed out.
	CmdStatusTimeout CmdStatus = 0x3
	// Command processing error.
	CmdStatusProcessingError CmdStatus = 0x4
	// Command execution failure.
	CmdStatusExecutionFailure CmdStatus = 0x5
	// Transmission completed.
	CmdStatusComplete CmdStatus = 0x6
)

func (c CmdStatus) String() string {
	switch c {
	case CmdStatusAvailable:
		return "data available"
	case CmdStatusTimeout:
		return "command timeout"
	case CmdStatusProcessingError:
		return "command processing error"
	case CmdStatusExecutionFailure:
		return "command execution failure"
	case CmdStatusComplete:
		return "command complete"
	}
	return "reserved"
}

// Status is the radio status byte returned first on every get command.
//
// The hardware is documented to return reserved bit patterns in both fields
// under some conditions. Decoding is therefore total: reserved patterns are
// reported as-is with ok set to false, they are never coerced to a defined
// value and never treated as a decode error.
type Status uint8

// Mode returns the chip operating mode field. ok is false when the radio
// reported a reserved pattern; mode then holds the raw 3-bit field, which is
// distinct from every defined StatusMode constant.
func (s Status) Mode() (mode StatusMode, ok bool) {
	mode = StatusMode((s >> 4) & 0b111)
	switch mode {
	case StatusModeStandbyRc, StatusModeStandbyHse32, StatusModeFs,
		StatusModeRx, StatusModeTx:
		return mode, true
	}
	return mode, false
}

// Cmd returns the command status field. ok is false when the radio reported
// a reserved pattern; cmd then holds the raw 3-bit field.
func (s Status) Cmd() (cmd CmdStatus, ok bool) {
	cmd = CmdStatus((s >> 1) & 0b111)
	switch cmd {
	case CmdStatusAvailable, CmdStatusTimeout, CmdStatusProcessingError,
		CmdStatusExecutionFailure, CmdStatusComplete:
		return cmd, true
	}
	return cmd, false
}

func (s Status) String() string {
	mode, _ := s.Mode()
	cmd, _ := s.Cmd()
	return "mode: " + mode.String() + ", cmd: " + cmd.String()
}
