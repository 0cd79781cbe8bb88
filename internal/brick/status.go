package brick

// Device status codes, reproduced verbatim from the brick firmware for
// wire compatibility. A closed enumeration: firmware revisions within the
// supported protocol never add codes.
const (
	StatusOK                 = 0x00
	StatusPendingTransaction = 0x20
	StatusMailboxEmpty       = 0x40
	StatusNoMoreHandles      = 0x81
	StatusNoSpace            = 0x82
	StatusNoMoreFiles        = 0x83
	StatusEOFExpected        = 0x84
	StatusEOF                = 0x85
	StatusNotLinearFile      = 0x86
	StatusFileNotFound       = 0x87
	StatusHandleClosed       = 0x88
	StatusNoLinearSpace      = 0x89
	StatusUndefined          = 0x8A
	StatusFileBusy           = 0x8B
	StatusNoWriteBuffers     = 0x8C
	StatusAppendImpossible   = 0x8D
	StatusFileFull           = 0x8E
	StatusFileExists         = 0x8F
	StatusModuleNotFound     = 0x90
	StatusOutOfBoundary      = 0x91
	StatusIllegalFileName    = 0x92
	StatusIllegalHandle      = 0x93
	StatusRequestFailed      = 0xBD
	StatusUnknownOpcode      = 0xBE
	StatusInsanePacket       = 0xBF
	StatusOutOfRangeData     = 0xC0
	StatusBusError           = 0xDD
	StatusNoCommBuffer       = 0xDE
	StatusChannelInvalid     = 0xDF
	StatusChannelBusy        = 0xE0
	StatusNoActiveProgram    = 0xEC
	StatusIllegalSize        = 0xED
	StatusIllegalQueue       = 0xEE
	StatusBadStructField     = 0xEF
	StatusBadInputOutput     = 0xF0
	StatusInsufficientMemory = 0xFB
	StatusBadArguments       = 0xFF
)

var statusNames = map[byte]string{
	StatusPendingTransaction: "pending communication transaction in progress",
	StatusMailboxEmpty:       "specified mailbox queue is empty",
	StatusNoMoreHandles:      "no more handles",
	StatusNoSpace:            "no space",
	StatusNoMoreFiles:        "no more files",
	StatusEOFExpected:        "end of file expected",
	StatusEOF:                "end of file",
	StatusNotLinearFile:      "not a linear file",
	StatusFileNotFound:       "file not found",
	StatusHandleClosed:       "handle already closed",
	StatusNoLinearSpace:      "no linear space",
	StatusUndefined:          "undefined error",
	StatusFileBusy:           "file is busy",
	StatusNoWriteBuffers:     "no write buffers",
	StatusAppendImpossible:   "append not possible",
	StatusFileFull:           "file is full",
	StatusFileExists:         "file exists",
	StatusModuleNotFound:     "module not found",
	StatusOutOfBoundary:      "out of boundary",
	StatusIllegalFileName:    "illegal file name",
	StatusIllegalHandle:      "illegal handle",
	StatusRequestFailed:      "request failed (specified file not found)",
	StatusUnknownOpcode:      "unknown command opcode",
	StatusInsanePacket:       "insane packet",
	StatusOutOfRangeData:     "data contains out-of-range values",
	StatusBusError:           "communication bus error",
	StatusNoCommBuffer:       "no free memory in communication buffer",
	StatusChannelInvalid:     "specified channel or connection is not valid",
	StatusChannelBusy:        "specified channel or connection not configured or busy",
	StatusNoActiveProgram:    "no active program",
	StatusIllegalSize:        "illegal size specified",
	StatusIllegalQueue:       "illegal mailbox queue ID specified",
	StatusBadStructField:     "attempted to access invalid field of a structure",
	StatusBadInputOutput:     "bad input or output specified",
	StatusInsufficientMemory: "insufficient memory available",
	StatusBadArguments:       "bad arguments",
}

// StatusName returns the firmware's name for a status code, or empty for
// codes outside the table.
func StatusName(code byte) string {
	return statusNames[code]
}
