// Package rover implements the HTTP text-query control protocol for the
// camera-equipped wheeled robot: navigation commands as CGI queries, and
// replies parsed out of the "Cmd = nav" / "responses = <code>|<payload>"
// marker format.
package rover

// Navigation response codes, reproduced verbatim from the robot's CGI
// firmware for wire compatibility. A closed enumeration.
const (
	RespSuccess = iota
	RespFailure
	RespRobotBusy
	RespFeatureNotImplemented
	RespUnknownCGIAction
	RespNoNSSignal
	RespNoEmptyPathAvailable
	RespFailedToReadPath
	RespPathBaseAddressNotInitialized
	RespPathNotFound
	RespPathNameNotSpecified
	RespNotRecordingPath
	RespFlashNotInitialized
	RespFailedToDeletePath
	RespFailedToReadFromFlash
	RespFailedToWriteToFlash
	RespFlashNotReady
	RespNoMemoryAvailable
	RespNoMCUPortAvailable
	RespNoNSPortAvailable
	RespNSPacketChecksumError
	RespNSUARTReadError
	RespParameterOutOfRange
	RespNoParameter
)

var responseNames = map[int]string{
	RespFailure:                       "FAILURE",
	RespRobotBusy:                     "ROBOT_BUSY",
	RespFeatureNotImplemented:         "FEATURE_NOT_IMPLEMENTED",
	RespUnknownCGIAction:              "UNKNOWN_CGI_ACTION",
	RespNoNSSignal:                    "NO_NS_SIGNAL",
	RespNoEmptyPathAvailable:          "NO_EMPTY_PATH_AVAILABLE",
	RespFailedToReadPath:              "FAILED_TO_READ_PATH",
	RespPathBaseAddressNotInitialized: "PATH_BASEADDRESS_NOT_INITIALIZED",
	RespPathNotFound:                  "PATH_NOT_FOUND",
	RespPathNameNotSpecified:          "PATH_NAME_NOT_SPECIFIED",
	RespNotRecordingPath:              "NOT_RECORDING_PATH",
	RespFlashNotInitialized:           "FLASH_NOT_INITIALIZED",
	RespFailedToDeletePath:            "FAILED_TO_DELETE_PATH",
	RespFailedToReadFromFlash:         "FAILED_TO_READ_FROM_FLASH",
	RespFailedToWriteToFlash:          "FAILED_TO_WRITE_TO_FLASH",
	RespFlashNotReady:                 "FLASH_NOT_READY",
	RespNoMemoryAvailable:             "NO_MEMORY_AVAILABLE",
	RespNoMCUPortAvailable:            "NO_MCU_PORT_AVAILABLE",
	RespNoNSPortAvailable:             "NO_NS_PORT_AVAILABLE",
	RespNSPacketChecksumError:         "NS_PACKET_CHECKSUM_ERROR",
	RespNSUARTReadError:               "NS_UART_READ_ERROR",
	RespParameterOutOfRange:           "PARAMETER_OUTOFRANGE",
	RespNoParameter:                   "NO_PARAMETER",
}

// ResponseName returns the firmware's name for a navigation response
// code, or empty for codes outside the table.
func ResponseName(code int) string {
	return responseNames[code]
}
