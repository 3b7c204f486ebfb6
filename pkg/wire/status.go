package wire

// Status is the status byte a reader returns in every response.
type Status uint8

const (
	// StatusSuccess indicates the command completed.
	StatusSuccess Status = 0x00

	// StatusInventoryEarly indicates the inventory returned before all tags
	// were read. Inventories with no tag in the field also report it.
	StatusInventoryEarly Status = 0x01

	// StatusScanTimeOverflow indicates the inventory hit its scan time limit.
	StatusScanTimeOverflow Status = 0x02

	// StatusMoreData indicates further frames follow.
	StatusMoreData Status = 0x03

	// StatusBufferFull indicates the reader memory buffer is full.
	StatusBufferFull Status = 0x04

	// StatusAntennaError indicates the antenna check failed.
	StatusAntennaError Status = 0xF8

	// StatusExecuteError indicates the command failed on the reader.
	StatusExecuteError Status = 0xF9

	// StatusPoorCommunication indicates a tag was seen but could not be read.
	StatusPoorCommunication Status = 0xFA

	// StatusNoTag indicates no tag was operable.
	StatusNoTag Status = 0xFB

	// StatusTagError indicates the tag returned an error code.
	StatusTagError Status = 0xFC

	// StatusLengthError indicates the command length was wrong.
	StatusLengthError Status = 0xFD

	// StatusIllegalCommand indicates an unknown command or bad checksum.
	StatusIllegalCommand Status = 0xFE

	// StatusParameterError indicates a parameter was out of range.
	StatusParameterError Status = 0xFF
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusInventoryEarly:
		return "INVENTORY_EARLY"
	case StatusScanTimeOverflow:
		return "SCAN_TIME_OVERFLOW"
	case StatusMoreData:
		return "MORE_DATA"
	case StatusBufferFull:
		return "BUFFER_FULL"
	case StatusAntennaError:
		return "ANTENNA_ERROR"
	case StatusExecuteError:
		return "EXECUTE_ERROR"
	case StatusPoorCommunication:
		return "POOR_COMMUNICATION"
	case StatusNoTag:
		return "NO_TAG"
	case StatusTagError:
		return "TAG_ERROR"
	case StatusLengthError:
		return "LENGTH_ERROR"
	case StatusIllegalCommand:
		return "ILLEGAL_COMMAND"
	case StatusParameterError:
		return "PARAMETER_ERROR"
	default:
		return "UNKNOWN"
	}
}

// IsSuccess returns true for statuses that carry a usable result.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess || s == StatusInventoryEarly ||
		s == StatusScanTimeOverflow || s == StatusMoreData
}
