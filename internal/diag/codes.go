package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Record-level scan codes.
	ScanBadFieldCount Code = 1001
	ScanBadLength     Code = 1002
	ScanBadMapping    Code = 1003
	ScanZeroKmers     Code = 1004
	ScanBadColumn     Code = 1005
	ScanBadScore      Code = 1006

	// Stream-level scan codes.
	ScanTruncatedFile Code = 1100
)

func (c Code) String() string {
	switch c {
	case ScanBadFieldCount:
		return "bad-field-count"
	case ScanBadLength:
		return "bad-length"
	case ScanBadMapping:
		return "bad-mapping"
	case ScanZeroKmers:
		return "zero-kmers"
	case ScanBadColumn:
		return "bad-column"
	case ScanBadScore:
		return "bad-score"
	case ScanTruncatedFile:
		return "truncated-file"
	}
	return fmt.Sprintf("code-%d", uint16(c))
}
