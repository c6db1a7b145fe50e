package diag

import (
	"github.com/autonomous-bits/diagsub/diagio"
	"github.com/autonomous-bits/diagsub/ioread"
)

// IoDetail adapts an I/O-layer failure (either a decode error from a
// reader or a filesystem error from diagio) into a Detail, so it can be
// wrapped unchanged into a ParseErrorDetail's Io variant.
type IoDetail struct {
	decode *ioread.IoErrorDetail
	file   *diagio.FileErrorDetail
}

// NewIoDetailFromDecode wraps a reader's UTF-8 decoding failure.
func NewIoDetailFromDecode(err *ioread.IoErrorDetail) IoDetail {
	return IoDetail{decode: err}
}

// NewIoDetailFromFile wraps a filesystem operation failure.
func NewIoDetailFromFile(err *diagio.FileErrorDetail) IoDetail {
	return IoDetail{file: err}
}

func (d IoDetail) String() string {
	if d.decode != nil {
		return d.decode.Error()
	}
	if d.file != nil {
		return d.file.Error()
	}
	return "io error"
}

// Severity is always Error for I/O failures, whatever the wrapped failure:
// recovery is caller-local, and the severity is never escalated to
// Failure/Critical.
func (d IoDetail) Severity() Severity { return Error }

// Code mirrors the wrapped failure's shape: decode failures split on their
// kind (Utf8InvalidEncoding=21, Utf8UnexpectedEof=22); filesystem failures
// split on their operation (1+OpKind), matching kg-diag's IoErrorDetail
// code table in spirit.
func (d IoDetail) Code() uint32 {
	switch {
	case d.decode != nil:
		if d.decode.Kind == ioread.KindUtf8InvalidEncoding {
			return 21
		}
		return 22
	case d.file != nil:
		return 1 + uint32(d.file.Op)
	default:
		return 0
	}
}

var _ Detail = IoDetail{}
