package speechrate

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const riffHeaderSize = 12

// WAVHeaderSource reads the duration of a RIFF/WAVE recording from its header:
// data chunk size divided by the byte rate of the fmt chunk. Samples are never decoded.
type WAVHeaderSource struct{}

// Resolve parses in.Audio. Missing or malformed audio is reported as ErrUnavailable.
func (WAVHeaderSource) Resolve(in Input) (Measurement, error) {
	if len(in.Audio) == 0 {
		return Measurement{}, ErrUnavailable
	}
	seconds, err := WAVDuration(in.Audio)
	if err != nil {
		return Measurement{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if !validSeconds(seconds) {
		return Measurement{}, fmt.Errorf("%w: empty recording", ErrUnavailable)
	}
	return Measurement{Seconds: seconds, Source: SourceWAVHeader}, nil
}

// WAVDuration returns the playback length in seconds of a WAVE file.
// A data chunk that claims more bytes than are present is measured by what is present.
func WAVDuration(data []byte) (float64, error) {
	if len(data) < riffHeaderSize || !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		return 0, &HeaderError{Message: "not a RIFF/WAVE file"}
	}

	var byteRate uint32
	offset := riffHeaderSize
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := int64(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + 8

		switch id {
		case "fmt ":
			if size < 16 || body+16 > len(data) {
				return 0, &HeaderError{Message: "fmt chunk too short"}
			}
			byteRate = binary.LittleEndian.Uint32(data[body+8 : body+12])
		case "data":
			if byteRate == 0 {
				return 0, &HeaderError{Message: "data chunk before fmt chunk or zero byte rate"}
			}
			available := int64(len(data) - body)
			if size > available {
				size = available
			}
			return float64(size) / float64(byteRate), nil
		}

		// chunks are word aligned
		next := int64(body) + size + size%2
		if next > int64(len(data)) {
			break
		}
		offset = int(next)
	}
	return 0, &HeaderError{Message: "no data chunk"}
}

// HeaderError reports a malformed WAVE header
type HeaderError struct {
	Message string
	Cause   error
}

func (e *HeaderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("wav header error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("wav header error: %s", e.Message)
}

func (e *HeaderError) Unwrap() error {
	return e.Cause
}
