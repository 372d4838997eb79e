package speechrate

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wavFile builds a PCM WAVE file with an optional extra chunk before the data chunk.
func wavFile(byteRate uint32, declared uint32, payload int, extra []byte) []byte {
	le := binary.LittleEndian
	buf := []byte("RIFF\x00\x00\x00\x00WAVE")

	fmtChunk := make([]byte, 24)
	copy(fmtChunk, "fmt ")
	le.PutUint32(fmtChunk[4:], 16)
	le.PutUint16(fmtChunk[8:], 1)  // PCM
	le.PutUint16(fmtChunk[10:], 1) // mono
	le.PutUint32(fmtChunk[12:], byteRate/2)
	le.PutUint32(fmtChunk[16:], byteRate)
	le.PutUint16(fmtChunk[20:], 2)
	le.PutUint16(fmtChunk[22:], 16)
	buf = append(buf, fmtChunk...)

	if extra != nil {
		head := make([]byte, 8)
		copy(head, "LIST")
		le.PutUint32(head[4:], uint32(len(extra)))
		buf = append(buf, head...)
		buf = append(buf, extra...)
		if len(extra)%2 == 1 {
			buf = append(buf, 0)
		}
	}

	head := make([]byte, 8)
	copy(head, "data")
	le.PutUint32(head[4:], declared)
	buf = append(buf, head...)
	buf = append(buf, make([]byte, payload)...)
	le.PutUint32(buf[4:], uint32(len(buf)-8))
	return buf
}

func TestWAVDuration(t *testing.T) {
	seconds, err := WAVDuration(wavFile(32000, 64000, 64000, nil))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, seconds, 1e-9)
}

func TestWAVDuration_SkipsOddSizedChunks(t *testing.T) {
	seconds, err := WAVDuration(wavFile(16000, 8000, 8000, []byte("abc")))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, seconds, 1e-9)
}

func TestWAVDuration_TruncatedData(t *testing.T) {
	seconds, err := WAVDuration(wavFile(1000, 1_000_000, 3000, nil))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, seconds, 1e-9)
}

func TestWAVDuration_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too short", []byte("RIFF")},
		{"not wave", []byte("RIFF\x00\x00\x00\x00AVI LIST")},
		{"no data chunk", wavFile(32000, 0, 0, nil)[:36]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WAVDuration(tt.data)
			var headerErr *HeaderError
			assert.ErrorAs(t, err, &headerErr)
		})
	}
}

func TestHintSource(t *testing.T) {
	m, err := HintSource{}.Resolve(Input{HintSeconds: 42})
	require.NoError(t, err)
	assert.Equal(t, Measurement{Seconds: 42, Source: SourceHint}, m)

	_, err = HintSource{}.Resolve(Input{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPolicyEstimate(t *testing.T) {
	m, err := PolicyEstimate{}.Resolve(Input{})
	require.NoError(t, err)
	assert.Equal(t, DefaultEstimateSeconds, m.Seconds)
	assert.True(t, m.Estimated)
	assert.Equal(t, SourcePolicy, m.Source)

	m, err = PolicyEstimate{Seconds: 30}.Resolve(Input{})
	require.NoError(t, err)
	assert.Equal(t, 30.0, m.Seconds)
}

func TestDefaultChain(t *testing.T) {
	src := DefaultChain(60)

	t.Run("hint wins", func(t *testing.T) {
		m, err := src.Resolve(Input{HintSeconds: 10, Audio: wavFile(1000, 2000, 2000, nil)})
		require.NoError(t, err)
		assert.Equal(t, SourceHint, m.Source)
		assert.False(t, m.Estimated)
	})

	t.Run("wav header", func(t *testing.T) {
		m, err := src.Resolve(Input{Audio: wavFile(1000, 2000, 2000, nil)})
		require.NoError(t, err)
		assert.Equal(t, SourceWAVHeader, m.Source)
		assert.InDelta(t, 2.0, m.Seconds, 1e-9)
	})

	t.Run("malformed audio falls back", func(t *testing.T) {
		m, err := src.Resolve(Input{Audio: []byte("not audio at all")})
		require.NoError(t, err)
		assert.Equal(t, SourcePolicy, m.Source)
		assert.Equal(t, 60.0, m.Seconds)
		assert.True(t, m.Estimated)
	})

	t.Run("empty recording falls back", func(t *testing.T) {
		m, err := src.Resolve(Input{Audio: wavFile(1000, 0, 0, nil)})
		require.NoError(t, err)
		assert.Equal(t, SourcePolicy, m.Source)
	})
}

type failingSource struct{ err error }

func (f failingSource) Resolve(Input) (Measurement, error) { return Measurement{}, f.err }

func TestChain(t *testing.T) {
	_, err := Chain().Resolve(Input{})
	assert.ErrorIs(t, err, ErrUnavailable)

	boom := errors.New("boom")
	_, err = Chain(failingSource{boom}, PolicyEstimate{}).Resolve(Input{})
	assert.ErrorIs(t, err, boom)

	m, err := Chain(failingSource{ErrUnavailable}, PolicyEstimate{}).Resolve(Input{})
	require.NoError(t, err)
	assert.Equal(t, SourcePolicy, m.Source)
}
