package exif

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tiffBuilder assembles a synthetic TIFF body in either byte order.
type tiffBuilder struct {
	buf    []byte
	little bool
}

func (b *tiffBuilder) put16(v uint16) {
	if b.little {
		b.buf = append(b.buf, byte(v), byte(v>>8))
	} else {
		b.buf = append(b.buf, byte(v>>8), byte(v))
	}
}

func (b *tiffBuilder) put32(v uint32) {
	if b.little {
		b.buf = append(b.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	} else {
		b.buf = append(b.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
}

func (b *tiffBuilder) entry(tag, typ uint16, count, value uint32) {
	b.put16(tag)
	b.put16(typ)
	b.put32(count)
	b.put32(value)
}

// buildTIFF lays out IFD0 with Make (indirect ASCII), ISO (inline short),
// ExposureTime (indirect rational) and an ExifIFD pointer to a sub-IFD
// carrying FNumber.
func buildTIFF(little bool) []byte {
	b := &tiffBuilder{little: little}

	if little {
		b.buf = append(b.buf, 'I', 'I')
	} else {
		b.buf = append(b.buf, 'M', 'M')
	}
	b.put16(0x002A)
	b.put32(8) // first IFD

	// IFD0 at 8: header(2) + 4 entries(48) + next(4) ends at 62
	const (
		makeOff  = 62 // "Acme\0"
		expOff   = 68 // rational 1/250
		subIFD   = 76
		fnumOff  = 94 // rational 28/10
		exposure = 0x829A
		fnumber  = 0x829D
		iso      = 0x8827
		makeTag  = 0x010F
	)
	b.put16(4)
	b.entry(makeTag, typeASCII, 5, makeOff)
	b.entry(iso, typeShort, 1, 0) // inline, patched below
	b.entry(exposure, typeRational, 1, expOff)
	b.entry(tagExifIFDPointer, typeLong, 1, subIFD)
	b.put32(0) // no next IFD

	// ISO inline value sits in the entry's value slot (offset 10+12+8)
	isoSlot := 10 + 12 + 8
	if little {
		b.buf[isoSlot] = 200
	} else {
		b.buf[isoSlot+1] = 200
	}

	b.buf = append(b.buf, 'A', 'c', 'm', 'e', 0, 0) // makeOff, padded to 68
	b.put32(1)
	b.put32(250) // expOff

	// sub-IFD: 1 entry + next pointer, ends at 94
	b.put16(1)
	b.entry(fnumber, typeRational, 1, fnumOff)
	b.put32(0)
	b.put32(28)
	b.put32(10)

	return b.buf
}

func wrapJPEG(tiff []byte, leadingSegments ...[]byte) []byte {
	out := []byte{0xFF, 0xD8}
	for _, seg := range leadingSegments {
		out = append(out, seg...)
	}
	payload := append([]byte("Exif\x00\x00"), tiff...)
	length := len(payload) + 2
	out = append(out, 0xFF, 0xE1, byte(length>>8), byte(length))
	return append(out, payload...)
}

func TestDecode_LittleEndian(t *testing.T) {
	tags, ok := Decode(wrapJPEG(buildTIFF(true)))

	require.True(t, ok)
	assert.Equal(t, "Acme", tags["Make"])
	assert.Equal(t, float64(200), tags["ISO"])
	assert.InDelta(t, 1.0/250, tags["ExposureTime"].(float64), 1e-9)
	assert.InDelta(t, 2.8, tags["FNumber"].(float64), 1e-9)
}

func TestDecode_BigEndian(t *testing.T) {
	tags, ok := Decode(wrapJPEG(buildTIFF(false)))

	require.True(t, ok)
	assert.Equal(t, "Acme", tags["Make"])
	assert.Equal(t, float64(200), tags["ISO"])
}

func TestDecode_SkipsLeadingSegments(t *testing.T) {
	app0 := append([]byte{0xFF, 0xE0, 0x00, 0x10}, make([]byte, 14)...)
	tags, ok := Decode(wrapJPEG(buildTIFF(true), app0))

	require.True(t, ok)
	assert.Equal(t, "Acme", tags["Make"])
}

func TestDecode_NotAJPEG(t *testing.T) {
	_, ok := Decode([]byte("\x89PNG\r\n\x1a\n"))
	assert.False(t, ok)
}

func TestDecode_NoAPP1(t *testing.T) {
	// SOI then a single non-APP1 segment, then nothing
	data := []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x00, 0x04, 0x00, 0x00}
	_, ok := Decode(data)
	assert.False(t, ok)
}

func TestDecode_APP1WithoutExifPreamble(t *testing.T) {
	payload := []byte("http://ns.adobe.com/xap/1.0/")
	length := len(payload) + 2
	data := append([]byte{0xFF, 0xD8, 0xFF, 0xE1, byte(length >> 8), byte(length)}, payload...)
	_, ok := Decode(data)
	assert.False(t, ok)
}

func TestDecode_NoRecognizedTagsYieldsEmptyMap(t *testing.T) {
	// valid TIFF whose single IFD0 entry (Software) is outside the
	// displayed subset
	b := &tiffBuilder{little: true}
	b.buf = append(b.buf, 'I', 'I')
	b.put16(0x002A)
	b.put32(8)
	b.put16(1)
	b.entry(0x0131, typeShort, 1, 0)
	b.put32(0)

	tags, ok := Decode(wrapJPEG(b.buf))
	require.True(t, ok)
	assert.Empty(t, tags)
	assert.NotNil(t, tags)
}

func TestDecode_TruncatedInputsNeverPanic(t *testing.T) {
	full := wrapJPEG(buildTIFF(true))
	for n := 0; n < len(full); n++ {
		assert.NotPanics(t, func() { Decode(full[:n]) }, "truncated at %d", n)
	}
}

func TestDecode_OffsetPointingOutOfBounds(t *testing.T) {
	tiff := buildTIFF(true)
	// redirect the Make string offset far past the end
	b := &tiffBuilder{little: true}
	b.put32(0xFFFF)
	copy(tiff[10+8:], b.buf)

	tags, ok := Decode(wrapJPEG(tiff))
	// other tags still decode; the out-of-bounds one is dropped
	require.True(t, ok)
	_, hasMake := tags["Make"]
	assert.False(t, hasMake)
	assert.Equal(t, float64(200), tags["ISO"])
}

func TestDecode_ZeroDenominatorRationalDropped(t *testing.T) {
	tiff := buildTIFF(true)
	// zero out ExposureTime's denominator
	b := &tiffBuilder{little: true}
	b.put32(0)
	copy(tiff[72:], b.buf)

	tags, ok := Decode(wrapJPEG(tiff))
	require.True(t, ok)
	_, has := tags["ExposureTime"]
	assert.False(t, has)
}

func TestDecodeDataURL(t *testing.T) {
	raw := wrapJPEG(buildTIFF(true))
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)

	tags, ok := DecodeDataURL(dataURL)
	require.True(t, ok)
	assert.Equal(t, "Acme", tags["Make"])
}

func TestDecodeDataURL_BarePayload(t *testing.T) {
	raw := wrapJPEG(buildTIFF(true))
	_, ok := DecodeDataURL(base64.StdEncoding.EncodeToString(raw))
	assert.True(t, ok)
}

func TestDecodeDataURL_InvalidBase64(t *testing.T) {
	_, ok := DecodeDataURL("data:image/jpeg;base64,!!!not-base64!!!")
	assert.False(t, ok)
}
