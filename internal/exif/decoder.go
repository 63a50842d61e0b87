// Package exif decodes the narrow tag subset the dashboard displays from a
// JPEG's APP1/Exif segment. Any malformed, truncated or crafted input yields
// "no data", never a panic or an out-of-bounds read.
package exif

import (
	"encoding/base64"
	"strings"
)

// TagMap holds decoded tags keyed by display name. Values are string for
// ASCII tags and float64 for numeric ones; absent tags have no key.
type TagMap map[string]any

const (
	markerSOI  = 0xFFD8
	markerAPP1 = 0xFFE1

	typeASCII    = 2
	typeShort    = 3
	typeLong     = 4
	typeRational = 5

	tagExifIFDPointer = 0x8769

	maxIFDDepth = 2
)

var tagNames = map[uint16]string{
	0x010F: "Make",
	0x0110: "Model",
	0x0132: "ModifyDate",
	0x829A: "ExposureTime",
	0x829D: "FNumber",
	0x8827: "ISO",
	0x920A: "FocalLength",
	0x9003: "DateTimeOriginal",
}

// DecodeDataURL strips a data-URL prefix, base64-decodes and parses.
func DecodeDataURL(dataURL string) (TagMap, bool) {
	_, b64, found := strings.Cut(dataURL, ",")
	if !found {
		b64 = dataURL
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, false
	}
	return Decode(raw)
}

// Decode parses a raw JPEG buffer, scanning marker segments for the first
// APP1/Exif segment and reading IFD0 plus the ExifIFD it points at.
func Decode(data []byte) (TagMap, bool) {
	r := reader{data: data}

	if v, ok := r.uint16BE(0); !ok || v != markerSOI {
		return nil, false
	}

	offset := 2
	for {
		marker, ok := r.uint16BE(offset)
		if !ok {
			return nil, false
		}
		length, ok := r.uint16BE(offset + 2)
		if !ok {
			return nil, false
		}
		if marker == markerAPP1 {
			return r.decodeAPP1(offset + 4)
		}
		offset += 2 + int(length)
	}
}

// decodeAPP1 expects the "Exif\0\0" preamble, then a TIFF header.
func (r *reader) decodeAPP1(start int) (TagMap, bool) {
	if !r.hasASCII(start, "Exif") {
		return nil, false
	}
	tiff := start + 6

	order, ok := r.uint16BE(tiff)
	if !ok {
		return nil, false
	}
	r.tiff = tiff
	r.little = order == 0x4949

	firstIFD, ok := r.uint32(tiff + 4)
	if !ok {
		return nil, false
	}

	// a parsed segment with no recognized tags is still a find: the map is
	// just empty. Absent is reserved for no Exif data at all.
	out := TagMap{}
	r.readIFD(tiff+int(firstIFD), out, 1)
	return out, true
}

// readIFD walks one directory's 12-byte entries, merging recognized tags
// into out. The only recursion is through the ExifIFD pointer, capped by
// maxIFDDepth.
func (r *reader) readIFD(dir int, out TagMap, depth int) {
	if depth > maxIFDDepth {
		return
	}
	entries, ok := r.uint16(dir)
	if !ok {
		return
	}
	for i := 0; i < int(entries); i++ {
		o := dir + 2 + i*12
		tag, ok := r.uint16(o)
		if !ok {
			return
		}
		typ, ok := r.uint16(o + 2)
		if !ok {
			return
		}
		count, ok := r.uint32(o + 4)
		if !ok {
			return
		}

		// values wider than the 4 inline bytes live at an offset
		// relative to the TIFF header
		valOffset := o + 8
		if typeSize(typ)*int(count) > 4 {
			rel, ok := r.uint32(valOffset)
			if !ok {
				continue
			}
			valOffset = r.tiff + int(rel)
		}

		if tag == tagExifIFDPointer {
			if rel, ok := r.uint32(valOffset); ok {
				r.readIFD(r.tiff+int(rel), out, depth+1)
			}
			continue
		}

		name, known := tagNames[tag]
		if !known {
			continue
		}
		if v, ok := r.value(typ, int(count), valOffset); ok {
			out[name] = v
		}
	}
}

func (r *reader) value(typ uint16, count, offset int) (any, bool) {
	switch typ {
	case typeShort:
		v, ok := r.uint16(offset)
		return float64(v), ok
	case typeLong:
		v, ok := r.uint32(offset)
		return float64(v), ok
	case typeRational:
		num, ok := r.uint32(offset)
		if !ok {
			return nil, false
		}
		den, ok := r.uint32(offset + 4)
		if !ok || den == 0 {
			return nil, false
		}
		return float64(num) / float64(den), true
	case typeASCII:
		// null terminator excluded
		if count < 1 {
			return nil, false
		}
		s, ok := r.ascii(offset, count-1)
		return s, ok
	default:
		return nil, false
	}
}

func typeSize(typ uint16) int {
	switch typ {
	case typeASCII:
		return 1
	case typeShort:
		return 2
	case typeLong:
		return 4
	case typeRational:
		return 8
	default:
		return 1
	}
}

// reader wraps the byte buffer with bounds-checked multi-byte reads. Reads
// before the TIFF header is located are big-endian; after, the header's
// byte-order marker decides.
type reader struct {
	data   []byte
	tiff   int
	little bool
}

func (r *reader) uint16BE(o int) (uint16, bool) {
	if o < 0 || o+2 > len(r.data) {
		return 0, false
	}
	return uint16(r.data[o])<<8 | uint16(r.data[o+1]), true
}

func (r *reader) uint16(o int) (uint16, bool) {
	if o < 0 || o+2 > len(r.data) {
		return 0, false
	}
	if r.little {
		return uint16(r.data[o+1])<<8 | uint16(r.data[o]), true
	}
	return uint16(r.data[o])<<8 | uint16(r.data[o+1]), true
}

func (r *reader) uint32(o int) (uint32, bool) {
	if o < 0 || o+4 > len(r.data) {
		return 0, false
	}
	b := r.data[o : o+4]
	if r.little {
		return uint32(b[3])<<24 | uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0]), true
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), true
}

func (r *reader) ascii(o, n int) (string, bool) {
	if o < 0 || n < 0 || o+n > len(r.data) {
		return "", false
	}
	return string(r.data[o : o+n]), true
}

func (r *reader) hasASCII(o int, s string) bool {
	got, ok := r.ascii(o, len(s))
	return ok && got == s
}
