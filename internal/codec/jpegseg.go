package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// JPEG marker bytes (the second byte of the 0xFF-prefixed marker).
const (
	markerSOI  = 0xD8
	markerAPP0 = 0xE0
	markerAPP1 = 0xE1
	markerAPP2 = 0xE2
	markerSOS  = 0xDA
)

var (
	exifHeader = []byte("Exif\x00\x00")
	iccHeader  = []byte("ICC_PROFILE\x00")
)

// iccChunkCapacity is the profile data one APP2 segment can carry: the
// 16-bit segment length covers the length bytes themselves, the
// ICC_PROFILE header and the two sequence bytes.
const iccChunkCapacity = 65535 - 2 - 12 - 2

// maxExifPayload is the Exif data one APP1 segment can carry.
const maxExifPayload = 65535 - 2 - 6

// scanSegments walks the marker segments of a JPEG file from SOI up to
// SOS, calling fn with each marker and its payload (without the length
// bytes). fn returning false stops the walk early.
func scanSegments(data []byte, fn func(marker byte, payload []byte) bool) error {
	if len(data) < 2 || data[0] != 0xFF || data[1] != markerSOI {
		return errors.New("not a JPEG file")
	}
	i := 2
	for i+4 <= len(data) {
		if data[i] != 0xFF {
			return errors.New("corrupt JPEG segment marker")
		}
		marker := data[i+1]
		if marker == markerSOS {
			return nil
		}
		length := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		if length < 2 || i+2+length > len(data) {
			return errors.New("truncated JPEG segment")
		}
		if !fn(marker, data[i+4:i+2+length]) {
			return nil
		}
		i += 2 + length
	}
	return nil
}

// extractICCProfile reassembles the ICC profile from a JPEG file's APP2
// ICC_PROFILE segments, honouring the seq/count chunk headers. Returns
// nil when the file carries no profile or the chunk chain is broken.
func extractICCProfile(data []byte) []byte {
	var chunks [][]byte
	_ = scanSegments(data, func(marker byte, payload []byte) bool {
		if marker != markerAPP2 || !bytes.HasPrefix(payload, iccHeader) {
			return true
		}
		rest := payload[len(iccHeader):]
		if len(rest) < 2 {
			return true
		}
		seq, count := int(rest[0]), int(rest[1])
		if count == 0 || seq == 0 || seq > count {
			return true
		}
		if chunks == nil {
			chunks = make([][]byte, count)
		}
		if seq <= len(chunks) && chunks[seq-1] == nil {
			chunks[seq-1] = rest[2:]
		}
		return true
	})
	if chunks == nil {
		return nil
	}
	var profile []byte
	for _, chunk := range chunks {
		if chunk == nil {
			return nil
		}
		profile = append(profile, chunk...)
	}
	return profile
}

// spliceJPEGMetadata inserts an Exif APP1 segment and a chain of
// ICC_PROFILE APP2 segments into an encoded JPEG, after the JFIF APP0
// header when one is present. exifRaw is the raw TIFF payload (without
// the "Exif\x00\x00" prefix); icc is the concatenated profile.
func spliceJPEGMetadata(encoded, exifRaw, icc []byte) ([]byte, error) {
	if len(encoded) < 2 || encoded[0] != 0xFF || encoded[1] != markerSOI {
		return nil, errors.New("not a JPEG file")
	}
	if len(exifRaw) > maxExifPayload {
		return nil, fmt.Errorf("Exif block of %d bytes exceeds segment capacity", len(exifRaw))
	}

	insertAt := 2
	if len(encoded) >= 6 && encoded[2] == 0xFF && encoded[3] == markerAPP0 {
		insertAt = 4 + int(binary.BigEndian.Uint16(encoded[4:6]))
		if insertAt > len(encoded) {
			return nil, errors.New("truncated JPEG segment")
		}
	}

	var meta bytes.Buffer
	if len(exifRaw) > 0 {
		writeSegment(&meta, markerAPP1, exifHeader, exifRaw)
	}
	if len(icc) > 0 {
		count := (len(icc) + iccChunkCapacity - 1) / iccChunkCapacity
		if count > 255 {
			return nil, fmt.Errorf("ICC profile of %d bytes exceeds segment chain capacity", len(icc))
		}
		for i := 0; i < count; i++ {
			start := i * iccChunkCapacity
			end := start + iccChunkCapacity
			if end > len(icc) {
				end = len(icc)
			}
			writeSegment(&meta, markerAPP2, iccHeader, []byte{byte(i + 1), byte(count)}, icc[start:end])
		}
	}

	out := make([]byte, 0, len(encoded)+meta.Len())
	out = append(out, encoded[:insertAt]...)
	out = append(out, meta.Bytes()...)
	out = append(out, encoded[insertAt:]...)
	return out, nil
}

// writeSegment emits one marker segment; the length field covers itself
// plus all payload parts.
func writeSegment(w *bytes.Buffer, marker byte, parts ...[]byte) {
	size := 2
	for _, part := range parts {
		size += len(part)
	}
	w.WriteByte(0xFF)
	w.WriteByte(marker)
	var length [2]byte
	binary.BigEndian.PutUint16(length[:], uint16(size))
	w.Write(length[:])
	for _, part := range parts {
		w.Write(part)
	}
}
