// Package main provides C-compatible exports for the dong library.
// Build with: go build -buildmode=c-shared -o dong.dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return data
typedef struct {
    char* data;
    int   data_len;
    char* error;
} DongResult;
*/
import "C"

import (
	"encoding/json"
	"unsafe"

	"github.com/logicossoftware/go-dong"
)

func main() {}

// DongVersion returns the container format version supported by this library.
//
//export DongVersion
func DongVersion() C.uint8_t {
	return C.uint8_t(dong.VersionV2)
}

// DongFreeResult frees memory allocated by other Dong functions.
// Must be called to avoid memory leaks.
//
//export DongFreeResult
func DongFreeResult(result C.DongResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// DongFreeString frees a C string allocated by Go.
//
//export DongFreeString
func DongFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

func makeResult(data []byte) C.DongResult {
	var result C.DongResult
	if len(data) > 0 {
		result.data = (*C.char)(C.CBytes(data))
		result.data_len = C.int(len(data))
	}
	return result
}

func makeError(err error) C.DongResult {
	var result C.DongResult
	result.error = C.CString(err.Error())
	return result
}

func goBytes(data *C.char, n C.int) []byte {
	if data == nil || n <= 0 {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(data), n)
}

// DongEncode builds a container from one image and one audio payload.
// Parameters:
//   - imageMime, audioMime: media types, e.g. "image/png" and "audio/mpeg"
//   - imageData, imageLen: image payload bytes
//   - audioData, audioLen: audio payload bytes
//
// Returns DongResult with the container bytes or error. Call DongFreeResult when done.
//
//export DongEncode
func DongEncode(
	imageMime *C.char,
	imageData *C.char,
	imageLen C.int,
	audioMime *C.char,
	audioData *C.char,
	audioLen C.int,
) C.DongResult {
	image := dong.BytesAsset(C.GoString(imageMime), goBytes(imageData, imageLen))
	audio := dong.BytesAsset(C.GoString(audioMime), goBytes(audioData, audioLen))
	out, err := dong.Marshal(image, audio)
	if err != nil {
		return makeError(err)
	}
	return makeResult(out)
}

// DongDecode decodes a container and returns a JSON description of it.
// With b64 == 0 the payloads are described by length only; use
// DongDecodeGetPayload for the raw bytes. With b64 != 0 the JSON is
// {"image":{"mime":..,"data":"<base64>"},"audio":{..}}.
//
//export DongDecode
func DongDecode(data *C.char, dataLen C.int, b64 C.int) C.DongResult {
	c, err := dong.Unmarshal(goBytes(data, dataLen))
	if err != nil {
		return makeError(err)
	}
	var v any
	if b64 != 0 {
		v = c.Base64()
	} else {
		v = map[string]any{
			"image":     map[string]any{"mime": c.Image.MIMEType, "dataLen": len(c.Image.Data)},
			"audio":     map[string]any{"mime": c.Audio.MIMEType, "dataLen": len(c.Audio.Data)},
			"truncated": c.Truncated,
		}
	}
	out, err := json.Marshal(v)
	if err != nil {
		return makeError(err)
	}
	return makeResult(out)
}

// DongDecodeGetPayload returns the raw payload of one slot: 1 for the
// image, 2 for the audio.
//
//export DongDecodeGetPayload
func DongDecodeGetPayload(data *C.char, dataLen C.int, slot C.int) C.DongResult {
	s, err := slotFor(int(slot))
	if err != nil {
		return makeError(err)
	}
	c, err := dong.Unmarshal(goBytes(data, dataLen))
	if err != nil {
		return makeError(err)
	}
	if s == dong.SlotAudio {
		return makeResult(c.Audio.Data)
	}
	return makeResult(c.Image.Data)
}

// DongValidate checks that a container decodes completely.
// Returns NULL on success, or an error message string on failure.
// Call DongFreeString on the result if non-NULL.
//
//export DongValidate
func DongValidate(data *C.char, dataLen C.int) *C.char {
	if _, err := dong.Unmarshal(goBytes(data, dataLen), dong.WithStrictBounds(true)); err != nil {
		return C.CString(err.Error())
	}
	return nil
}
