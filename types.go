package dong

// VersionV2 is the only format revision this package reads and writes.
const VersionV2 byte = 0x02

// Magic is the 2-byte signature and version prefix of every container.
var Magic = [2]byte{0xD0, VersionV2}

const (
	mimeFieldSize = 256
	sizeFieldSize = 4

	// MaxMediaTypeLen is the longest media type that fits a mime field while
	// leaving at least one byte of zero padding.
	MaxMediaTypeLen = mimeFieldSize - 1

	// HeaderSize is the size of the fixed header preceding the payloads.
	HeaderSize = len(Magic) + 2*(mimeFieldSize+sizeFieldSize)
)

// Field offsets within the fixed header.
const (
	offImageMIME = 2
	offImageSize = offImageMIME + mimeFieldSize
	offAudioMIME = offImageSize + sizeFieldSize
	offAudioSize = offAudioMIME + mimeFieldSize
)

// Slot identifies one of the two asset positions in a container.
type Slot uint8

const (
	SlotImage Slot = 1
	SlotAudio Slot = 2
)

func (s Slot) String() string {
	switch s {
	case SlotImage:
		return "image"
	case SlotAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// category is the top-level media type prefix required for the slot.
func (s Slot) category() string {
	return s.String() + "/"
}

// Asset is an input to Encode: a declared media type and length plus the
// source the payload bytes are read from.
type Asset struct {
	MediaType string
	Size      int64
	Source    ByteSource
}

// NewAsset returns an Asset whose declared Size is the source length.
func NewAsset(mediaType string, src ByteSource) Asset {
	return Asset{MediaType: mediaType, Size: src.Len(), Source: src}
}

// BytesAsset returns an Asset backed by data.
func BytesAsset(mediaType string, data []byte) Asset {
	return NewAsset(mediaType, Bytes(data))
}

// Media is one decoded asset.
type Media struct {
	MIMEType string `json:"mime"`
	Data     []byte `json:"data"`
}

// Container is the logical content of a decoded file.
//
// Truncated is set when the declared payload sizes run past the end of the
// input and the payloads hold only the bytes that were available.
type Container struct {
	Image     Media `json:"image"`
	Audio     Media `json:"audio"`
	Truncated bool  `json:"truncated,omitempty"`
}

// Size returns the number of bytes the container occupies when encoded.
func (c *Container) Size() int64 {
	return int64(HeaderSize) + int64(len(c.Image.Data)) + int64(len(c.Audio.Data))
}
