package dong

// Limits bounds the payload sizes accepted by Encode and Decode.
// A zero field takes its default.
type Limits struct {
	MaxImageSize uint32
	MaxAudioSize uint32
}

func defaultLimits() Limits {
	return Limits{
		MaxImageSize: 512 << 20, // 512 MiB
		MaxAudioSize: 512 << 20,
	}
}

// WithDefaults returns l with zero fields replaced by the defaults.
func (l Limits) WithDefaults() Limits {
	d := defaultLimits()
	if l.MaxImageSize == 0 {
		l.MaxImageSize = d.MaxImageSize
	}
	if l.MaxAudioSize == 0 {
		l.MaxAudioSize = d.MaxAudioSize
	}
	return l
}

func (l Limits) maxSize(s Slot) uint32 {
	if s == SlotAudio {
		return l.MaxAudioSize
	}
	return l.MaxImageSize
}

// maxContainerSize is the largest container l admits.
func (l Limits) maxContainerSize() int64 {
	return int64(HeaderSize) + int64(l.MaxImageSize) + int64(l.MaxAudioSize)
}
