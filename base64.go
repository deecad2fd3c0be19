package dong

import "encoding/base64"

// BytesToBase64 returns the standard, padded base64 encoding of b.
func BytesToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// EncodedMedia is Media with its payload as base64 text.
type EncodedMedia struct {
	MIMEType string `json:"mime"`
	Data     string `json:"data"`
}

// EncodedContainer is the base64 output form of a Container.
type EncodedContainer struct {
	Image EncodedMedia `json:"image"`
	Audio EncodedMedia `json:"audio"`
}

func (m Media) Base64() string {
	return BytesToBase64(m.Data)
}

// Base64 re-encodes both payloads as base64 text.
func (c *Container) Base64() EncodedContainer {
	return EncodedContainer{
		Image: EncodedMedia{MIMEType: c.Image.MIMEType, Data: c.Image.Base64()},
		Audio: EncodedMedia{MIMEType: c.Audio.MIMEType, Data: c.Audio.Base64()},
	}
}
