// Package dong implements the DONG container format.
//
// A DONG file bundles exactly one image and one audio asset into a single
// file, for example a cover picture with its soundtrack. It is a whole-file
// format: written in one pass and read with random access.
//
// # File Format Overview
//
// All integers are little-endian.
//
//	offset        size       field
//	0             2          magic and version, D0 02
//	2             256        image media type, zero padded
//	258           4          image payload size (uint32)
//	262           256        audio media type, zero padded
//	518           4          audio payload size (uint32)
//	522           imageSize  image payload
//	522+imageSize audioSize  audio payload
//
// There is no compression, checksum or chunk structure. A future layout
// change bumps the version byte.
//
// # Basic Usage
//
// To create a DONG file:
//
//	img, _ := os.ReadFile("cover.png")
//	snd, _ := os.ReadFile("theme.mp3")
//	f, _ := os.Create("out.dong")
//	defer f.Close()
//	err := dong.Encode(f,
//		dong.BytesAsset("image/png", img),
//		dong.BytesAsset("audio/mpeg", snd))
//
// To read one:
//
//	f, _ := os.Open("out.dong")
//	defer f.Close()
//	c, err := dong.Decode(f)
//
// For large files, wrap an *os.File with [NewReaderAtSource] and use
// [NewAsset] or [DecodeSource] to read only the ranges needed.
//
// # Media Types
//
// The decoder takes the first token of the form type/subtype made of ASCII
// letters, digits and dots from each mime field. Parameters, "+" suffixes
// and hyphenated subtypes do not survive that, so the default
// [PolicyCategory] rejects them at encode time.
package dong
