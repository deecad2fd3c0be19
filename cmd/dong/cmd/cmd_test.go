package cmd

import (
	"bytes"
	"encoding/json"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logicossoftware/go-dong"
	"github.com/logicossoftware/go-dong/internal/filecodec"
)

var (
	pngData = append([]byte("\x89PNG\r\n\x1a\n"), 1, 2, 3, 4)
	mp3Data = append([]byte("ID3"), 9, 9, 9)
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFixtures(t *testing.T) (dir, image, audio string) {
	t.Helper()
	dir = t.TempDir()
	image = filepath.Join(dir, "cover.png")
	audio = filepath.Join(dir, "theme.mp3")
	require.NoError(t, os.WriteFile(image, pngData, 0o644))
	require.NoError(t, os.WriteFile(audio, mp3Data, 0o644))
	return dir, image, audio
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, "dong.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func packFixture(t *testing.T) (dir, container string) {
	t.Helper()
	dir, image, audio := writeFixtures(t)
	container = filepath.Join(dir, "bundle.dong")
	_, err := run(t, "pack", "--image", image, "--audio", audio, "--out", container)
	require.NoError(t, err)
	return dir, container
}

func TestPackCommand(t *testing.T) {
	_, container := packFixture(t)

	raw, err := os.ReadFile(container)
	require.NoError(t, err)
	assert.Len(t, raw, dong.HeaderSize+len(pngData)+len(mp3Data))

	c, err := dong.Unmarshal(raw)
	require.NoError(t, err)
	assert.Equal(t, "image/png", c.Image.MIMEType)
	assert.Equal(t, "audio/mpeg", c.Audio.MIMEType)
	assert.Equal(t, pngData, c.Image.Data)
	assert.Equal(t, mp3Data, c.Audio.Data)
}

func TestPackCommandMediaTypes(t *testing.T) {
	dir, image, audio := writeFixtures(t)
	out := filepath.Join(dir, "x.dong")

	t.Run("override rejected by category policy", func(t *testing.T) {
		_, err := run(t, "pack", "--image", image, "--audio", audio, "--image-type", "image/svg+xml", "--out", out)
		assert.ErrorIs(t, err, dong.ErrInvalidMediaType)
		assert.NoFileExists(t, out)
	})

	t.Run("swapped inputs rejected", func(t *testing.T) {
		_, err := run(t, "pack", "--image", audio, "--audio", image, "--out", out)
		assert.ErrorIs(t, err, dong.ErrInvalidMediaType)
	})

	t.Run("non-empty policy from config", func(t *testing.T) {
		cfg := writeConfig(t, dir, "media_type_policy: non-empty\n")
		_, err := run(t, "--config", cfg, "pack", "--image", audio, "--audio", image, "--out", out)
		require.NoError(t, err)
		assert.FileExists(t, out)
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := run(t, "pack", "--image", filepath.Join(dir, "nope.png"), "--audio", audio, "--out", out)
		assert.Error(t, err)
	})

	t.Run("required flags", func(t *testing.T) {
		_, err := run(t, "pack", "--image", image)
		assert.ErrorContains(t, err, "audio")
	})
}

func TestPackDefaultNameAndCompression(t *testing.T) {
	dir, image, audio := writeFixtures(t)
	outDir := filepath.Join(dir, "out")
	cfg := writeConfig(t, dir, "output:\n  dir: "+outDir+"\n  compression: zstd\n")

	_, err := run(t, "--config", cfg, "pack", "--image", image, "--audio", audio)
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(outDir, "*.dong.zst"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	name := strings.TrimSuffix(filepath.Base(matches[0]), ".dong.zst")
	assert.Len(t, name, 27, "ksuid file name")

	data, err := filecodec.ReadFile(matches[0], 1<<20)
	require.NoError(t, err)
	c, err := dong.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, pngData, c.Image.Data)

	out, err := run(t, "--config", cfg, "inspect", "--in", matches[0])
	require.NoError(t, err)
	assert.Contains(t, out, `"mime": "image/png"`)
}

func TestInspectCommand(t *testing.T) {
	_, container := packFixture(t)

	out, err := run(t, "inspect", "--in", container, "--b64")
	require.NoError(t, err)

	var s summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, container, s.File)
	assert.Equal(t, int64(dong.HeaderSize+len(pngData)+len(mp3Data)), s.Size)
	assert.False(t, s.Truncated)
	assert.Equal(t, mediaSummary{MIMEType: "image/png", Size: len(pngData), Data: dong.BytesToBase64(pngData)}, s.Image)
	assert.Equal(t, dong.BytesToBase64(mp3Data), s.Audio.Data)

	out, err = run(t, "inspect", "--in", container)
	require.NoError(t, err)
	assert.NotContains(t, out, `"data"`)
}

func TestInspectTruncated(t *testing.T) {
	dir, container := packFixture(t)
	raw, err := os.ReadFile(container)
	require.NoError(t, err)
	cut := filepath.Join(dir, "cut.dong")
	require.NoError(t, os.WriteFile(cut, raw[:len(raw)-2], 0o644))

	out, err := run(t, "inspect", "--in", cut)
	require.NoError(t, err)
	var s summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.True(t, s.Truncated)
	assert.Equal(t, len(mp3Data)-2, s.Audio.Size)

	cfg := writeConfig(t, dir, "strict_bounds: true\n")
	_, err = run(t, "--config", cfg, "inspect", "--in", cut)
	assert.ErrorIs(t, err, dong.ErrTruncated)
}

func TestUnpackCommand(t *testing.T) {
	dir, container := packFixture(t)
	outDir := filepath.Join(dir, "unpacked")

	out, err := run(t, "unpack", "--in", container, "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	img, err := os.ReadFile(filepath.Join(outDir, "image.png"))
	require.NoError(t, err)
	assert.Equal(t, pngData, img)

	snd, err := os.ReadFile(filepath.Join(outDir, "audio.mp3"))
	require.NoError(t, err)
	assert.Equal(t, mp3Data, snd)
}

func TestValidateCommand(t *testing.T) {
	dir, container := packFixture(t)

	out, err := run(t, "validate", "--in", container)
	require.NoError(t, err)
	var res ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Valid)
	assert.Equal(t, "image/png", res.ImageMIME)
	assert.Equal(t, len(mp3Data), res.AudioSize)

	raw, err := os.ReadFile(container)
	require.NoError(t, err)
	cut := filepath.Join(dir, "cut.dong")
	require.NoError(t, os.WriteFile(cut, raw[:len(raw)-1], 0o644))

	out, err = run(t, "validate", "--in", cut)
	assert.ErrorIs(t, err, errInvalid)
	res = ValidationResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Valid)
	assert.Contains(t, res.Error, "truncated")

	bad := filepath.Join(dir, "bad.dong")
	require.NoError(t, os.WriteFile(bad, []byte("not a container"), 0o644))
	out, err = run(t, "validate", "--in", bad)
	assert.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, "invalid magic")
}

func TestMissingInFlag(t *testing.T) {
	for _, sub := range []string{"inspect", "unpack", "validate"} {
		_, err := run(t, sub)
		assert.ErrorContains(t, err, "--in is required", sub)
	}
}

func TestBadConfig(t *testing.T) {
	dir, container := packFixture(t)
	cfg := writeConfig(t, dir, "output:\n  compression: gzip\n")
	_, err := run(t, "--config", cfg, "inspect", "--in", container)
	assert.Error(t, err)
}

func TestDetectMediaType(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"a.png", []byte("whatever"), "image/png"},
		{"a.dongtestbin", mp3Data, "audio/mpeg"},
		{"a.dongtestbin", pngData, "image/png"},
		{"a.dongtestbin", []byte("hello"), "text/plain"},
		{"empty.dongtestbin", nil, "text/plain"},
	}
	for _, tc := range cases {
		p := filepath.Join(dir, tc.name)
		require.NoError(t, os.WriteFile(p, tc.data, 0o644))
		f, err := os.Open(p)
		require.NoError(t, err)
		got, err := detectMediaType(p, f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".png", extensionFor("image/png"))
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".mp3", extensionFor("audio/mpeg"))
	assert.Equal(t, ".wav", extensionFor("audio/wave"))
	assert.Equal(t, ".bin", extensionFor("application/x-dong-unknown"))
}

var wavData = []byte("RIFF\x24\x00\x00\x00WAVEfmt \x10\x00\x00\x00")

func TestPackWaveAudio(t *testing.T) {
	dir, image, _ := writeFixtures(t)
	audio := filepath.Join(dir, "theme.wav")
	require.NoError(t, os.WriteFile(audio, wavData, 0o644))
	out := filepath.Join(dir, "wave.dong")

	_, err := run(t, "pack", "--image", image, "--audio", audio, "--out", out)
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	c, err := dong.Unmarshal(raw)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c.Audio.MIMEType, "audio/"), c.Audio.MIMEType)
	assert.True(t, dong.IsPlainMediaType(c.Audio.MIMEType), c.Audio.MIMEType)
	assert.Equal(t, wavData, c.Audio.Data)
}

func TestDetectMediaTypeNonTokenExtension(t *testing.T) {
	require.NoError(t, mime.AddExtensionType(".dongtestwav", "audio/x-dong-wave"))
	dir := t.TempDir()

	p := filepath.Join(dir, "a.dongtestwav")
	require.NoError(t, os.WriteFile(p, wavData, 0o644))
	f, err := os.Open(p)
	require.NoError(t, err)
	defer f.Close()
	got, err := detectMediaType(p, f)
	require.NoError(t, err)
	assert.Equal(t, "audio/wave", got)

	// A sniffed type of another category does not replace the extension.
	q := filepath.Join(dir, "b.dongtestwav")
	require.NoError(t, os.WriteFile(q, pngData, 0o644))
	g, err := os.Open(q)
	require.NoError(t, err)
	defer g.Close()
	got, err = detectMediaType(q, g)
	require.NoError(t, err)
	assert.Equal(t, "audio/x-dong-wave", got)
}
