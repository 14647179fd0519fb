package convert

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"

	"github.com/mauserzjeh/dxt"
	"github.com/pierrec/lz4/v4"

	"gwatchface/internal/utils"
)

// EmblemMagic identifies a .wftx emblem texture.
const EmblemMagic = "WFTX0001"

// Pixel codecs. DXT variants come from external tooling; this package only
// decodes them.
const (
	codecRGBA uint32 = iota
	codecDXT1
	codecDXT5
)

const flagLZ4 uint32 = 1

type emblemHeader struct {
	Codec   uint32
	Flags   uint32
	Width   uint32
	Height  uint32
	RawSize uint32
	Size    uint32
}

// DecodeEmblem reads a .wftx texture into an RGBA image.
func DecodeEmblem(r io.Reader) (image.Image, error) {
	magic := make([]byte, len(EmblemMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, err
	}
	if string(magic) != EmblemMagic {
		return nil, fmt.Errorf("invalid magic %q", magic)
	}

	var h emblemHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if h.Width == 0 || h.Height == 0 {
		return nil, fmt.Errorf("degenerate texture %dx%d", h.Width, h.Height)
	}

	data := make([]byte, h.Size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}

	if h.Flags&flagLZ4 != 0 {
		utils.Debug("Emblem: LZ4 %d -> %d bytes", h.Size, h.RawSize)
		raw := make([]byte, h.RawSize)
		n, err := lz4.UncompressBlock(data, raw)
		if err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		data = raw[:n]
	}

	w, ht := int(h.Width), int(h.Height)
	var pix []byte
	var err error
	switch h.Codec {
	case codecRGBA:
		if len(data) != w*ht*4 {
			return nil, fmt.Errorf("rgba payload is %d bytes, want %d", len(data), w*ht*4)
		}
		pix = data
	case codecDXT1:
		pix, err = dxt.DecodeDXT1(data, uint(w), uint(ht))
		if err != nil {
			return nil, fmt.Errorf("dxt1: %w", err)
		}
	case codecDXT5:
		pix, err = dxt.DecodeDXT5(data, uint(w), uint(ht))
		if err != nil {
			return nil, fmt.Errorf("dxt5: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported codec %d", h.Codec)
	}

	return &image.RGBA{Pix: pix, Stride: w * 4, Rect: image.Rect(0, 0, w, ht)}, nil
}

// LoadEmblem reads a .wftx texture from disk.
func LoadEmblem(path string) (image.Image, error) {
	utils.Debug("Emblem: loading %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeEmblem(f)
}

// EncodeEmblem writes img as a .wftx texture. With compress set, the RGBA
// payload is LZ4-block-compressed; incompressible payloads are stored raw.
func EncodeEmblem(w io.Writer, img image.Image, compress bool) error {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != b.Dx()*4 || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	raw := rgba.Pix

	h := emblemHeader{
		Codec:   codecRGBA,
		Width:   uint32(b.Dx()),
		Height:  uint32(b.Dy()),
		RawSize: uint32(len(raw)),
	}

	payload := raw
	if compress {
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, buf, nil)
		if err != nil {
			return fmt.Errorf("lz4: %w", err)
		}
		if n > 0 && n < len(raw) {
			payload = buf[:n]
			h.Flags = flagLZ4
		}
	}
	h.Size = uint32(len(payload))

	var out bytes.Buffer
	out.WriteString(EmblemMagic)
	if err := binary.Write(&out, binary.LittleEndian, h); err != nil {
		return err
	}
	out.Write(payload)

	_, err := w.Write(out.Bytes())
	return err
}
