// Package convert handles the watch face's on-disk asset formats: .wfpk
// theme packs (a flat archive of theme files) and .wftx emblem textures.
package convert

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gwatchface/internal/utils"
)

// PackVersion is the version string at the head of a theme pack.
const PackVersion = "WFPK0001"

type packEntry struct {
	Name   string
	Offset uint32
	Size   uint32
}

func readPackString(r io.Reader) (string, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return "", err
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writePackString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

// ExtractPack unpacks a theme pack into outputDir, preserving entry paths.
func ExtractPack(pkgPath, outputDir string) error {
	utils.Debug("Pack: opening %s", pkgPath)
	f, err := os.Open(pkgPath)
	if err != nil {
		return err
	}
	defer f.Close()

	version, err := readPackString(f)
	if err != nil {
		return err
	}
	if version != PackVersion {
		return fmt.Errorf("unsupported pack version %q", version)
	}

	var fileCount uint32
	if err := binary.Read(f, binary.LittleEndian, &fileCount); err != nil {
		return err
	}
	utils.Debug("Pack: %d entries", fileCount)

	entries := make([]packEntry, fileCount)
	for i := uint32(0); i < fileCount; i++ {
		name, err := readPackString(f)
		if err != nil {
			return err
		}
		var offset, size uint32
		if err := binary.Read(f, binary.LittleEndian, &offset); err != nil {
			return err
		}
		if err := binary.Read(f, binary.LittleEndian, &size); err != nil {
			return err
		}
		entries[i] = packEntry{Name: name, Offset: offset, Size: size}
	}

	dataStart, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	for _, entry := range entries {
		utils.Debug("Pack: extracting %s (%d bytes)", entry.Name, entry.Size)
		destPath := filepath.Join(outputDir, filepath.Clean(entry.Name))
		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return err
		}

		if _, err := f.Seek(dataStart+int64(entry.Offset), io.SeekStart); err != nil {
			return err
		}

		out, err := os.Create(destPath)
		if err != nil {
			return err
		}
		_, err = io.CopyN(out, f, int64(entry.Size))
		out.Close()
		if err != nil {
			return err
		}
	}

	utils.Debug("Pack: extraction complete")
	return nil
}

// WritePack builds a theme pack from the given entries. Entry names are
// stored sorted so pack output is reproducible.
func WritePack(pkgPath string, files map[string][]byte) error {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	f, err := os.Create(pkgPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := writePackString(f, PackVersion); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(len(names))); err != nil {
		return err
	}

	offset := uint32(0)
	for _, name := range names {
		if err := writePackString(f, name); err != nil {
			return err
		}
		size := uint32(len(files[name]))
		if err := binary.Write(f, binary.LittleEndian, offset); err != nil {
			return err
		}
		if err := binary.Write(f, binary.LittleEndian, size); err != nil {
			return err
		}
		offset += size
	}

	for _, name := range names {
		if _, err := f.Write(files[name]); err != nil {
			return err
		}
	}
	return nil
}
