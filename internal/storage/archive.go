package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// maxArchivePayload bounds how much a single archive may expand to.
const maxArchivePayload = 16 << 20

// WriteArchive writes payload zstd-compressed to w.
func WriteArchive(w io.Writer, payload []byte) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	if _, err := enc.Write(payload); err != nil {
		_ = enc.Close()
		return fmt.Errorf("archive write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("archive close: %w", err)
	}
	return nil
}

// ReadArchive decompresses an archive written by WriteArchive.
func ReadArchive(r io.Reader) ([]byte, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderMaxMemory(maxArchivePayload))
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	data, err := io.ReadAll(io.LimitReader(dec, maxArchivePayload+1))
	if err != nil {
		return nil, fmt.Errorf("archive read: %w", err)
	}
	if len(data) > maxArchivePayload {
		return nil, fmt.Errorf("archive exceeds %d bytes", maxArchivePayload)
	}
	return data, nil
}

// zstdMagic starts every zstd frame.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// WriteArchiveFile writes payload atomically via a temp file in the same
// directory. A path ending in .json gets the plain document, anything else
// a zstd archive.
func WriteArchiveFile(path string, payload []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	tmpPath := tmp.Name()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if _, err = tmp.Write(payload); err != nil {
			err = fmt.Errorf("write json: %w", err)
		}
	} else {
		err = WriteArchive(tmp, payload)
	}
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close archive: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename archive: %w", err)
	}
	return nil
}

// ReadArchiveFile reads a file written by WriteArchiveFile or a plain JSON
// save. The format is taken from the content, not the file name.
func ReadArchiveFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxArchivePayload+1))
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	if bytes.HasPrefix(data, zstdMagic) {
		return ReadArchive(bytes.NewReader(data))
	}
	if len(data) > maxArchivePayload {
		return nil, fmt.Errorf("file exceeds %d bytes", maxArchivePayload)
	}
	return data, nil
}
