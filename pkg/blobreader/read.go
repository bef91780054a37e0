package blobreader

import (
	"bytes"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Read downloads the whole blob into memory. Gzip compressed blobs are
// decompressed.
func (br *BlobReader) Read() ([]byte, error) {
	resp, err := br.blob.Download(br.ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to download blob %v: %w", br.path, err)
	}

	data := &bytes.Buffer{}
	reader := resp.Body(&azblob.RetryReaderOptions{})

	_, err = data.ReadFrom(reader)
	closeErr := reader.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %v: %w", br.path, err)
	}

	if closeErr != nil {
		return nil, fmt.Errorf("failed to close reader for blob %v: %w", br.path, closeErr)
	}

	if bytes.HasPrefix(data.Bytes(), gzipMagic) {
		return br.gunzip(data)
	}

	return data.Bytes(), nil
}

func (br *BlobReader) gunzip(data *bytes.Buffer) ([]byte, error) {
	zr, err := gzip.NewReader(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip blob %v: %w", br.path, err)
	}
	defer zr.Close()

	out := &bytes.Buffer{}
	if _, err := out.ReadFrom(zr); err != nil {
		return nil, fmt.Errorf("failed to decompress blob %v: %w", br.path, err)
	}

	return out.Bytes(), nil
}
