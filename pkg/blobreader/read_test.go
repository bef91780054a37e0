package blobreader

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/klauspost/compress/gzip"
)

var fakeBlobData string = `{"records": []}`
var errDownload error = errors.New("download error")

type fakeBody struct {
	io.Reader
	closed bool
}

func (b *fakeBody) Close() error {
	b.closed = true
	return nil
}

type fakeBlobDownloadResponse struct {
	body *fakeBody
}

func (f *fakeBlobDownloadResponse) Body(opts *azblob.RetryReaderOptions) io.ReadCloser {
	return f.body
}

type fakeBlob struct {
	data      []byte
	body      *fakeBody
	downloads int
}

func (f *fakeBlob) Download(ctx context.Context, options *azblob.BlobDownloadOptions) (BlobDownloadResponse, error) {
	f.downloads++
	f.body = &fakeBody{Reader: bytes.NewReader(f.data)}
	return &fakeBlobDownloadResponse{f.body}, nil
}

type fakeErroringBlob struct{}

func (f *fakeErroringBlob) Download(ctx context.Context, options *azblob.BlobDownloadOptions) (BlobDownloadResponse, error) {
	return nil, errDownload
}

func gzipped(t *testing.T, s string) []byte {
	var buffer bytes.Buffer
	zw := gzip.NewWriter(&buffer)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to set up test: %v", err)
	}
	return buffer.Bytes()
}

func TestRead(t *testing.T) {
	t.Run("ReadsWholeBlob", func(t *testing.T) {
		blob := &fakeBlob{data: []byte(fakeBlobData)}

		got, err := NewBlobReader(context.Background(), blob, "blob.json").Read()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if string(got) != fakeBlobData {
			t.Errorf("wrong data read. expected: %v; got %v", fakeBlobData, string(got))
		}

		if !blob.body.closed {
			t.Errorf("expected download body to be closed")
		}
	})

	t.Run("DecompressesGzipBlobs", func(t *testing.T) {
		blob := &fakeBlob{data: gzipped(t, fakeBlobData)}

		got, err := NewBlobReader(context.Background(), blob, "blob.json.gz").Read()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if string(got) != fakeBlobData {
			t.Errorf("wrong data read. expected: %v; got %v", fakeBlobData, string(got))
		}
	})

	t.Run("FailsOnTruncatedGzip", func(t *testing.T) {
		data := gzipped(t, strings.Repeat(fakeBlobData, 10))
		blob := &fakeBlob{data: data[:len(data)/2]}

		if _, err := NewBlobReader(context.Background(), blob, "blob.json.gz").Read(); err == nil {
			t.Errorf("expected an error for a truncated gzip blob")
		}
	})

	t.Run("EachReadDownloadsAgain", func(t *testing.T) {
		blob := &fakeBlob{data: []byte(fakeBlobData)}
		br := NewBlobReader(context.Background(), blob, "blob.json")

		for i := 0; i < 2; i++ {
			if _, err := br.Read(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		if blob.downloads != 2 {
			t.Errorf("expected 2 downloads, got %v", blob.downloads)
		}
	})

	t.Run("ReturnsDownloadErrors", func(t *testing.T) {
		_, err := NewBlobReader(context.Background(), new(fakeErroringBlob), "blob.json").Read()
		if !errors.Is(err, errDownload) {
			t.Errorf("incorrect error type received.  expected: %v; got: %v", errDownload, err)
		}
	})
}
