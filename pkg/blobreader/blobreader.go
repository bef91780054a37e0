package blobreader

import (
	"context"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

type BlobDownloadResponse interface {
	Body(opts *azblob.RetryReaderOptions) io.ReadCloser
}

type Blob interface {
	Download(ctx context.Context, options *azblob.BlobDownloadOptions) (BlobDownloadResponse, error)
}

type BlobReader struct {
	ctx  context.Context
	blob Blob
	path string
}

func NewBlobReader(ctx context.Context, blob Blob, path string) *BlobReader {
	return &BlobReader{
		ctx:  ctx,
		blob: blob,
		path: path,
	}
}
