package blobreader

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/tmeadon/nsgflows/pkg/azure"
)

type BlobWrapper struct {
	blob *azure.Blob
}

func NewBlobWrapper(blob *azure.Blob) *BlobWrapper {
	return &BlobWrapper{blob}
}

func (bw *BlobWrapper) Download(ctx context.Context, options *azblob.BlobDownloadOptions) (BlobDownloadResponse, error) {
	resp, err := bw.blob.Download(ctx, options)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
