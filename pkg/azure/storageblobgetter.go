package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// FlowLogBlobContainerName is the container NSG flow logs are written to in
// every storage account.
const FlowLogBlobContainerName = "insights-logs-networksecuritygroupflowevent"

type Blob struct {
	azblob.BlockBlobClient
	Path string
}

type AzureStorageBlobGetter struct {
	ctx             context.Context
	containerClient *azblob.ContainerClient
}

// ServiceURL is the public blob endpoint of a storage account.
func ServiceURL(accountName string) string {
	return fmt.Sprintf("https://%s.blob.core.windows.net/", accountName)
}

// NewAzureStorageBlobGetter authenticates to the flow log container with a
// shared key. An empty serviceURL means the account's public endpoint.
func NewAzureStorageBlobGetter(ctx context.Context, accountName string, accountKey string, serviceURL string) (*AzureStorageBlobGetter, error) {
	if serviceURL == "" {
		serviceURL = ServiceURL(accountName)
	}

	blobCred, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, fmt.Errorf("failed to created blob credential: %w", err)
	}

	serviceClient, err := azblob.NewServiceClientWithSharedKey(serviceURL, blobCred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob service client: %w", err)
	}

	containerClient, err := serviceClient.NewContainerClient(FlowLogBlobContainerName)
	if err != nil {
		return nil, fmt.Errorf("failed to create container client: %w", err)
	}

	return &AzureStorageBlobGetter{
		ctx:             ctx,
		containerClient: containerClient,
	}, nil
}

func (a *AzureStorageBlobGetter) ListBlobNames() (names []string, err error) {
	pager := a.containerClient.ListBlobsFlat(nil)

	for pager.NextPage(a.ctx) {
		resp := pager.PageResponse()

		for _, b := range resp.ListBlobsFlatSegmentResponse.Segment.BlobItems {
			names = append(names, *b.Name)
		}
	}

	if err := pager.Err(); err != nil {
		return nil, fmt.Errorf("failed to list blobs in container %v: %w", FlowLogBlobContainerName, err)
	}

	return
}

func (a *AzureStorageBlobGetter) GetBlob(path string) (*Blob, error) {
	blob, err := a.containerClient.NewBlockBlobClient(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client for %v: %w", path, err)
	}

	return &Blob{*blob, path}, nil
}
