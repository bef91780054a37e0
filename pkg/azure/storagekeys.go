package azure

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
)

const storageAccountResourceType = "Microsoft.Storage/storageAccounts"

var (
	ErrNoStorageKeys   = errors.New("storage account has no access keys")
	ErrAccountMismatch = errors.New("storage account resource id does not match the account name")
)

type ResourceId struct {
	arm.ResourceID
}

func ParseStorageAccountId(id string) (*ResourceId, error) {
	r, err := arm.ParseResourceID(id)
	if err != nil {
		return nil, fmt.Errorf("could not parse storage account resource id %v: %w", id, err)
	}

	if !strings.EqualFold(r.ResourceType.String(), storageAccountResourceType) {
		return nil, fmt.Errorf("resource id %v is a %v, not a %v", id, r.ResourceType.String(), storageAccountResourceType)
	}

	return &ResourceId{*r}, nil
}

type StorageKeyGetter struct {
	ctx  context.Context
	cred azcore.TokenCredential
}

func NewStorageKeyGetter(ctx context.Context, cred azcore.TokenCredential) *StorageKeyGetter {
	return &StorageKeyGetter{
		ctx:  ctx,
		cred: cred,
	}
}

// GetAccountKey returns the first access key of the storage account.
func (g *StorageKeyGetter) GetAccountKey(stgAccId *ResourceId) (string, error) {
	stgAccClient, err := g.newStorageAccountClient(stgAccId.SubscriptionID)
	if err != nil {
		return "", err
	}

	keys, err := stgAccClient.ListKeys(g.ctx, stgAccId.ResourceGroupName, stgAccId.Name, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get storage keys: %w", err)
	}

	if len(keys.Keys) == 0 || keys.Keys[0].Value == nil {
		return "", fmt.Errorf("%w: %v", ErrNoStorageKeys, stgAccId.Name)
	}

	return *keys.Keys[0].Value, nil
}

func (g *StorageKeyGetter) newStorageAccountClient(subscriptionId string) (*armstorage.AccountsClient, error) {
	stgClient, err := armstorage.NewAccountsClient(subscriptionId, g.cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage account client: %w", err)
	}
	return stgClient, nil
}
