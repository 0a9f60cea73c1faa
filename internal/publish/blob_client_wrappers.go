package publish

import (
	"context"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
)

//go:generate go tool mockgen -source=blob_client_wrappers.go -destination=blob_client_mock_test.go -package=publish

// blobContainer is just an interface over [*container.Client]
type blobContainer interface {
	// UploadFile maps to [blockblob.Client.UploadFile] on the named blob and
	// returns the blob URL.
	UploadFile(ctx context.Context, blobName string, file *os.File, contentType string) (string, error)
}

type containerClientWrapper struct {
	inner *container.Client
}

func (w *containerClientWrapper) UploadFile(ctx context.Context, blobName string, file *os.File, contentType string) (string, error) {
	bb := w.inner.NewBlockBlobClient(blobName)
	_, err := bb.UploadFile(ctx, file, &blockblob.UploadFileOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: to.Ptr(contentType)},
	})
	if err != nil {
		return "", err
	}
	return bb.URL(), nil
}
