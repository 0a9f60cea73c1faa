// Package publish uploads rendered figures to an Azure Blob Storage
// container.
package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
)

const applicationID = "agentplot"

// Options configures a Publisher.
type Options struct {
	// ContainerURL is the https URL of the target container.
	ContainerURL string
	// Prefix is prepended to every blob name as a virtual directory.
	Prefix string
}

// Publisher uploads files to one container.
type Publisher struct {
	client blobContainer
	prefix string
}

// New creates a Publisher authenticated with DefaultAzureCredential.
func New(opts Options) (*Publisher, error) {
	if !strings.HasPrefix(opts.ContainerURL, "https://") {
		return nil, fmt.Errorf("container URL must use https, got %q", opts.ContainerURL)
	}
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("creating Azure credential: %w", err)
	}
	client, err := container.NewClient(opts.ContainerURL, cred, &container.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Telemetry: policy.TelemetryOptions{ApplicationID: applicationID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating container client: %w", err)
	}
	return newPublisher(&containerClientWrapper{inner: client}, opts.Prefix), nil
}

func newPublisher(client blobContainer, prefix string) *Publisher {
	return &Publisher{client: client, prefix: strings.Trim(prefix, "/")}
}

// BlobName is the name a local file is uploaded under.
func (p *Publisher) BlobName(localPath string) string {
	base := filepath.Base(localPath)
	if p.prefix == "" {
		return base
	}
	return path.Join(p.prefix, base)
}

// Publish uploads the file at localPath and returns its blob URL.
func (p *Publisher) Publish(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", localPath, err)
	}
	defer f.Close() //nolint:errcheck

	name := p.BlobName(localPath)
	url, err := p.client.UploadFile(ctx, name, f, contentType(localPath))
	if err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) {
			return "", fmt.Errorf("uploading %s: %s (HTTP %d)", name, respErr.ErrorCode, respErr.StatusCode)
		}
		return "", fmt.Errorf("uploading %s: %w", name, err)
	}
	slog.Info("Published figure", "blob", name, "url", url)
	return url, nil
}

func contentType(p string) string {
	if ct := mime.TypeByExtension(filepath.Ext(p)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
