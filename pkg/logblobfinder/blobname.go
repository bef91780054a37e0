package logblobfinder

import (
	"errors"
	"fmt"
	"strings"
)

// flow log blobs are named
// resourceId=/SUBSCRIPTIONS/<sub>/RESOURCEGROUPS/<rg>/PROVIDERS/MICROSOFT.NETWORK/NETWORKSECURITYGROUPS/<nsg>/y=<yyyy>/m=<mm>/d=<dd>/h=<hh>/m=<mm>/macAddress=<mac>/PT1H.json
const (
	sourceSegment      = 8
	bucketStartSegment = 9
	bucketEndSegment   = 14
)

var ErrUnexpectedBlobLayout = errors.New("unexpected flow log blob layout")

type BlobName struct {
	Path   string
	Source string
	Bucket string
}

func ParseBlobName(path string) (BlobName, error) {
	segments := strings.Split(path, "/")
	if len(segments) < bucketEndSegment {
		return BlobName{}, fmt.Errorf("%w: blob '%v' has %d path segments, expected at least %d", ErrUnexpectedBlobLayout, path, len(segments), bucketEndSegment)
	}

	return BlobName{
		Path:   path,
		Source: segments[sourceSegment],
		Bucket: strings.Join(segments[bucketStartSegment:bucketEndSegment], "/"),
	}, nil
}
