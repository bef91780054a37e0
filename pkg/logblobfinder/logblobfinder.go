package logblobfinder

import (
	"fmt"

	"github.com/rs/zerolog"
)

type blobLister interface {
	ListBlobNames() ([]string, error)
}

type Finder struct {
	blobLister
	log zerolog.Logger
}

func NewLogBlobFinder(lister blobLister, log zerolog.Logger) *Finder {
	return &Finder{
		blobLister: lister,
		log:        log,
	}
}

// FindRecent lists the flow log container and selects the lookbackCount
// newest blobs of each nsg.
func (f *Finder) FindRecent(lookbackCount int) ([]BlobName, error) {
	names, err := f.ListBlobNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list flow log blobs: %w", err)
	}

	f.log.Debug().Int("blobs", len(names)).Msg("listed flow log container")

	blobs, err := SelectBlobs(names, lookbackCount)
	if err != nil {
		return nil, err
	}

	f.logSelection(blobs, lookbackCount)
	return blobs, nil
}

func (f *Finder) logSelection(blobs []BlobName, lookbackCount int) {
	if f.log.GetLevel() > zerolog.DebugLevel {
		return
	}

	buckets := make(map[string][]string)
	sources := make([]string, 0)

	for _, b := range blobs {
		if _, ok := buckets[b.Source]; !ok {
			sources = append(sources, b.Source)
		}
		if n := len(buckets[b.Source]); n == 0 || buckets[b.Source][n-1] != b.Bucket {
			buckets[b.Source] = append(buckets[b.Source], b.Bucket)
		}
	}

	f.log.Debug().Strs("nsgs", sources).Msg("nsgs found in storage account")

	for _, s := range sources {
		f.log.Debug().Str("nsg", s).Strs("buckets", buckets[s]).Int("displayHours", lookbackCount).Msg("hourly blobs selected")
	}
}
