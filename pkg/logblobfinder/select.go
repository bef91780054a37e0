package logblobfinder

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SelectBlobs returns the blobs in the lookbackCount newest time buckets of
// every source found in listing. Sources are returned in name order and each
// source's buckets newest first.
func SelectBlobs(listing []string, lookbackCount int) ([]BlobName, error) {
	bySource, err := groupBlobs(listing)
	if err != nil {
		return nil, err
	}

	selected := make([]BlobName, 0)
	sources := maps.Keys(bySource)
	slices.Sort(sources)

	for _, source := range sources {
		buckets := bySource[source]
		for _, bucket := range newestBuckets(buckets, lookbackCount) {
			selected = append(selected, buckets[bucket]...)
		}
	}

	return selected, nil
}

// groupBlobs maps source -> bucket -> blobs, keeping listing order within a
// bucket.
func groupBlobs(listing []string) (map[string]map[string][]BlobName, error) {
	bySource := make(map[string]map[string][]BlobName)

	for _, path := range listing {
		b, err := ParseBlobName(path)
		if err != nil {
			return nil, err
		}

		if _, ok := bySource[b.Source]; !ok {
			bySource[b.Source] = make(map[string][]BlobName)
		}
		bySource[b.Source][b.Bucket] = append(bySource[b.Source][b.Bucket], b)
	}

	return bySource, nil
}

// bucket keys are fixed width and zero padded so they sort by time
func newestBuckets(buckets map[string][]BlobName, count int) []string {
	if count <= 0 {
		return nil
	}

	keys := maps.Keys(buckets)
	slices.SortFunc(keys, func(a, b string) bool {
		return a > b
	})

	if count < len(keys) {
		keys = keys[:count]
	}

	return keys
}
