package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tmeadon/nsgflows/pkg/azure"
	"github.com/tmeadon/nsgflows/pkg/blobreader"
	"github.com/tmeadon/nsgflows/pkg/flowlog"
	"github.com/tmeadon/nsgflows/pkg/flowwriter"
	"github.com/tmeadon/nsgflows/pkg/logblobfinder"
)

type blobFinder interface {
	FindRecent(lookbackCount int) ([]logblobfinder.BlobName, error)
}

type blobSource interface {
	ReadBlob(path string) ([]byte, error)
}

type progress interface {
	Start()
	Stop()
}

// reporter reads the selected blobs one at a time and writes their flows.
type reporter struct {
	finder        blobFinder
	source        blobSource
	writers       *flowwriter.WriterGroup
	progress      progress
	log           zerolog.Logger
	lookbackCount int
	skipMalformed bool
}

func (r *reporter) run() error {
	blobs, err := r.findBlobs()
	if err != nil {
		return err
	}

	for _, b := range blobs {
		err := r.reportBlob(b)
		if err == nil {
			continue
		}

		if r.skipMalformed && errors.Is(err, flowlog.ErrMalformedLog) {
			r.log.Warn().Err(err).Str("blob", b.Path).Msg("skipping malformed blob")
			continue
		}

		r.writers.Flush()
		return err
	}

	return r.writers.Flush()
}

func (r *reporter) findBlobs() ([]logblobfinder.BlobName, error) {
	if r.progress != nil {
		r.progress.Start()
		defer r.progress.Stop()
	}

	return r.finder.FindRecent(r.lookbackCount)
}

func (r *reporter) reportBlob(b logblobfinder.BlobName) error {
	r.log.Debug().Str("blob", b.Path).Msg("reading blob")

	data, err := r.source.ReadBlob(b.Path)
	if err != nil {
		return err
	}

	tuples, err := flowlog.Decode(data, b.Source)
	if err != nil {
		return fmt.Errorf("failed to decode blob %v: %w", b.Path, err)
	}

	shown := 0
	for _, t := range tuples {
		written, err := r.writers.WriteFlowTuple(t)
		if err != nil {
			return err
		}
		if written {
			shown++
		}
	}

	if err := r.writers.Flush(); err != nil {
		return err
	}

	r.log.Debug().Str("blob", b.Path).Int("tuples", len(tuples)).Int("displayed", shown).Msg("finished blob")
	return nil
}

type azureBlobSource struct {
	ctx    context.Context
	getter *azure.AzureStorageBlobGetter
}

func (s *azureBlobSource) ReadBlob(path string) ([]byte, error) {
	blob, err := s.getter.GetBlob(path)
	if err != nil {
		return nil, err
	}

	return blobreader.NewBlobReader(s.ctx, blobreader.NewBlobWrapper(blob), path).Read()
}
