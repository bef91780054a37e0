package nsgflowstest

import "errors"

var ErrList = errors.New("list blobs error")

type BlobLister struct {
	Names     []string
	Err       error
	ListCount int
}

func NewFakeBlobLister(names ...string) *BlobLister {
	return &BlobLister{Names: names}
}

func (f *BlobLister) ListBlobNames() ([]string, error) {
	f.ListCount++
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]string(nil), f.Names...), nil
}
