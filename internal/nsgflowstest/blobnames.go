package nsgflowstest

import (
	"fmt"
	"sort"
	"strings"
)

// BlobPath builds a flow log blob name for the given nsg and bucket, where
// bucket is "yyyy/mm/dd/hh/mm".
func BlobPath(nsgName string, bucket string) string {
	return BlobPathWithMac(nsgName, bucket, "0022483F762A")
}

func BlobPathWithMac(nsgName string, bucket string, mac string) string {
	p := strings.Split(bucket, "/")
	return fmt.Sprintf("resourceId=/SUBSCRIPTIONS/xyz/RESOURCEGROUPS/NSG-VIEW/PROVIDERS/MICROSOFT.NETWORK/NETWORKSECURITYGROUPS/%v/y=%v/m=%v/d=%v/h=%v/m=%v/macAddress=%v/PT1H.json",
		nsgName, p[0], p[1], p[2], p[3], p[4], mac)
}

// Bucket is the bucket key ParseBlobName produces for a BlobPath bucket.
func Bucket(bucket string) string {
	p := strings.Split(bucket, "/")
	return fmt.Sprintf("y=%v/m=%v/d=%v/h=%v/m=%v", p[0], p[1], p[2], p[3], p[4])
}

func StringSlicesEqual(a []string, b []string) bool {
	a = append([]string(nil), a...)
	b = append([]string(nil), b...)
	sort.Strings(a)
	sort.Strings(b)

	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
