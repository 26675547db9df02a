// Package utils holds small helpers shared across the service.
package utils

import (
	"crypto/md5"
	"fmt"
)

// SearchFingerprint collapses a search request into the hex digest used
// as its cache key: query text plus both coordinates. Nil coordinates
// hash as zero, so anonymous lookups from the same text share an entry.
func SearchFingerprint(userText string, lat, lon *float64) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s|%v|%v", userText, deref(lat), deref(lon))))
	return fmt.Sprintf("%x", sum)
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
