package service

import (
	"encoding/json"

	"github.com/CasualJavaUser/FlashcardApi/internal/stats/domain"
)

// decodeBuckets parses the serialized bucket array. Anything unparseable is
// replaced by a fresh all-zero histogram; stored arrays of the wrong length
// are padded or truncated to HistogramSize.
func decodeBuckets(raw string) []int {
	var buckets []int
	if err := json.Unmarshal([]byte(raw), &buckets); err != nil {
		return make([]int, domain.HistogramSize)
	}

	if len(buckets) == domain.HistogramSize {
		return buckets
	}

	fixed := make([]int, domain.HistogramSize)
	copy(fixed, buckets)

	return fixed
}

func encodeBuckets(buckets []int) string {
	raw, err := json.Marshal(buckets)
	if err != nil {
		// a []int cannot fail to marshal
		return "[]"
	}

	return string(raw)
}

// age advances the histogram's frame of reference by offset days: index 0 is
// "today", so every value moves offset slots toward the old end. Buckets are
// scattered into a fresh array so no slot is read after being overwritten;
// values pushed past the window are discarded, vacated slots stay zero. An
// offset at or past the window length clears everything.
func age(buckets []int, offset int) []int {
	out := make([]int, len(buckets))

	if offset <= 0 {
		copy(out, buckets)
		return out
	}

	for i := 0; i+offset < len(buckets); i++ {
		out[i+offset] = buckets[i]
	}

	return out
}
