// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import "github.com/pdiddy/transcript-engine/pkg/types"

// Deduplicate keeps one record per label. The surviving value is the last
// occurrence (a retake or correction later in the transcript wins) and it
// sits at the position where the label first appeared.
func Deduplicate(records []types.Record) []types.Record {
	index := make(map[string]int, len(records))
	out := make([]types.Record, 0, len(records))

	for _, r := range records {
		if i, ok := index[r.Label]; ok {
			out[i] = r
			continue
		}
		index[r.Label] = len(out)
		out = append(out, r)
	}
	return out
}
