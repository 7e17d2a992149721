// internal/common/sort.go
package common

import (
	"sort"

	"cmsift-core/cmsearch"
)

// LessRecord defines a stable order for records (for -sort).
func LessRecord(a, b *cmsearch.Record) bool {
	if a.Hit.ID != b.Hit.ID {
		return a.Hit.ID < b.Hit.ID
	}
	if a.Hit.Start != b.Hit.Start {
		return a.Hit.Start < b.Hit.Start
	}
	if a.Hit.End != b.Hit.End {
		return a.Hit.End < b.Hit.End
	}
	if a.Hit.Score != b.Hit.Score {
		return a.Hit.Score > b.Hit.Score
	}
	return a.SourceFile < b.SourceFile
}

func SortRecords(rs []*cmsearch.Record) {
	sort.SliceStable(rs, func(i, j int) bool { return LessRecord(rs[i], rs[j]) })
}
