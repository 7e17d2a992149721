package common

import (
	"testing"

	"cmsift-core/cmsearch"
)

func rec(id string, start, end int, score float64) *cmsearch.Record {
	return &cmsearch.Record{
		Hit: cmsearch.Feature{ID: id, Start: start, End: end, Score: score, Strand: 1},
	}
}

func TestSortRecords(t *testing.T) {
	rs := []*cmsearch.Record{
		rec("chr2", 5, 10, 1),
		rec("chr1", 50, 60, 2),
		rec("chr1", 5, 10, 3),
		rec("chr1", 5, 10, 9),
	}
	SortRecords(rs)
	if rs[0].Hit.Score != 9 || rs[1].Hit.Score != 3 {
		t.Errorf("equal-interval records not ordered by descending score: %v %v",
			rs[0].Hit.Score, rs[1].Hit.Score)
	}
	if rs[2].Hit.Start != 50 || rs[3].Hit.ID != "chr2" {
		t.Errorf("order wrong: %+v", rs)
	}
}
