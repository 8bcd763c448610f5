package engine

import (
	"testing"

	"gotest.tools/assert"
)

func TestRowKeys(t *testing.T) {
	table := NewTable(
		[]string{"시도", "총인구수_20"},
		[]map[string]string{
			{"시도": "서울", "총인구수_20": "1"},
			{"시도": "부산", "총인구수_20": "2"},
			{"시도": "서울", "총인구수_20": "3"},
			{"시도": "", "총인구수_20": "4"},
		},
	)
	assert.DeepEqual(t, table.RowKeys("시도"), []string{"부산", "서울"})
}

func TestMergeByKeyOuterJoin(t *testing.T) {
	a := NewTable(
		[]string{"시도", "총인구수_20"},
		[]map[string]string{
			{"시도": "서울", "총인구수_20": "100"},
			{"시도": "부산", "총인구수_20": "50"},
		},
	)
	b := NewTable(
		[]string{"시도", "근로소득_20"},
		[]map[string]string{
			{"시도": "서울", "근로소득_20": "7"},
			{"시도": "제주", "근로소득_20": "5"},
		},
	)
	merged := MergeByKey(a, b, "시도")

	assert.DeepEqual(t, merged.Columns(), []string{"시도", "총인구수_20", "근로소득_20"})
	// regions from either source appear
	assert.DeepEqual(t, merged.RowKeys("시도"), []string{"부산", "서울", "제주"})

	rows := merged.Rows()
	assert.Equal(t, len(rows), 3)
	assert.Equal(t, rows[0]["총인구수_20"], "100")
	assert.Equal(t, rows[0]["근로소득_20"], "7")
	// region only in b carries only b's columns
	assert.Equal(t, rows[2]["시도"], "제주")
	assert.Equal(t, rows[2]["총인구수_20"], "")
}

func TestMergeByKeyFirstSourceWins(t *testing.T) {
	a := NewTable([]string{"시도", "v_20"}, []map[string]string{{"시도": "서울", "v_20": "1"}})
	b := NewTable([]string{"시도", "v_20"}, []map[string]string{{"시도": "서울", "v_20": "2"}})
	merged := MergeByKey(a, b, "시도")
	assert.Equal(t, merged.Rows()[0]["v_20"], "1")
}
