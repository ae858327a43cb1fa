package seed

import (
	"fmt"
	"strings"

	"github.com/protrack/service/util/json"
)

// CollectionCount 单个集合的生成计数
type CollectionCount struct {
	Collection string `json:"collection"`
	Count      int64  `json:"count"`
}

// Report 生成结果统计, 按填充顺序列出各集合计数与总数.
// 仅供观察, 不作为正确性依据
type Report struct {
	Collections []CollectionCount `json:"collections"`
	Total       int64             `json:"total"`
}

// Add 追加一个集合的计数
func (r *Report) Add(collection string, n int64) {
	r.Collections = append(r.Collections, CollectionCount{Collection: collection, Count: n})
	r.Total += n
}

// Count 查询某集合的计数, 未知集合返回-1
func (r *Report) Count(collection string) int64 {
	for _, c := range r.Collections {
		if c.Collection == collection {
			return c.Count
		}
	}
	return -1
}

// JSON 报告的JSON形式, 便于机器读取
func (r *Report) JSON() string {
	return json.MarshalToString(r)
}

func (r *Report) String() string {
	var b strings.Builder
	b.WriteString("seed report:\n")
	for _, c := range r.Collections {
		b.WriteString(fmt.Sprintf("  %-26s %d\n", c.Collection, c.Count))
	}
	b.WriteString(fmt.Sprintf("  %-26s %d\n", "total", r.Total))
	return b.String()
}
