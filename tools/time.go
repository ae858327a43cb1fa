package tools

import (
	"fmt"
	"time"

	"github.com/protrack/service/errors"
)

// FormatMinutes 分钟数转为"HH:MM"格式字符串
func FormatMinutes(span int64) string {
	if span < 0 {
		span = 0
	}
	return fmt.Sprintf("%02d:%02d", span/60, span%60)
}

// SpanBetween 计算"15:04"格式起止时间之间的分钟数
func SpanBetween(start, end string) (int64, error) {
	s, err := time.Parse("15:04", start)
	if err != nil {
		return 0, errors.Wrapf(err, "开始时间%s格式不正确", start)
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return 0, errors.Wrapf(err, "结束时间%s格式不正确", end)
	}
	span := int64(e.Sub(s) / time.Minute)
	if span < 0 {
		return 0, errors.Errorf("结束时间%s早于开始时间%s", end, start)
	}
	return span, nil
}

// Duration 计算起止时间的"HH:MM"时长字符串
func Duration(start, end string) (string, error) {
	span, err := SpanBetween(start, end)
	if err != nil {
		return "", err
	}
	return FormatMinutes(span), nil
}
