package tools

import "testing"

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		span int64
		want string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{60, "01:00"},
		{150, "02:30"},
		{615, "10:15"},
		{-10, "00:00"},
	}
	for _, c := range cases {
		if got := FormatMinutes(c.span); got != c.want {
			t.Errorf("FormatMinutes(%d)期望%q, 实际%q", c.span, c.want, got)
		}
	}
}

func TestSpanBetween(t *testing.T) {
	span, err := SpanBetween("09:00", "12:30")
	if err != nil {
		t.Fatal(err)
	}
	if span != 210 {
		t.Errorf("期望210分钟, 实际%d", span)
	}
	if _, err := SpanBetween("12:30", "09:00"); err == nil {
		t.Error("结束早于开始应报错")
	}
	if _, err := SpanBetween("9点", "12:30"); err == nil {
		t.Error("格式错误应报错")
	}
}

func TestDuration(t *testing.T) {
	d, err := Duration("09:15", "18:00")
	if err != nil {
		t.Fatal(err)
	}
	if d != "08:45" {
		t.Errorf("期望08:45, 实际%q", d)
	}
}
