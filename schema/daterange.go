// Package schema 存放查询参数的解析与校验逻辑，校验不产生任何副作用
package schema

import (
	"fmt"
	"time"
)

// DateRange 校验通过的统计查询区间，两端闭合
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// ParseDateRange 解析并校验统计查询的日期区间
// maxDays 为允许的最大跨度（天），由调用方从配置注入，不读任何全局状态
// 规则：to 不早于 from，且按天计算的跨度不超过 maxDays；from == to 合法（单日区间）
// 倒置区间和超跨度区间走同一条拒绝路径，返回同一个错误
// 校验通过后 To 被推到当天 23:59:59，使 [From, To] 在秒级两端闭合
func ParseDateRange(fromStr, toStr string, maxDays int) (DateRange, error) {
	from, err := parseDate(fromStr)
	if err != nil {
		return DateRange{}, fmt.Errorf("from 格式错误，应为 2006-01-02 或 RFC3339")
	}
	to, err := parseDate(toStr)
	if err != nil {
		return DateRange{}, fmt.Errorf("to 格式错误，应为 2006-01-02 或 RFC3339")
	}

	// 跨度按日历天比较，忽略一天内的时分秒
	fromDay := truncateToDay(from)
	toDay := truncateToDay(to)
	days := int(toDay.Sub(fromDay).Hours() / 24)
	if days < 0 || days > maxDays {
		return DateRange{}, fmt.Errorf("无效的日期区间：要求 to 不早于 from 且跨度不超过 %d 天", maxDays)
	}

	return DateRange{
		From: fromDay,
		To:   toDay.Add(24*time.Hour - time.Second),
	}, nil
}

// parseDate 解析日期参数，统一为 UTC 并截断到整秒
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC().Truncate(time.Second), nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
