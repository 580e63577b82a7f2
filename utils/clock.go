package utils

import "time"

// Clock は現在時刻を返す関数です（テストでは固定時刻を注入します）
type Clock func() time.Time

// SystemClock は実時間を返します
var SystemClock Clock = time.Now

// FixedClock は常に t を返す Clock を作成します
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
