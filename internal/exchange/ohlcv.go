package exchange

import (
	"fmt"
	"time"
)

// CapOHLCVCandleLimit is the maximum number of candles one OHLCV request may return.
const CapOHLCVCandleLimit = "ohlcv_candle_limit"

// Window is a half-open [Since, Until) candle request range.
type Window struct {
	Since time.Time
	Until time.Time
}

// Candles returns the number of candles of the given timeframe in w.
func (w Window) Candles(timeframe time.Duration) int64 {
	return int64(w.Until.Sub(w.Since) / timeframe)
}

// CandleWindows splits [since, until) into consecutive request windows that
// each stay within the adapter's candle limit. since is aligned down to the
// timeframe; the last window may be shorter.
func CandleWindows(a *Adapter, since, until time.Time, timeframe time.Duration) ([]Window, error) {
	if timeframe <= 0 {
		return nil, fmt.Errorf("invalid timeframe %s", timeframe)
	}
	if !until.After(since) {
		return nil, fmt.Errorf("invalid candle range: %s is not after %s", until, since)
	}

	limit, err := a.Int(CapOHLCVCandleLimit)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("exchange %s: %s must be positive, got %d", a.Name(), CapOHLCVCandleLimit, limit)
	}

	step := timeframe * time.Duration(limit)
	start := since.Truncate(timeframe)

	var windows []Window
	for cur := start; cur.Before(until); cur = cur.Add(step) {
		end := cur.Add(step)
		if end.After(until) {
			end = until
		}
		windows = append(windows, Window{Since: cur, Until: end})
	}
	return windows, nil
}
