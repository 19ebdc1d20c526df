// Package exchange describes what each supported exchange can do.
//
// Every exchange shares one base capability table (candle limits, pagination
// style, ticker fields and so on). An exchange that behaves differently is
// registered as a Variant carrying only the keys it changes:
//
//	reg := exchange.Default()
//	adapter, err := reg.Resolve("CoinbasePro")
//	if err != nil {
//	    return err
//	}
//	limit, _ := adapter.Int(exchange.CapOHLCVCandleLimit) // 300
//
// Exchanges without a variant resolve to the base table with a warning, so
// officially unsupported venues stay usable on a best-effort basis.
package exchange
