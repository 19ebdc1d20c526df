package exchange

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func baseTable() Table {
	return NewTable(map[string]Value{
		"ohlcv_candle_limit":   Int(500),
		"ohlcv_has_history":    Bool(true),
		"trades_pagination":    String("time"),
		"stoploss_on_exchange": Bool(false),
	})
}

func TestMerge_OverrideWins(t *testing.T) {
	base := baseTable()
	override := NewTable(map[string]Value{"ohlcv_candle_limit": Int(300)})

	merged, err := Merge(base, override)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if merged.Len() != base.Len() {
		t.Errorf("Expected %d keys, got %d", base.Len(), merged.Len())
	}
	v, _ := merged.Get("ohlcv_candle_limit")
	if !v.Equal(Int(300)) {
		t.Errorf("Expected ohlcv_candle_limit=300, got %s", v)
	}
	v, _ = merged.Get("trades_pagination")
	if !v.Equal(String("time")) {
		t.Errorf("Expected base value for trades_pagination, got %s", v)
	}

	// Inputs are untouched
	v, _ = base.Get("ohlcv_candle_limit")
	if !v.Equal(Int(500)) {
		t.Errorf("Merge mutated base table: %s", v)
	}
}

func TestMerge_EmptyOverride(t *testing.T) {
	merged, err := Merge(baseTable(), Table{})
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if !merged.Equal(baseTable()) {
		t.Errorf("Expected base table, got %s", merged)
	}
}

func TestMerge_UnknownKey(t *testing.T) {
	override := NewTable(map[string]Value{
		"ohlcv_candle_limit": Int(300),
		"zz_unknown":         Bool(true),
		"aa_unknown":         Int(1),
	})

	merged, err := Merge(baseTable(), override)
	if err == nil {
		t.Fatal("Expected error for unknown override key")
	}
	if merged.Len() != 0 {
		t.Errorf("Expected empty table on failure, got %s", merged)
	}

	var ce *ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected ConfigurationError, got %T: %v", err, err)
	}
	if ce.Key != "aa_unknown" {
		t.Errorf("Expected first offending key aa_unknown, got %s", ce.Key)
	}
}

func TestMerge_ExtensionKey(t *testing.T) {
	override := NewTable(map[string]Value{"stop_price_param": String("stopPrice")})

	if _, err := Merge(baseTable(), override); err == nil {
		t.Error("Expected error when extension is not declared")
	}

	merged, err := Merge(baseTable(), override, "stop_price_param")
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if !merged.Has("stop_price_param") {
		t.Error("Expected extension key in merged table")
	}
	if merged.Len() != baseTable().Len()+1 {
		t.Errorf("Expected %d keys, got %d", baseTable().Len()+1, merged.Len())
	}
}

func TestTable_KeysSorted(t *testing.T) {
	keys := baseTable().Keys()
	want := []string{"ohlcv_candle_limit", "ohlcv_has_history", "stoploss_on_exchange", "trades_pagination"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %v", len(want), keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %s, want %s", i, keys[i], want[i])
		}
	}
}

func TestNewTable_CopiesInput(t *testing.T) {
	m := map[string]Value{"a": Int(1)}
	tbl := NewTable(m)
	m["a"] = Int(2)
	m["b"] = Int(3)

	v, _ := tbl.Get("a")
	if !v.Equal(Int(1)) || tbl.Has("b") {
		t.Errorf("Table shares storage with its input: %s", tbl)
	}

	out := tbl.Map()
	out["a"] = Int(9)
	v, _ = tbl.Get("a")
	if !v.Equal(Int(1)) {
		t.Error("Map() returned the internal map")
	}
}

func TestValue_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same int", Int(500), Int(500), true},
		{"int vs decimal", Int(500), Number(decimal.RequireFromString("500.0")), true},
		{"different int", Int(500), Int(300), false},
		{"number vs string", Int(1), String("1"), false},
		{"bool", Bool(true), Bool(true), true},
		{"string", String("time"), String("id"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%s.Equal(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestValue_Int64RejectsFraction(t *testing.T) {
	if _, ok := Number(decimal.RequireFromString("1.5")).Int64(); ok {
		t.Error("Expected Int64 to reject a fractional number")
	}
	if i, ok := Int(42).Int64(); !ok || i != 42 {
		t.Errorf("Int64() = %d, %v", i, ok)
	}
}

// FuzzMerge checks that merging is deterministic and that overrides always win.
func FuzzMerge(f *testing.F) {
	f.Add(int64(300), true, "id")
	f.Add(int64(0), false, "")
	f.Add(int64(-1), true, "time")

	f.Fuzz(func(t *testing.T, limit int64, history bool, pagination string) {
		override := NewTable(map[string]Value{
			"ohlcv_candle_limit": Int(limit),
			"ohlcv_has_history":  Bool(history),
			"trades_pagination":  String(pagination),
		})

		a, err := Merge(baseTable(), override)
		if err != nil {
			t.Fatalf("Merge failed: %v", err)
		}
		b, err := Merge(baseTable(), override)
		if err != nil {
			t.Fatalf("Merge failed: %v", err)
		}
		if !a.Equal(b) {
			t.Fatalf("Merge is not deterministic: %s vs %s", a, b)
		}
		for _, k := range override.Keys() {
			want, _ := override.Get(k)
			got, _ := a.Get(k)
			if !got.Equal(want) {
				t.Errorf("%s = %s, want %s", k, got, want)
			}
		}
	})
}
