package variance

import (
	"fmt"
	"testing"
	"time"

	"freight_opcost/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestEngine() *Engine {
	n := 0
	return NewEngineWith(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}, func() time.Time { return fixedNow })
}

func newTestRecord(t *testing.T, e *Engine) entities.OperationalCostRecord {
	t.Helper()
	r, err := e.NewRecord(entities.DefaultVarianceThresholds())
	if err != nil {
		t.Fatalf("new record: %v", err)
	}
	return r
}

func assertDec(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Fatalf("%s=%s, want %s", name, got, want)
	}
}
