package networth

import (
	"testing"
	"time"
)

func TestProjection_InterpolatesToTarget(t *testing.T) {
	today := NewDate(2025, time.January, 1)
	end := today.Add(20)
	v := buy("a", vti, NewDate(2024, time.June, 1), 10, 100)
	v.CurrentPrice = USD(150)
	p := NewPortfolio(v)
	cfg := ProjectionConfig{
		End:          end,
		TargetPrices: map[string]Money{"vti": USD(200)},
	}

	pr := newProjection(p, cfg, today)
	if !pr.todayTotal.Equal(USD(1500)) {
		t.Fatalf("todayTotal = %v, want USD 1500", pr.todayTotal)
	}
	if !pr.endTotal.Equal(USD(2000)) {
		t.Fatalf("endTotal = %v, want USD 2000", pr.endTotal)
	}
	if got := pr.totalAt(today.Add(10)); !got.Equal(USD(1750)) {
		t.Errorf("totalAt(midpoint) = %v, want USD 1750", got)
	}
	// the end date is exact, never an interpolation artifact
	if got := pr.totalAt(end); !got.Equal(USD(2000)) {
		t.Errorf("totalAt(end) = %v, want exactly USD 2000", got)
	}
}

func TestProjection_FlatWithoutTargets(t *testing.T) {
	// targets defaulting to current prices and no funding: a flat line
	today := NewDate(2025, time.January, 1)
	v := buy("a", vti, NewDate(2024, time.June, 1), 10, 100)
	v.CurrentPrice = USD(150)
	p := NewPortfolio(v)
	cfg := ProjectionConfig{End: today.Add(90)}

	pr := newProjection(p, cfg, today)
	for _, on := range []Date{today.Add(10), today.Add(45), today.Add(90)} {
		if got := pr.totalAt(on); !got.Equal(pr.todayTotal) {
			t.Errorf("totalAt(%v) = %v, want flat %v", on, got, pr.todayTotal)
		}
	}
}

func TestProjection_CurrencyLikeStaysFlat(t *testing.T) {
	today := NewDate(2025, time.January, 1)
	p := NewPortfolio(deposit("a", NewDate(2024, time.June, 1), 500))
	cfg := ProjectionConfig{End: today.Add(365)}

	pr := newProjection(p, cfg, today)
	if !pr.endTotal.Equal(USD(500)) {
		t.Errorf("endTotal = %v, want USD 500: cash does not appreciate", pr.endTotal)
	}
}

func TestProjection_ZeroTodayNeverProjected(t *testing.T) {
	today := NewDate(2025, time.January, 1)
	bought := buy("a", vti, NewDate(2024, time.June, 1), 10, 100)
	bought.CurrentPrice = USD(150)
	sold := sell("b", vti2, NewDate(2024, time.July, 1), 10, 50)
	sold.CurrentPrice = USD(50)
	closed := buy("c", vti2, NewDate(2024, time.June, 1), 10, 50)
	closed.CurrentPrice = USD(50)
	p := NewPortfolio(bought, sold, closed)
	cfg := ProjectionConfig{
		End:          today.Add(100),
		TargetPrices: map[string]Money{"vti2": USD(500)},
	}

	pr := newProjection(p, cfg, today)
	if got := pr.endByAsset["vti2"]; !got.IsZero() {
		t.Errorf("closed position projected to %v, want zero", got)
	}
}

func TestProjection_FundingAllocation(t *testing.T) {
	today := NewDate(2025, time.January, 1)
	end := today.Add(95) // three funded months
	v := buy("a", vti, NewDate(2024, time.June, 1), 10, 100)
	v.CurrentPrice = USD(100)
	p := NewPortfolio(v, deposit("b", NewDate(2024, time.June, 1), 500))
	cfg := ProjectionConfig{
		End:     end,
		Funding: FundingPlan{Enabled: true, Monthly: USD(100)},
	}

	pr := newProjection(p, cfg, today)
	// cash stays at 500; the single growable asset absorbs all 300 of funding
	if got := pr.endByAsset["usd"]; !got.Equal(USD(500)) {
		t.Errorf("cash end = %v, want USD 500", got)
	}
	if got := pr.endByAsset["vti"]; !got.Equal(USD(1300)) {
		t.Errorf("asset end = %v, want USD 1000 + 300 funded", got)
	}
	if !pr.endTotal.Equal(USD(1800)) {
		t.Errorf("endTotal = %v, want USD 1800", pr.endTotal)
	}
}

func TestProjection_AssetClampedAtZero(t *testing.T) {
	today := NewDate(2025, time.January, 1)
	end := today.Add(10)
	v := sell("a", vti, NewDate(2024, time.June, 1), 10, 100)
	v.CurrentPrice = USD(100)
	other := buy("b", btc, NewDate(2024, time.June, 1), 1, 500)
	other.CurrentPrice = USD(500)
	p := NewPortfolio(v, other)
	cfg := ProjectionConfig{End: end}

	pr := newProjection(p, cfg, today)
	if got := pr.assetAt("vti", today.Add(5)); got.IsNegative() {
		t.Errorf("assetAt() = %v, breakdown bands never go negative", got)
	}
	// the total keeps the signed sum
	if got := pr.totalAt(today.Add(5)); !got.Equal(USD(-500)) {
		t.Errorf("totalAt() = %v, want the unclamped USD -500", got)
	}
}

func TestGrowthRatio(t *testing.T) {
	v := buy("a", vti, NewDate(2024, time.June, 1), 10, 100)
	v.CurrentPrice = USD(100)
	p := NewPortfolio(v)
	cfg := ProjectionConfig{TargetPrices: map[string]Money{"vti": USD(150)}}
	if got := growthRatio(p, cfg, "vti"); got != 1.5 {
		t.Errorf("growthRatio() = %v, want 1.5", got)
	}
	// unknown prices fall back to 1
	if got := growthRatio(p, ProjectionConfig{}, "nope"); got != 1 {
		t.Errorf("growthRatio(unknown) = %v, want 1", got)
	}
}
