package growth

import (
	"errors"
	"math"
	"testing"

	"github.com/goccy/go-json"

	"github.com/JosefinHao/financial-advisor/internal/validation"
)

func mustProject(t *testing.T, in Input) Result {
	t.Helper()

	result, err := NewProjector(validation.New()).Project(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

// TestProjectAnnualCompounding проверяет классический пример без взносов.
func TestProjectAnnualCompounding(t *testing.T) {
	result := mustProject(t, Input{Principal: 10000, AnnualRate: 0.05, Years: 10, Frequency: Annually})

	if result.FinalAmount != 16288.95 {
		t.Fatalf("expected 16288.95, got %v", result.FinalAmount)
	}
	if result.InterestEarned != 6288.95 || result.TotalContributions != 10000 {
		t.Fatalf("unexpected totals: %v/%v", result.InterestEarned, result.TotalContributions)
	}
	if len(result.YearlyProjections) != 11 {
		t.Fatalf("expected 11 points, got %d", len(result.YearlyProjections))
	}

	opening := result.YearlyProjections[0]
	if opening.Year != 0 || opening.Balance != 10000 || opening.Interest != 0 {
		t.Fatalf("unexpected opening point: %+v", opening.ProjectionPoint)
	}
}

// TestProjectContinuousCompounding проверяет непрерывную капитализацию.
func TestProjectContinuousCompounding(t *testing.T) {
	result := mustProject(t, Input{Principal: 10000, AnnualRate: 0.05, Years: 10, Frequency: Continuously})

	if result.FinalAmount != 16487.21 {
		t.Fatalf("expected 16487.21, got %v", result.FinalAmount)
	}
}

// TestProjectWithGrowingContributions проверяет рост взносов и инвариант точек.
func TestProjectWithGrowingContributions(t *testing.T) {
	result := mustProject(t, Input{
		Principal:                1000,
		AnnualRate:               0.06,
		Years:                    5,
		Frequency:                Monthly,
		MonthlyContribution:      100,
		ContributionIncreaseRate: 0.10,
	})

	if math.Abs(result.FinalAmount-9765.27) > 0.01 {
		t.Fatalf("expected 9765.27, got %v", result.FinalAmount)
	}
	if result.TotalContributions != 8326.12 {
		t.Fatalf("expected contributions 8326.12, got %v", result.TotalContributions)
	}
	if result.YearlyProjections[1].MonthlyContribution != 100 || result.YearlyProjections[2].MonthlyContribution != 110 {
		t.Fatalf("unexpected contribution schedule: %v, %v",
			result.YearlyProjections[1].MonthlyContribution, result.YearlyProjections[2].MonthlyContribution)
	}

	for _, p := range result.YearlyProjections {
		if math.Abs(p.Balance-(p.Contributions+p.Interest)) > 0.01 {
			t.Fatalf("balance invariant broken in year %d: %+v", p.Year, p.ProjectionPoint)
		}
	}
}

// TestProjectInflationAdjustment проверяет пересчет в реальные деньги.
func TestProjectInflationAdjustment(t *testing.T) {
	result := mustProject(t, Input{Principal: 10000, AnnualRate: 0.05, Years: 10, Frequency: Annually, InflationRate: 0.03})

	if result.InflationAdjustedBalance != 12120.51 {
		t.Fatalf("expected adjusted balance 12120.51, got %v", result.InflationAdjustedBalance)
	}
	if result.PurchasingPowerLoss != 4168.44 {
		t.Fatalf("expected purchasing power loss 4168.44, got %v", result.PurchasingPowerLoss)
	}
	if result.RealRate != 2 {
		t.Fatalf("expected real rate 2, got %v", result.RealRate)
	}
}

// TestInsights проверяет подсказки для налогов и инфляции.
func TestInsights(t *testing.T) {
	result := mustProject(t, Input{
		Principal:                5000,
		AnnualRate:               0.05,
		Years:                    10,
		Frequency:                Monthly,
		TaxRate:                  0.30,
		InflationRate:            0.04,
		ContributionIncreaseRate: 0.02,
	})

	want := []string{"Negative Real Return", "High Inflation Impact", "High Tax Impact", "Increasing Contributions"}
	if len(result.Insights) != len(want) {
		t.Fatalf("expected %d insights, got %+v", len(want), result.Insights)
	}
	for i, title := range want {
		if result.Insights[i].Title != title {
			t.Fatalf("expected %q at %d, got %q", title, i, result.Insights[i].Title)
		}
	}
}

// TestProjectRejectsUnknownFrequency проверяет закрытый список частот.
func TestProjectRejectsUnknownFrequency(t *testing.T) {
	_, err := NewProjector(nil).Project(Input{Principal: 1000, AnnualRate: 0.05, Years: 5})

	var verr *validation.Error
	if !errors.As(err, &verr) || len(verr.Fields) != 1 {
		t.Fatalf("expected one violation, got %v", err)
	}
	if verr.Fields[0].Field != "compounding_frequency" {
		t.Fatalf("expected compounding_frequency violation, got %+v", verr.Fields[0])
	}
	want := "must be one of: annually, semiannually, quarterly, monthly, weekly, daily, continuously"
	if verr.Fields[0].Constraint != want {
		t.Fatalf("expected %q, got %q", want, verr.Fields[0].Constraint)
	}
}

// TestParseFrequency проверяет разбор и сериализацию частоты.
func TestParseFrequency(t *testing.T) {
	f, ok := ParseFrequency(" Quarterly ")
	if !ok || f != Quarterly || f.PeriodsPerYear() != 4 {
		t.Fatalf("expected quarterly, got %v (ok=%v)", f, ok)
	}
	if _, ok := ParseFrequency("hourly"); ok {
		t.Fatal("expected hourly to be rejected")
	}

	data, err := json.Marshal(Continuously)
	if err != nil || string(data) != `"continuously"` {
		t.Fatalf("unexpected json %s (err=%v)", data, err)
	}
	if _, err := json.Marshal(Frequency(0)); err == nil {
		t.Fatal("expected error for unknown frequency")
	}
}
