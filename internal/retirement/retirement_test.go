package retirement

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/JosefinHao/financial-advisor/internal/tvm"
	"github.com/JosefinHao/financial-advisor/internal/validation"
)

func sampleInput() Input {
	return Input{
		CurrentAge:              35,
		RetirementAge:           65,
		LifeExpectancy:          DefaultLifeExpectancy,
		CurrentSavings:          50000,
		MonthlyContribution:     500,
		ExpectedReturn:          0.07,
		InflationRate:           DefaultInflationRate,
		SocialSecurityIncome:    1500,
		DesiredRetirementIncome: 120000,
	}
}

func mustProject(t *testing.T, in Input) Result {
	t.Helper()

	result, err := NewProjector(validation.New()).Project(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

// TestProjectSummary проверяет основные итоговые суммы прогноза.
func TestProjectSummary(t *testing.T) {
	result := mustProject(t, sampleInput())

	if result.YearsToRetirement != 30 || result.YearsInRetirement != 20 {
		t.Fatalf("expected 30/20 years, got %d/%d", result.YearsToRetirement, result.YearsInRetirement)
	}
	if math.Abs(result.ProjectedSavings-965339.05) > 0.01 {
		t.Fatalf("expected projected savings 965339.05, got %v", result.ProjectedSavings)
	}
	if result.TotalContributions != 230000 {
		t.Fatalf("expected total contributions 230000, got %v", result.TotalContributions)
	}
	if math.Abs(result.SavingsGap-43630.22) > 0.01 {
		t.Fatalf("expected savings gap 43630.22, got %v", result.SavingsGap)
	}
	if result.ExpectedReturn != 7 || result.InflationRate != 2.5 {
		t.Fatalf("expected rates echoed as percentages, got %v and %v", result.ExpectedReturn, result.InflationRate)
	}
}

// TestYearlyProjectionsMatchIterativeGrowth проверяет согласованность годовой проекции с пошаговым наращением.
func TestYearlyProjectionsMatchIterativeGrowth(t *testing.T) {
	in := sampleInput()
	result := mustProject(t, in)

	if len(result.YearlyProjections) != 31 {
		t.Fatalf("expected 31 yearly points, got %d", len(result.YearlyProjections))
	}

	balance := in.CurrentSavings
	monthlyRate := tvm.MonthlyRateFromAnnual(in.ExpectedReturn)
	for year := 1; year <= 30; year++ {
		balance = balance*(1+in.ExpectedReturn) + tvm.FutureValueAnnuity(in.MonthlyContribution, monthlyRate, 12)
	}
	if math.Abs(balance-result.ProjectedSavings) > 0.01 {
		t.Fatalf("expected iterative balance %v to match %v", balance, result.ProjectedSavings)
	}

	for i, point := range result.YearlyProjections {
		if point.Year != i || point.Age != in.CurrentAge+i {
			t.Fatalf("unexpected year/age at %d: %d/%d", i, point.Year, point.Age)
		}
		if math.Abs(point.Balance-(point.Contributions+point.Interest)) > 0.01 {
			t.Fatalf("balance invariant broken in year %d: %+v", point.Year, point.ProjectionPoint)
		}
	}

	last := result.YearlyProjections[30]
	if last.Balance != result.ProjectedSavings {
		t.Fatalf("expected last point %v to equal projected savings %v", last.Balance, result.ProjectedSavings)
	}
}

// TestAdditionalSavingsClosesGap проверяет, что рекомендованный взнос закрывает дефицит.
func TestAdditionalSavingsClosesGap(t *testing.T) {
	in := sampleInput()
	result := mustProject(t, in)

	if len(result.CatchUpScenarios) != 4 {
		t.Fatalf("expected 4 catch-up scenarios, got %d", len(result.CatchUpScenarios))
	}

	savings := result.CatchUpScenarios[0]
	if savings.Kind != CatchUpAdditionalSavings || savings.Scenario != "Increase Monthly Savings" {
		t.Fatalf("unexpected first scenario: %+v", savings)
	}
	if savings.AdditionalMonthlySavings == nil || math.Abs(*savings.AdditionalMonthlySavings-932.71) > 0.01 {
		t.Fatalf("expected additional savings 932.71, got %v", savings.AdditionalMonthlySavings)
	}

	in.MonthlyContribution = *savings.NewTotalMonthlySavings
	again := mustProject(t, in)
	if math.Abs(again.SavingsGap) > 1 {
		t.Fatalf("expected gap to close within 1.0, got %v", again.SavingsGap)
	}
}

// TestCatchUpScenarioOrder проверяет порядок и реализуемость сценариев.
func TestCatchUpScenarioOrder(t *testing.T) {
	result := mustProject(t, sampleInput())

	want := []CatchUpKind{CatchUpAdditionalSavings, CatchUpHigherReturn, CatchUpWorkLonger, CatchUpAdjustGoal}
	for i, kind := range want {
		if result.CatchUpScenarios[i].Kind != kind {
			t.Fatalf("expected %s at position %d, got %s", kind, i, result.CatchUpScenarios[i].Kind)
		}
	}

	higher := result.CatchUpScenarios[1]
	if !higher.Feasible || higher.Scenario != "Increase Investment Returns" {
		t.Fatalf("expected reachable higher return scenario, got %+v", higher)
	}
	if math.Abs(*higher.RequiredReturnRate-10.33) > 0.01 {
		t.Fatalf("expected required return 10.33, got %v", *higher.RequiredReturnRate)
	}

	longer := result.CatchUpScenarios[2]
	if longer.Feasible || *longer.AdditionalYears != 11.2 {
		t.Fatalf("expected impractical work longer scenario with 11.2 years, got %+v", longer)
	}

	goal := result.CatchUpScenarios[3]
	if *goal.CurrentGoal != 120000 || *goal.AchievableIncome >= 120000 {
		t.Fatalf("unexpected adjust goal scenario: %+v", goal)
	}
}

// TestSignificantGapScenarios проверяет нереализуемые сценарии при большом дефиците.
func TestSignificantGapScenarios(t *testing.T) {
	in := sampleInput()
	in.DesiredRetirementIncome = 600000
	result := mustProject(t, in)

	savings := result.CatchUpScenarios[0]
	if savings.Scenario != "Significant Gap" || savings.Feasible {
		t.Fatalf("expected infeasible significant gap, got %+v", savings)
	}
	if math.Abs(*savings.AdditionalMonthlySavings-11193.92) > 0.01 {
		t.Fatalf("expected additional savings 11193.92, got %v", *savings.AdditionalMonthlySavings)
	}

	higher := result.CatchUpScenarios[1]
	if higher.Scenario != "Investment Returns" || higher.Feasible {
		t.Fatalf("expected infeasible investment returns scenario, got %+v", higher)
	}
	if math.Abs(*higher.RequiredReturnRate-18.57) > 0.01 {
		t.Fatalf("expected required return 18.57, got %v", *higher.RequiredReturnRate)
	}
	if !strings.Contains(higher.Description, "significantly higher") {
		t.Fatalf("unexpected description %q", higher.Description)
	}
}

// TestAlmostThereScenario проверяет сценарий для дефицита в несколько долларов.
func TestAlmostThereScenario(t *testing.T) {
	in := sampleInput()
	in.DesiredRetirementIncome = 76374.78
	result := mustProject(t, in)

	if math.Abs(result.SavingsGap-5) > 0.01 {
		t.Fatalf("expected gap of 5, got %v", result.SavingsGap)
	}

	savings := result.CatchUpScenarios[0]
	if savings.Scenario != "Almost There!" || !savings.Feasible {
		t.Fatalf("expected feasible almost there scenario, got %+v", savings)
	}
	if *savings.AdditionalMonthlySavings != 0.11 {
		t.Fatalf("expected additional savings 0.11, got %v", *savings.AdditionalMonthlySavings)
	}
	if !strings.Contains(savings.Description, "$0.11") {
		t.Fatalf("expected amount in cents in %q", savings.Description)
	}
}

// TestHigherReturnCutoff проверяет границу в пять процентных пунктов над текущей доходностью.
func TestHigherReturnCutoff(t *testing.T) {
	cases := []struct {
		desired  float64
		required float64
		feasible bool
	}{
		{155000, 11.87, true},
		{160000, 12.05, false},
	}

	for _, tc := range cases {
		in := sampleInput()
		in.DesiredRetirementIncome = tc.desired
		higher := mustProject(t, in).CatchUpScenarios[1]

		if math.Abs(*higher.RequiredReturnRate-tc.required) > 0.01 {
			t.Fatalf("desired %v: expected required return %v, got %v", tc.desired, tc.required, *higher.RequiredReturnRate)
		}
		if higher.Feasible != tc.feasible {
			t.Fatalf("desired %v: expected feasible=%v, got %+v", tc.desired, tc.feasible, higher)
		}
	}
}

// TestAdditionalSavingsResidualOnLongHorizon проверяет остаток дефицита после округления взноса до центов.
func TestAdditionalSavingsResidualOnLongHorizon(t *testing.T) {
	in := Input{
		CurrentAge:              18,
		RetirementAge:           72,
		LifeExpectancy:          DefaultLifeExpectancy,
		CurrentSavings:          1000,
		MonthlyContribution:     100,
		ExpectedReturn:          0.074,
		InflationRate:           DefaultInflationRate,
		DesiredRetirementIncome: 200000,
	}
	savings := mustProject(t, in).CatchUpScenarios[0]

	in.MonthlyContribution = *savings.NewTotalMonthlySavings
	residual := math.Abs(mustProject(t, in).SavingsGap)

	factor := tvm.FutureValueAnnuity(1, tvm.MonthlyRateFromAnnual(in.ExpectedReturn), 54*12)
	bound := 0.005 * factor * GapWithdrawalRate
	if residual > bound+0.01 {
		t.Fatalf("expected residual within %v, got %v", bound, residual)
	}
}

// TestWithdrawalScenarios проверяет бессрочные и конечные сроки изъятия.
func TestWithdrawalScenarios(t *testing.T) {
	result := mustProject(t, sampleInput())

	if len(result.WithdrawalScenarios) != 3 {
		t.Fatalf("expected 3 withdrawal scenarios, got %d", len(result.WithdrawalScenarios))
	}
	if !result.WithdrawalScenarios[0].YearsSustainable.Indefinite || !result.WithdrawalScenarios[1].YearsSustainable.Indefinite {
		t.Fatal("expected 3% and 4% withdrawals to be indefinite")
	}

	aggressive := result.WithdrawalScenarios[2]
	if aggressive.YearsSustainable.Indefinite || aggressive.YearsSustainable.Years != 52.3 {
		t.Fatalf("expected 52.3 years for 5%% rule, got %+v", aggressive.YearsSustainable)
	}
	if aggressive.WithdrawalRate != 5 {
		t.Fatalf("expected withdrawal rate 5, got %v", aggressive.WithdrawalRate)
	}
}

// TestSustainableYearsJSON проверяет формат срока в JSON.
func TestSustainableYearsJSON(t *testing.T) {
	data, err := json.Marshal([]SustainableYears{{Indefinite: true}, {Years: 33.3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `["Indefinite",33.3]` {
		t.Fatalf("unexpected json: %s", data)
	}
}

// TestZeroReturnDegenerateCase проверяет расчет без доходности.
func TestZeroReturnDegenerateCase(t *testing.T) {
	in := sampleInput()
	in.CurrentAge = 30
	in.RetirementAge = 60
	in.CurrentSavings = 10000
	in.MonthlyContribution = 100
	in.ExpectedReturn = 0
	in.InflationRate = 0
	in.SocialSecurityIncome = 0
	in.DesiredRetirementIncome = 50000

	result := mustProject(t, in)

	if result.ProjectedSavings != 46000 || result.InterestEarned != 0 {
		t.Fatalf("expected 46000 without interest, got %v/%v", result.ProjectedSavings, result.InterestEarned)
	}

	wantYears := []float64{33.3, 25, 20}
	for i, want := range wantYears {
		got := result.WithdrawalScenarios[i].YearsSustainable
		if got.Indefinite || got.Years != want {
			t.Fatalf("expected %v sustainable years for scenario %d, got %+v", want, i, got)
		}
	}

	longer := result.CatchUpScenarios[2]
	if longer.Feasible || longer.AdditionalYears != nil {
		t.Fatalf("expected infeasible work longer scenario, got %+v", longer)
	}
}

// TestNoIncomeGoal проверяет расчет без желаемого дохода.
func TestNoIncomeGoal(t *testing.T) {
	in := sampleInput()
	in.DesiredRetirementIncome = 0

	result := mustProject(t, in)

	if result.SavingsGap >= 0 {
		t.Fatalf("expected negative gap, got %v", result.SavingsGap)
	}
	if len(result.CatchUpScenarios) != 0 {
		t.Fatalf("expected no catch-up scenarios, got %d", len(result.CatchUpScenarios))
	}
	if result.ReadinessScore != 100 || result.ReadinessLevel != LevelExcellent {
		t.Fatalf("expected full readiness, got %d %s", result.ReadinessScore, result.ReadinessLevel)
	}
}

// TestReadiness проверяет балл и уровень готовности.
func TestReadiness(t *testing.T) {
	result := mustProject(t, sampleInput())

	if result.ReadinessScore != 63 || result.ReadinessLevel != LevelGood {
		t.Fatalf("expected 63 Good, got %d %s", result.ReadinessScore, result.ReadinessLevel)
	}
	if result.ReadinessDescription != "You're on track but could improve" {
		t.Fatalf("unexpected description %q", result.ReadinessDescription)
	}

	cases := map[int]Level{100: LevelExcellent, 80: LevelExcellent, 79: LevelGood, 40: LevelFair, 39: LevelNeedsAttention, 0: LevelNeedsAttention}
	for score, want := range cases {
		if got := levelFor(score); got != want {
			t.Fatalf("expected %s for %d, got %s", want, score, got)
		}
	}
}

// TestRecommendations проверяет выбор рекомендаций для типового клиента.
func TestRecommendations(t *testing.T) {
	result := mustProject(t, sampleInput())

	want := []string{"Good Progress", "Income Gap", "Pension Income"}
	if len(result.Recommendations) != len(want) {
		t.Fatalf("expected %d recommendations, got %+v", len(want), result.Recommendations)
	}
	for i, title := range want {
		if result.Recommendations[i].Title != title {
			t.Fatalf("expected %q at %d, got %q", title, i, result.Recommendations[i].Title)
		}
	}
}

// TestProjectRejectsRetirementBeforeCurrentAge проверяет перекрестную проверку возрастов.
func TestProjectRejectsRetirementBeforeCurrentAge(t *testing.T) {
	in := sampleInput()
	in.CurrentAge = 70
	in.RetirementAge = 65

	_, err := NewProjector(nil).Project(in)

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	found := false
	for _, f := range verr.Fields {
		if f.Field == "retirement_age" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected retirement_age violation, got %+v", verr.Fields)
	}
}

// TestProjectRejectsOutOfRangeReturn проверяет диапазон доходности.
func TestProjectRejectsOutOfRangeReturn(t *testing.T) {
	in := sampleInput()
	in.ExpectedReturn = 1.5
	in.MonthlyContribution = math.NaN()

	_, err := NewProjector(nil).Project(in)

	var verr *validation.Error
	if !errors.As(err, &verr) || len(verr.Fields) != 2 {
		t.Fatalf("expected two field violations, got %v", err)
	}
}
