package tvm

import "math"

const (
	maxSolveRate    = 10.0
	solveIterations = 200
)

// MonthlyRateFromAnnual возвращает эквивалентную месячную ставку для годовой.
func MonthlyRateFromAnnual(annualRate float64) float64 {
	return math.Pow(1+annualRate, 1.0/12) - 1
}

// FutureValueLumpSum возвращает будущую стоимость разового вложения.
func FutureValueLumpSum(principal, annualRate float64, years float64) float64 {
	return principal * math.Pow(1+annualRate, years)
}

// FutureValueAnnuity возвращает будущую стоимость обычного аннуитета.
func FutureValueAnnuity(monthlyPayment, monthlyRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return monthlyPayment * float64(months)
	}

	return monthlyPayment * (math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate
}

// AmortizedPayment возвращает аннуитетный платеж по кредиту.
func AmortizedPayment(principal, monthlyRate float64, totalPayments int) float64 {
	if totalPayments <= 0 {
		return principal
	}
	if monthlyRate == 0 {
		return principal / float64(totalPayments)
	}

	growth := math.Pow(1+monthlyRate, float64(totalPayments))
	return principal * monthlyRate * growth / (growth - 1)
}

// SolveRequiredPayment возвращает ежемесячный взнос, который накопит target за months месяцев.
func SolveRequiredPayment(target, monthlyRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return target / float64(months)
	}

	return target * monthlyRate / (math.Pow(1+monthlyRate, float64(months)) - 1)
}

// SavingsValue возвращает накопления через years лет: рост капитала плюс ежемесячные взносы.
func SavingsValue(presentValue, monthlyPayment, annualRate float64, years int) float64 {
	return FutureValueLumpSum(presentValue, annualRate, float64(years)) +
		FutureValueAnnuity(monthlyPayment, MonthlyRateFromAnnual(annualRate), years*12)
}

// SolveAnnualRate подбирает годовую доходность, при которой SavingsValue достигает target.
// Второе значение false, если цель недостижима при доходности до 1000%.
func SolveAnnualRate(presentValue, monthlyPayment float64, years int, target float64) (float64, bool) {
	if years <= 0 {
		return 0, false
	}
	if SavingsValue(presentValue, monthlyPayment, 0, years) >= target {
		return 0, true
	}
	if SavingsValue(presentValue, monthlyPayment, maxSolveRate, years) < target {
		return 0, false
	}

	lo, hi := 0.0, maxSolveRate
	for i := 0; i < solveIterations; i++ {
		mid := (lo + hi) / 2
		if SavingsValue(presentValue, monthlyPayment, mid, years) < target {
			lo = mid
		} else {
			hi = mid
		}
	}

	return hi, true
}

// YearsToGrow возвращает число лет, за которое presentValue вырастет до target под annualRate.
func YearsToGrow(presentValue, annualRate, target float64) (float64, bool) {
	if presentValue <= 0 || annualRate <= 0 {
		return 0, false
	}
	if target <= presentValue {
		return 0, true
	}

	return math.Log(target/presentValue) / math.Log(1+annualRate), true
}
