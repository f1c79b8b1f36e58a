package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/JosefinHao/financial-advisor/internal/money"
	"github.com/JosefinHao/financial-advisor/internal/mortgage"
)

const scheduleFilename = "mortgage-schedule.csv"

// MortgageRequest принимает ставки в процентах годовых.
type MortgageRequest struct {
	LoanAmount    *float64 `json:"loan_amount" validate:"required,gt=0,lte=1000000000000"`
	InterestRate  *float64 `json:"interest_rate" validate:"required,gte=0,lte=20"`
	LoanTermYears *int     `json:"loan_term_years" validate:"omitempty,gte=1,lte=50"`
	DownPayment   *float64 `json:"down_payment" validate:"omitempty,gte=0,lte=1000000000000"`
	PropertyTax   *float64 `json:"property_tax" validate:"omitempty,gte=0,lte=1000000000000"`
	Insurance     *float64 `json:"insurance" validate:"omitempty,gte=0,lte=1000000000000"`
	PMIRate       *float64 `json:"pmi_rate" validate:"omitempty,gte=0,lte=100"`
	AnnualIncome  *float64 `json:"annual_income" validate:"omitempty,gt=0,lte=1000000000000"`
}

// toInput подставляет defaultIncome, если доход не передан, и помечает его как предполагаемый.
func (r MortgageRequest) toInput(defaultIncome float64) mortgage.Input {
	in := mortgage.Input{
		LoanAmount:        amount(r.LoanAmount),
		InterestRate:      percent(r.InterestRate),
		LoanTermYears:     intOr(r.LoanTermYears, mortgage.DefaultLoanTermYears),
		DownPayment:       amount(r.DownPayment),
		PropertyTaxAnnual: amount(r.PropertyTax),
		InsuranceAnnual:   amount(r.Insurance),
		PMIRate:           percent(r.PMIRate),
		AnnualIncome:      amount(r.AnnualIncome),
	}

	if r.AnnualIncome == nil {
		in.AnnualIncome = defaultIncome
		in.AnnualIncomeAssumed = true
	}
	return in
}

// CalculateMortgage рассчитывает платежи и сокращенный график.
func (h *CalculatorHandler) CalculateMortgage(c echo.Context) error {
	var req MortgageRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	result, err := h.Mortgage.Amortize(req.toInput(h.DefaultAnnualIncome))
	if err != nil {
		return respondError(c, h.Logger, err)
	}

	return c.JSON(http.StatusOK, result)
}

// ExportMortgageSchedule выгружает полный помесячный график в CSV.
func (h *CalculatorHandler) ExportMortgageSchedule(c echo.Context) error {
	var req MortgageRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	entries, err := h.Mortgage.Ledger(req.toInput(h.DefaultAnnualIncome))
	if err != nil {
		return respondError(c, h.Logger, err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writeScheduleCSV(writer, entries); err != nil {
		return respondError(c, h.Logger, err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return respondError(c, h.Logger, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+scheduleFilename+"\"")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func writeScheduleCSV(writer *csv.Writer, entries []mortgage.Entry) error {
	header := []string{
		"payment_number",
		"payment",
		"principal",
		"interest",
		"balance",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, e := range entries {
		record := []string{
			strconv.Itoa(e.Number),
			formatCents(e.Payment),
			formatCents(e.Principal),
			formatCents(e.Interest),
			formatCents(e.Balance),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func formatCents(value float64) string {
	return strconv.FormatFloat(money.Round(value), 'f', 2, 64)
}
