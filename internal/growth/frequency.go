package growth

import (
	"fmt"
	"strings"
)

// Frequency задает частоту капитализации процентов.
type Frequency uint8

const (
	Annually Frequency = iota + 1
	Semiannually
	Quarterly
	Monthly
	Weekly
	Daily
	Continuously
)

var frequencyNames = [...]string{
	Annually:     "annually",
	Semiannually: "semiannually",
	Quarterly:    "quarterly",
	Monthly:      "monthly",
	Weekly:       "weekly",
	Daily:        "daily",
	Continuously: "continuously",
}

// ParseFrequency разбирает название частоты без учета регистра. Неизвестное значение дает ноль.
func ParseFrequency(s string) (Frequency, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f := Annually; f <= Continuously; f++ {
		if frequencyNames[f] == name {
			return f, true
		}
	}
	return 0, false
}

func (f Frequency) Valid() bool {
	return f >= Annually && f <= Continuously
}

func (f Frequency) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Frequency(%d)", uint8(f))
	}
	return frequencyNames[f]
}

// Options перечисляет допустимые значения для сообщений об ошибке.
func (f Frequency) Options() []string {
	out := make([]string, 0, len(frequencyNames)-1)
	for v := Annually; v <= Continuously; v++ {
		out = append(out, frequencyNames[v])
	}
	return out
}

// PeriodsPerYear возвращает число начислений в год; для непрерывной капитализации ноль.
func (f Frequency) PeriodsPerYear() int {
	switch f {
	case Annually:
		return 1
	case Semiannually:
		return 2
	case Quarterly:
		return 4
	case Monthly:
		return 12
	case Weekly:
		return 52
	case Daily:
		return 365
	default:
		return 0
	}
}

func (f Frequency) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("unknown compounding frequency %d", uint8(f))
	}
	return []byte(f.String()), nil
}

func (f *Frequency) UnmarshalText(text []byte) error {
	parsed, ok := ParseFrequency(string(text))
	if !ok {
		return fmt.Errorf("unknown compounding frequency %q", string(text))
	}
	*f = parsed
	return nil
}
