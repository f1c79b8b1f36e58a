package models

import "fmt"

type Severity uint8

const (
	SeverityInfo Severity = iota + 1
	SeverityWarning
	SeveritySuccess
)

// String возвращает текстовое представление уровня.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeveritySuccess:
		return "success"
	default:
		return fmt.Sprintf("Severity(%d)", uint8(s))
	}
}

// Valid сообщает, входит ли уровень в закрытый список.
func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeveritySuccess:
		return true
	default:
		return false
	}
}

// MarshalText сериализует уровень; неизвестные значения считаются ошибкой.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown severity %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText разбирает уровень из текста.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "info":
		*s = SeverityInfo
	case "warning":
		*s = SeverityWarning
	case "success":
		*s = SeveritySuccess
	default:
		return fmt.Errorf("unknown severity %q", string(text))
	}
	return nil
}

type Insight struct {
	Severity Severity `json:"type"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
}

// ProjectionPoint описывает баланс за период, Balance = Contributions + Interest.
type ProjectionPoint struct {
	Year          int     `json:"year"`
	Balance       float64 `json:"balance"`
	Contributions float64 `json:"contributions"`
	Interest      float64 `json:"interest"`
}
