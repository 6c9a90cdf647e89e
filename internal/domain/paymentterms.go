package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// PaymentTerms is either free text or a structured advance/interim/balance
// split. Exactly one form is populated; the zero value means "no terms".
// Both forms serialize losslessly: plain terms as a JSON string, structured
// terms as an object.
type PaymentTerms struct {
	Plain      string           `json:"-"`
	Structured *StructuredTerms `json:"-"`
}

// StructuredTerms splits a payment into advance, zero or more interim
// payments and a balance. Amounts are kept as entered, like every other
// amount field.
type StructuredTerms struct {
	Advance  string   `json:"advance"`
	Interims []string `json:"interims"`
	Balance  string   `json:"balance"`
}

// PlainTerms builds free-text payment terms.
func PlainTerms(text string) PaymentTerms {
	return PaymentTerms{Plain: text}
}

// NewStructuredTerms builds structured payment terms.
func NewStructuredTerms(advance string, interims []string, balance string) PaymentTerms {
	return PaymentTerms{Structured: &StructuredTerms{
		Advance:  advance,
		Interims: interims,
		Balance:  balance,
	}}
}

// IsZero reports whether no terms are set.
func (pt PaymentTerms) IsZero() bool {
	return pt.Plain == "" && pt.Structured == nil
}

// Summary renders the terms for display. Structured terms render as
// "선금: X원, 중도금1: Y원, ..., 잔금: Z원"; plain terms render as-is.
func (pt PaymentTerms) Summary() string {
	if pt.Structured == nil {
		return pt.Plain
	}
	parts := make([]string, 0, len(pt.Structured.Interims)+2)
	parts = append(parts, fmt.Sprintf("선금: %s원", pt.Structured.Advance))
	for i, interim := range pt.Structured.Interims {
		parts = append(parts, fmt.Sprintf("중도금%d: %s원", i+1, interim))
	}
	parts = append(parts, fmt.Sprintf("잔금: %s원", pt.Structured.Balance))
	return strings.Join(parts, ", ")
}

// MarshalJSON emits a string for plain terms and an object for
// structured terms.
func (pt PaymentTerms) MarshalJSON() ([]byte, error) {
	if pt.Structured != nil {
		return json.Marshal(pt.Structured)
	}
	return json.Marshal(pt.Plain)
}

// UnmarshalJSON accepts either form.
func (pt *PaymentTerms) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == `""` {
		*pt = PaymentTerms{}
		return nil
	}
	if strings.HasPrefix(trimmed, "{") {
		var st StructuredTerms
		if err := json.Unmarshal(data, &st); err != nil {
			return fmt.Errorf("invalid structured payment terms: %w", err)
		}
		*pt = PaymentTerms{Structured: &st}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid payment terms: %w", err)
	}
	*pt = PaymentTerms{Plain: s}
	return nil
}

// Value stores the JSON encoding, or NULL when no terms are set.
func (pt PaymentTerms) Value() (driver.Value, error) {
	if pt.IsZero() {
		return nil, nil
	}
	b, err := json.Marshal(pt)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan restores terms from their stored JSON encoding. Legacy rows that
// hold bare text scan as plain terms.
func (pt *PaymentTerms) Scan(value interface{}) error {
	if value == nil {
		*pt = PaymentTerms{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into PaymentTerms", value)
	}
	if len(raw) == 0 {
		*pt = PaymentTerms{}
		return nil
	}
	if err := pt.UnmarshalJSON(raw); err != nil {
		// Bare text from before terms were JSON-encoded.
		*pt = PaymentTerms{Plain: string(raw)}
	}
	return nil
}
