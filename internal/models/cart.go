package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexPrice accepts a price sent either as a JSON number or as a
// currency-formatted string ("$12.50"). The raw JSON value is kept so the
// line items can be re-serialized into session metadata exactly as the
// client sent them.
type FlexPrice struct {
	raw json.RawMessage
}

func (p *FlexPrice) UnmarshalJSON(data []byte) error {
	p.raw = append(p.raw[:0], bytes.TrimSpace(data)...)
	return nil
}

// MarshalJSON re-emits the original value untouched.
func (p FlexPrice) MarshalJSON() ([]byte, error) {
	if len(p.raw) == 0 {
		return []byte("null"), nil
	}
	return p.raw, nil
}

// IsSet reports whether the field was present and non-null in the input.
func (p FlexPrice) IsSet() bool {
	return len(p.raw) > 0 && !bytes.Equal(p.raw, []byte("null"))
}

// Amount normalizes the price to major currency units. Numbers are used
// as-is; strings are stripped of everything but digits and dots before
// parsing. Unparseable values count as zero.
func (p FlexPrice) Amount() float64 {
	if !p.IsSet() {
		return 0
	}

	var n float64
	if err := json.Unmarshal(p.raw, &n); err == nil {
		return n
	}

	var s string
	if err := json.Unmarshal(p.raw, &s); err == nil {
		return parsePriceString(s)
	}

	return 0
}

func parsePriceString(s string) float64 {
	var cleaned strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			cleaned.WriteRune(r)
		}
	}

	// Parse the longest valid numeric prefix, so "1.2.3" yields 1.2.
	text := cleaned.String()
	end := 0
	seenDot := false
	for end < len(text) {
		c := text[end]
		if c == '.' {
			if seenDot {
				break
			}
			seenDot = true
		}
		end++
	}

	value, err := strconv.ParseFloat(strings.TrimSuffix(text[:end], "."), 64)
	if err != nil {
		return 0
	}
	return value
}

// CartLineItem is the client's description of one cart entry. It is never
// persisted directly: the checkout endpoint serializes the raw items into
// session metadata, and the webhook turns them into OrderLineItems.
type CartLineItem struct {
	ProductID    string    `json:"productId"`
	ProductSlug  string    `json:"productSlug"`
	Title        string    `json:"title"`
	Image        string    `json:"image,omitempty"`
	Price        FlexPrice `json:"price"`
	NumericPrice FlexPrice `json:"numericPrice,omitempty"`
	Quantity     int64     `json:"quantity,omitempty"`
}

// PriceAmount prefers the pre-normalized numericPrice when the client sent
// one, falling back to the display price.
func (i CartLineItem) PriceAmount() float64 {
	if i.NumericPrice.IsSet() {
		if n := i.NumericPrice.Amount(); n != 0 {
			return n
		}
	}
	return i.Price.Amount()
}

// Qty defaults missing or invalid quantities to 1.
func (i CartLineItem) Qty() int64 {
	if i.Quantity <= 0 {
		return 1
	}
	return i.Quantity
}
