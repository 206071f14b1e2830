package stockmarket

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON implements the json.Marshaler interface for SecurityType.
func (t SecurityType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *SecurityType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseSecurityType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Side.
func (s Side) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Side) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	parsed, err := ParseSide(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Security.
func (s Security) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", s.symbol)
	w.Append("type", s.kind)
	w.Append("lastDividend", s.lastDividend)
	if s.kind == Preferred {
		w.Append("fixedDividend", s.fixedDividend)
	}
	w.Append("parValue", s.parValue)
	w.Optional("currency", s.parValue.Currency())
	return w.MarshalJSON()
}

// securityLine is a specialized struct for decoding one catalog line.
type securityLine struct {
	Symbol        string          `json:"symbol"`
	Type          SecurityType    `json:"type"`
	LastDividend  decimal.Decimal `json:"lastDividend"`
	FixedDividend decimal.Decimal `json:"fixedDividend"`
	ParValue      decimal.Decimal `json:"parValue"`
	Currency      string          `json:"currency"`
}

func (l securityLine) security() Security {
	cur := l.Currency
	if cur == "" {
		cur = ReferenceCurrency
	}
	if l.Type == Preferred {
		return NewPreferred(l.Symbol, M(l.LastDividend, cur), P(l.FixedDividend), M(l.ParValue, cur))
	}
	return NewCommon(l.Symbol, M(l.LastDividend, cur), M(l.ParValue, cur))
}

// EncodeCatalog writes the catalog as JSONL, one security per line, in
// symbol order.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	enc := json.NewEncoder(w)
	for sec := range c.Securities() {
		if err := enc.Encode(sec); err != nil {
			return fmt.Errorf("could not encode security %q: %w", sec.Symbol(), err)
		}
	}
	return nil
}

// DecodeCatalog decodes a JSONL stream of security definitions into a
// validated catalog.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	var securities []Security
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var line securityLine
		if err := json.Unmarshal(lineBytes, &line); err != nil {
			return nil, fmt.Errorf("could not decode security line %q: %w", string(lineBytes), err)
		}
		securities = append(securities, line.security())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewCatalog(securities...)
}

// MarshalJSON implements the json.Marshaler interface for Trade.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("symbol", t.Symbol)
	w.Append("side", t.Side)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price)
	w.Optional("currency", t.Price.Currency())
	w.Append("time", t.Time.Format(time.RFC3339Nano))
	return w.MarshalJSON()
}

// tradeLine is a specialized struct for decoding one journal line.
type tradeLine struct {
	ID       TradeID         `json:"id"`
	Symbol   string          `json:"symbol"`
	Side     Side            `json:"side"`
	Quantity Quantity        `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Time     string          `json:"time"`
}

// EncodeTrade appends a single trade to a JSONL journal stream.
func EncodeTrade(w io.Writer, t Trade) error {
	return json.NewEncoder(w).Encode(t)
}

// DecodeTrades decodes a JSONL journal stream and replays each trade
// into the given ledger, preserving identifiers and timestamps.
func DecodeTrades(r io.Reader, ledger *Ledger) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var line tradeLine
		if err := json.Unmarshal(lineBytes, &line); err != nil {
			return fmt.Errorf("could not decode trade line %q: %w", string(lineBytes), err)
		}
		cur := line.Currency
		if cur == "" {
			cur = ReferenceCurrency
		}
		when, err := time.Parse(time.RFC3339Nano, line.Time)
		if err != nil {
			return fmt.Errorf("could not parse trade time %q: %w", line.Time, err)
		}
		ledger.restore(Trade{
			ID:       line.ID,
			Symbol:   line.Symbol,
			Side:     line.Side,
			Quantity: line.Quantity,
			Price:    M(line.Price, cur),
			Time:     when,
		})
	}
	return scanner.Err()
}
