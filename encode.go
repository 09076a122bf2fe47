package pnl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// RecordType tags each JSONL line with the dataset it belongs to.
type RecordType string

const (
	RecTrade    RecordType = "trade"
	RecPosition RecordType = "position"
	RecMark     RecordType = "mark"
)

// tradeRec is a specialized struct for decoding trade lines.
type tradeRec struct {
	Buy      decimal.Decimal `json:"buy"`
	Sell     decimal.Decimal `json:"sell"`
	Quantity Quantity        `json:"quantity"`
	Cost     decimal.Decimal `json:"cost"`
	Currency string          `json:"currency"`
}

func (r tradeRec) Trade() Trade {
	return Trade{
		BuyPrice:  M(r.Buy, r.Currency),
		SellPrice: M(r.Sell, r.Currency),
		Quantity:  r.Quantity,
		Cost:      M(r.Cost, r.Currency),
	}
}

// positionRec is a specialized struct for decoding position lines.
type positionRec struct {
	Quantity    Quantity        `json:"quantity"`
	PriceChange decimal.Decimal `json:"priceChange"`
	Notional    decimal.Decimal `json:"notional"`
	Currency    string          `json:"currency"`
}

func (r positionRec) Position() Position {
	return Position{
		Quantity:    r.Quantity,
		PriceChange: M(r.PriceChange, r.Currency),
		Notional:    M(r.Notional, r.Currency),
	}
}

// markRec is a specialized struct for decoding mark lines.
type markRec struct {
	Current       decimal.Decimal `json:"current"`
	Previous      decimal.Decimal `json:"previous"`
	Model         decimal.Decimal `json:"model"`
	PreviousModel decimal.Decimal `json:"previousModel"`
	Currency      string          `json:"currency"`
}

func (r markRec) Row() MarkRow {
	return MarkRow{
		Current:       M(r.Current, r.Currency),
		Previous:      M(r.Previous, r.Currency),
		Model:         M(r.Model, r.Currency),
		PreviousModel: M(r.PreviousModel, r.Currency),
	}
}

// required lists the fields each record type must carry. "currency" is
// optional everywhere.
var required = map[RecordType][]string{
	RecTrade:    {"buy", "sell", "quantity", "cost"},
	RecPosition: {"quantity", "priceChange", "notional"},
	RecMark:     {"current", "previous", "model", "previousModel"},
}

func checkFields(rec RecordType, line []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		return err
	}
	for _, name := range required[rec] {
		if _, ok := fields[name]; !ok {
			return fmt.Errorf("%s record is missing field %q", rec, name)
		}
	}
	return nil
}

// DecodeDatasets decodes a mixed stream of JSONL dataset records into
// the three collections the engine is built from. Each line is a JSON
// object tagged with a "record" field; rows keep their stream order
// within their own collection, so position and mark lines written in
// step stay row-aligned.
func DecodeDatasets(r io.Reader) (*TradeLedger, *PositionBook, *MarketData, error) {
	trades := NewTradeLedger()
	book := NewPositionBook()
	market := NewMarketData()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record RecordType `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, nil, nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}

		if err := checkFields(identifier.Record, line); err != nil {
			return nil, nil, nil, err
		}

		switch identifier.Record {
		case RecTrade:
			var rec tradeRec
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, nil, nil, err
			}
			trades.Append(rec.Trade())
		case RecPosition:
			var rec positionRec
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, nil, nil, err
			}
			book.Append(rec.Position())
		case RecMark:
			var rec markRec
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, nil, nil, err
			}
			market.Append(rec.Row())
		default:
			return nil, nil, nil, fmt.Errorf("unknown record type %q in line %q", identifier.Record, string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, err
	}
	return trades, book, market, nil
}

// EncodeTrade writes one trade as a canonical JSONL line.
func EncodeTrade(w io.Writer, t Trade) error {
	var jw jsonObjectWriter
	jw.Append("record", RecTrade)
	jw.Append("buy", t.BuyPrice.value)
	jw.Append("sell", t.SellPrice.value)
	jw.Append("quantity", t.Quantity)
	jw.Append("cost", t.Cost.value)
	jw.Optional("currency", t.BuyPrice.cur)
	return writeLine(w, &jw)
}

// EncodePosition writes one position as a canonical JSONL line.
func EncodePosition(w io.Writer, p Position) error {
	var jw jsonObjectWriter
	jw.Append("record", RecPosition)
	jw.Append("quantity", p.Quantity)
	jw.Append("priceChange", p.PriceChange.value)
	jw.Append("notional", p.Notional.value)
	jw.Optional("currency", p.Notional.cur)
	return writeLine(w, &jw)
}

// EncodeMark writes one mark row as a canonical JSONL line.
func EncodeMark(w io.Writer, r MarkRow) error {
	var jw jsonObjectWriter
	jw.Append("record", RecMark)
	jw.Append("current", r.Current.value)
	jw.Append("previous", r.Previous.value)
	jw.Append("model", r.Model.value)
	jw.Append("previousModel", r.PreviousModel.value)
	jw.Optional("currency", r.Current.cur)
	return writeLine(w, &jw)
}

func writeLine(w io.Writer, jw *jsonObjectWriter) error {
	b, err := jw.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
