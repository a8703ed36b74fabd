package lifeplan

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DecodeRecords reads transaction records from a stream of JSONL data.
//
// Empty lines are skipped. Lines that are not valid JSON are reported
// together, with their line number, and no record is returned.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var records []Record
	var errs error
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := scanner.Bytes()
		if len(strings.TrimSpace(string(txt))) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(txt, &rec); err != nil {
			errs = errors.Join(errs, fmt.Errorf("line %d: not a transaction record: %w", line, err))
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read records: %w", err)
	}
	if errs != nil {
		return nil, errs
	}
	return records, nil
}

// EncodeRecord appends a single record as a JSON line.
func EncodeRecord(w io.Writer, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("cannot encode record %q: %w", rec.ID, err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write record %q: %w", rec.ID, err)
	}
	return nil
}

// EncodeRecords writes all records as JSON lines.
func EncodeRecords(w io.Writer, records []Record) error {
	for _, rec := range records {
		if err := EncodeRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}

// DecodePlan reads a plan document. Amounts are set in the plan currency.
func DecodePlan(r io.Reader) (*Plan, error) {
	var p Plan
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("cannot decode plan: %w", err)
	}
	p.SetCurrency(p.Settings.Currency)
	return &p, nil
}

// EncodePlan writes a plan document, indented.
func EncodePlan(w io.Writer, p *Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("cannot encode plan: %w", err)
	}
	return nil
}
