package lifeplan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File names of a plan folder.
const (
	PlanFilename         = "plan.json"
	TransactionsFilename = "transactions.jsonl"
)

// LoadPlan loads the plan document and the transaction records of a plan folder.
//
// A missing transactions file is an empty plan, not an error.
func LoadPlan(dir string) (*Plan, *RecordFeed, error) {
	planPath := filepath.Join(dir, PlanFilename)
	f, err := os.Open(planPath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open plan file %q: %w", planPath, err)
	}
	defer f.Close()

	plan, err := DecodePlan(f)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load %q: %w", planPath, err)
	}

	records, err := LoadRecords(filepath.Join(dir, TransactionsFilename))
	if err != nil {
		return nil, nil, err
	}
	return plan, NewRecordFeed(records...), nil
}

// LoadRecords reads a JSONL transactions file. A missing file has no record.
func LoadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open transactions file %q: %w", path, err)
	}
	defer f.Close()

	records, err := DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode transactions file %q: %w", path, err)
	}
	return records, nil
}

// AppendRecord appends a record to the transactions file of a plan folder,
// creating it if needed.
func AppendRecord(dir string, rec Record) error {
	path := filepath.Join(dir, TransactionsFilename)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open transactions file %q: %w", path, err)
	}
	if err := EncodeRecord(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SavePlan writes the plan document of a plan folder.
func SavePlan(dir string, p *Plan) error {
	path := filepath.Join(dir, PlanFilename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create plan file %q: %w", path, err)
	}
	if err := EncodePlan(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveRecords rewrites the transactions file of a plan folder.
func SaveRecords(dir string, records []Record) error {
	path := filepath.Join(dir, TransactionsFilename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create transactions file %q: %w", path, err)
	}
	if err := EncodeRecords(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
