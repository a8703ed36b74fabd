package lifeplan

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrMalformedRecord is wrapped by every error returned when a Record cannot
// be turned into a Transaction.
var ErrMalformedRecord = errors.New("malformed record")

// TxType is the persisted transaction type.
type TxType string

// Transaction types.
const (
	TypeExpense    TxType = "expense"
	TypeIncome     TxType = "income"
	TypeTransfer   TxType = "transfer"
	TypeInvestment TxType = "investment"
)

// ParseTxType parses a transaction type name.
func ParseTxType(s string) (TxType, error) {
	switch t := TxType(s); t {
	case TypeExpense, TypeIncome, TypeTransfer, TypeInvestment:
		return t, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Subtype is the persisted investment subtype.
type Subtype string

// Investment subtypes.
const (
	SubtypeBuy      Subtype = "buy"
	SubtypeSell     Subtype = "sell"
	SubtypeDividend Subtype = "dividend"
)

// Kind is the discriminant of the Transaction variants: one value per valid
// (type, subtype) pair.
type Kind int

const (
	KindExpense Kind = iota
	KindIncome
	KindTransfer
	KindBuy
	KindSell
	KindDividend
)

// Type returns the persisted type of the kind.
func (k Kind) Type() TxType {
	switch k {
	case KindExpense:
		return TypeExpense
	case KindIncome:
		return TypeIncome
	case KindTransfer:
		return TypeTransfer
	default:
		return TypeInvestment
	}
}

// Subtype returns the persisted subtype of the kind, empty for non investments.
func (k Kind) Subtype() Subtype {
	switch k {
	case KindBuy:
		return SubtypeBuy
	case KindSell:
		return SubtypeSell
	case KindDividend:
		return SubtypeDividend
	default:
		return ""
	}
}

func (k Kind) String() string {
	if s := k.Subtype(); s != "" {
		return string(s)
	}
	return string(k.Type())
}

// Transaction is a recurring money movement of the plan.
//
// The set of implementations is closed: Expense, Income, Transfer, Buy, Sell
// and Dividend. Use a type switch to handle each variant.
type Transaction interface {
	What() Kind          // What returns the variant discriminant.
	Header() Base        // Header returns the fields common to all variants.
	YearlyAmount() Money // YearlyAmount returns |amount| * frequency.
	Record() Record      // Record returns the persisted form.
	isTransaction()
}

// Base holds the fields shared by every transaction variant.
type Base struct {
	ID         string
	Year       int
	Month      int // 1-12, 0 when unknown.
	Amount     Money
	Frequency  int // occurrences per year, at least 1.
	CategoryID string
	EventID    string
}

func (b Base) Header() Base   { return b }
func (b Base) isTransaction() {}

// YearlyAmount returns the non-negative amount of all occurrences in a year.
func (b Base) YearlyAmount() Money { return b.Amount.Abs().Times(b.Frequency) }

// record returns the common part of the persisted form.
func (b Base) record(k Kind) Record {
	return Record{
		ID:         b.ID,
		Type:       k.Type(),
		Subtype:    k.Subtype(),
		Amount:     b.Amount.Decimal(),
		Frequency:  b.Frequency,
		Year:       b.Year,
		Month:      b.Month,
		CategoryID: b.CategoryID,
		EventID:    b.EventID,
	}
}

// Expense is money leaving an account.
type Expense struct {
	Base
	Account string
}

func (t Expense) What() Kind { return KindExpense }
func (t Expense) Record() Record {
	r := t.record(KindExpense)
	r.ToAccountID = t.Account
	return r
}

// Income is money entering an account.
type Income struct {
	Base
	Account string
}

func (t Income) What() Kind { return KindIncome }
func (t Income) Record() Record {
	r := t.record(KindIncome)
	r.ToAccountID = t.Account
	return r
}

// Transfer moves money between two accounts.
type Transfer struct {
	Base
	From, To string
}

func (t Transfer) What() Kind { return KindTransfer }
func (t Transfer) Record() Record {
	r := t.record(KindTransfer)
	r.FromAccountID, r.ToAccountID = t.From, t.To
	return r
}

// Buy spends cash from an account to acquire units of an asset.
type Buy struct {
	Base
	Account  string
	Asset    string
	Quantity Quantity
}

func (t Buy) What() Kind { return KindBuy }
func (t Buy) Record() Record {
	r := t.record(KindBuy)
	r.FromAccountID, r.HoldingAssetID, r.Quantity = t.Account, t.Asset, t.Quantity.value
	return r
}

// Sell disposes units of an asset and credits the proceeds to an account.
type Sell struct {
	Base
	Account  string
	Asset    string
	Quantity Quantity
}

func (t Sell) What() Kind { return KindSell }
func (t Sell) Record() Record {
	r := t.record(KindSell)
	r.ToAccountID, r.HoldingAssetID, r.Quantity = t.Account, t.Asset, t.Quantity.value
	return r
}

// Dividend credits an account with income paid by an asset. Asset is optional.
type Dividend struct {
	Base
	Account string
	Asset   string
}

func (t Dividend) What() Kind { return KindDividend }
func (t Dividend) Record() Record {
	r := t.record(KindDividend)
	r.ToAccountID, r.HoldingAssetID = t.Account, t.Asset
	return r
}

// Record is the persisted shape of a transaction, field for field.
type Record struct {
	ID             string          `json:"id"`
	Type           TxType          `json:"type"`
	Subtype        Subtype         `json:"transactionSubtype,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Frequency      int             `json:"frequency"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	CategoryID     string          `json:"categoryId,omitempty"`
	FromAccountID  string          `json:"fromAccountId,omitempty"`
	ToAccountID    string          `json:"toAccountId,omitempty"`
	HoldingAssetID string          `json:"holdingAssetId,omitempty"`
	Quantity       decimal.Decimal `json:"quantity,omitempty"`
	EventID        string          `json:"eventId,omitempty"`
}

// MarshalJSON writes the record with the persisted field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("type", r.Type)
	w.Optional("transactionSubtype", r.Subtype)
	w.Append("amount", r.Amount)
	w.Append("frequency", r.Frequency)
	w.Append("year", r.Year)
	w.Append("month", r.Month)
	w.Optional("categoryId", r.CategoryID)
	w.Optional("fromAccountId", r.FromAccountID)
	w.Optional("toAccountId", r.ToAccountID)
	w.Optional("holdingAssetId", r.HoldingAssetID)
	if !r.Quantity.IsZero() {
		w.Append("quantity", r.Quantity)
	}
	w.Optional("eventId", r.EventID)
	return w.MarshalJSON()
}

// malformed builds an ErrMalformedRecord error for this record.
func (r Record) malformed(format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrMalformedRecord, r.ID, fmt.Sprintf(format, args...))
}

// Decode returns the Transaction variant described by the record, with
// amounts in currency cur.
//
// It returns an error wrapping ErrMalformedRecord when the type and subtype
// do not match a variant or when an id required by the variant is missing.
func (r Record) Decode(cur string) (Transaction, error) {
	freq := r.Frequency
	if freq == 0 {
		freq = 1
	}
	if freq < 0 {
		return nil, r.malformed("frequency must be positive, got %d", r.Frequency)
	}
	if r.Month < 0 || r.Month > 12 {
		return nil, r.malformed("month must be in 1-12, got %d", r.Month)
	}
	if r.Quantity.IsNegative() {
		return nil, r.malformed("quantity must not be negative, got %s", r.Quantity)
	}
	base := Base{
		ID:         r.ID,
		Year:       r.Year,
		Month:      r.Month,
		Amount:     M(r.Amount.Abs(), cur),
		Frequency:  freq,
		CategoryID: r.CategoryID,
		EventID:    r.EventID,
	}

	switch r.Type {
	case TypeExpense, TypeIncome:
		if r.Subtype != "" {
			return nil, r.malformed("%s cannot have subtype %q", r.Type, r.Subtype)
		}
		if r.ToAccountID == "" {
			return nil, r.malformed("%s requires toAccountId", r.Type)
		}
		if r.Type == TypeExpense {
			return Expense{Base: base, Account: r.ToAccountID}, nil
		}
		return Income{Base: base, Account: r.ToAccountID}, nil
	case TypeTransfer:
		if r.Subtype != "" {
			return nil, r.malformed("transfer cannot have subtype %q", r.Subtype)
		}
		if r.FromAccountID == "" || r.ToAccountID == "" {
			return nil, r.malformed("transfer requires fromAccountId and toAccountId")
		}
		return Transfer{Base: base, From: r.FromAccountID, To: r.ToAccountID}, nil
	case TypeInvestment:
		switch r.Subtype {
		case SubtypeBuy:
			if r.HoldingAssetID == "" || r.FromAccountID == "" {
				return nil, r.malformed("buy requires holdingAssetId and fromAccountId")
			}
			return Buy{Base: base, Account: r.FromAccountID, Asset: r.HoldingAssetID, Quantity: Q(r.Quantity)}, nil
		case SubtypeSell:
			if r.HoldingAssetID == "" || r.ToAccountID == "" {
				return nil, r.malformed("sell requires holdingAssetId and toAccountId")
			}
			return Sell{Base: base, Account: r.ToAccountID, Asset: r.HoldingAssetID, Quantity: Q(r.Quantity)}, nil
		case SubtypeDividend:
			if r.ToAccountID == "" {
				return nil, r.malformed("dividend requires toAccountId")
			}
			return Dividend{Base: base, Account: r.ToAccountID, Asset: r.HoldingAssetID}, nil
		default:
			return nil, r.malformed("unknown investment subtype %q", r.Subtype)
		}
	default:
		return nil, r.malformed("unknown type %q", r.Type)
	}
}
