package sales

// Ledger is the append-only, chronological sales history.
type Ledger struct {
	records []SaleRecord
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Append adds r after every existing record.
func (l *Ledger) Append(r SaleRecord) {
	l.records = append(l.records, r)
}

// List returns a copy of all records, oldest first.
func (l *Ledger) List() []SaleRecord {
	result := make([]SaleRecord, len(l.records))
	copy(result, l.records)
	return result
}

// Len reports the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}
