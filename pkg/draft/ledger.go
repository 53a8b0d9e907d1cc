package draft

// LineItem is a single (name, amount) pair on an expense entry.
// Amount is kept as the raw string the user typed so that partially edited
// values survive round trips through the form; parsing happens only when
// the total is computed.
type LineItem struct {
	Name   string
	Amount string
}

// Field identifies an editable LineItem field.
type Field string

const (
	FieldName   Field = "name"
	FieldAmount Field = "amount"
)

// Ledger is the in-memory list of line items for one expense entry.
// The running total is recomputed and cached after every mutation.
type Ledger struct {
	items []LineItem
	total float64
}

// NewLedger creates a ledger seeded with the given items.
func NewLedger(items ...LineItem) *Ledger {
	l := &Ledger{items: append([]LineItem(nil), items...)}
	l.recompute()
	return l
}

// Items returns a copy of the current line items.
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of line items.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Add appends an empty line item.
func (l *Ledger) Add() {
	l.items = append(l.items, LineItem{})
	l.recompute()
}

// Remove deletes the item at index. Out-of-range indexes are a no-op.
func (l *Ledger) Remove(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.recompute()
}

// SetField replaces one field of the item at index.
// Out-of-range indexes and unknown fields are a no-op.
func (l *Ledger) SetField(index int, field Field, value string) {
	if index < 0 || index >= len(l.items) {
		return
	}

	switch field {
	case FieldName:
		l.items[index].Name = value
	case FieldAmount:
		l.items[index].Amount = value
	default:
		return
	}

	l.recompute()
}

// Total returns the cached sum of all item amounts. Empty and unparsable
// amounts contribute 0.
func (l *Ledger) Total() float64 {
	return l.total
}

// TotalAmount returns the total formatted to two decimal places.
func (l *Ledger) TotalAmount() string {
	return FormatTotal(l.total)
}

func (l *Ledger) recompute() {
	total := 0.0
	for _, item := range l.items {
		if item.Amount != "" {
			total += ParseAmount(item.Amount)
		}
	}
	l.total = total
}
