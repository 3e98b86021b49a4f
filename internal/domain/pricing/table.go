package pricing

import (
	"encoding/json"
	"strings"

	"github.com/noumaankhatib/mindfulqalb-payments/internal/pkg/errs"
)

var (
	ErrInvalidTableJSON = errs.New("invalid pricing table JSON")
	ErrInvalidEntry     = errs.New("invalid pricing table entry")
)

// Key identifies one bookable offering: a session type plus a delivery format.
type Key struct {
	SessionType string
	Format      string
}

// Table maps offerings to their base price in paise. Built once at startup
// and immutable afterwards.
type Table struct {
	entries  map[Key]int64
	currency string
}

// defaultEntries is the compiled-in price list. Amounts are paise.
var defaultEntries = map[Key]int64{
	{SessionType: "individual", Format: "video"}:     129900,
	{SessionType: "individual", Format: "in_person"}: 149900,
	{SessionType: "couples", Format: "video"}:        199900,
	{SessionType: "couples", Format: "in_person"}:    219900,
	{SessionType: "adolescent", Format: "video"}:     119900,
	{SessionType: "intro_call", Format: "video"}:     0,
}

func NewDefaultTable(currency string) *Table {
	entries := make(map[Key]int64, len(defaultEntries))
	for k, v := range defaultEntries {
		entries[k] = v
	}
	return &Table{entries: entries, currency: currency}
}

// NewTableFromJSON builds a table from a {"sessionType/format": paise} document.
func NewTableFromJSON(doc string, currency string) (*Table, error) {
	var raw map[string]int64
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, errs.Mark(err, ErrInvalidTableJSON)
	}

	entries := make(map[Key]int64, len(raw))
	for k, amount := range raw {
		parts := strings.Split(k, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, ErrInvalidEntry
		}
		if amount < 0 {
			return nil, ErrInvalidEntry
		}
		entries[Key{SessionType: normalize(parts[0]), Format: normalize(parts[1])}] = amount
	}
	if len(entries) == 0 {
		return nil, ErrInvalidTableJSON
	}
	return &Table{entries: entries, currency: currency}, nil
}

// BasePaise returns the base amount for an offering. The second return value
// reports whether the (sessionType, format) pair is known.
func (t *Table) BasePaise(sessionType, format string) (int64, bool) {
	amount, ok := t.entries[Key{SessionType: normalize(sessionType), Format: normalize(format)}]
	return amount, ok
}

func (t *Table) Currency() string {
	return t.currency
}

func (t *Table) Len() int {
	return len(t.entries)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
