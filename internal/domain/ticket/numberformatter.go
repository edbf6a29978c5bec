package ticket

import "fmt"

// NumberFormatter derives the human-facing ticket reference from the
// storage-assigned internal ID.
type NumberFormatter interface {
	Format(id uint) string
}

// PrefixNumberFormatter joins a fixed prefix and the internal ID, so
// consecutive inserts yield strictly increasing numeric suffixes.
type PrefixNumberFormatter struct {
	prefix string
}

func NewPrefixNumberFormatter(prefix string) *PrefixNumberFormatter {
	return &PrefixNumberFormatter{prefix: prefix}
}

func (f *PrefixNumberFormatter) Format(id uint) string {
	return fmt.Sprintf("%s-%d", f.prefix, id)
}
