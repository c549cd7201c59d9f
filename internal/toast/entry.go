package toast

import "time"

type Variant uint8

const (
	VariantDefault Variant = iota
	VariantDestructive
)

func (v Variant) String() string {
	switch v {
	case VariantDestructive:
		return "destructive"
	default:
		return "default"
	}
}

type Entry struct {
	ID          string
	Title       string
	Description string
	Variant     Variant
	InsertedAt  time.Time
	ExpiresAt   time.Time
}

func (e Entry) live(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}

type EntryOption func(*Entry)

func WithDescription(description string) EntryOption {
	return func(e *Entry) {
		e.Description = description
	}
}

func WithVariant(v Variant) EntryOption {
	return func(e *Entry) {
		e.Variant = v
	}
}

// Destructive is shorthand for WithVariant(VariantDestructive).
func Destructive() EntryOption {
	return WithVariant(VariantDestructive)
}
