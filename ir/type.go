package ir

import "fmt"

// Kind is the variant a node currently holds.
type Kind int

const (
	EmptyKind Kind = iota
	ScalarKind
	NamespaceKind
	BothKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		EmptyKind:     "Empty",
		ScalarKind:    "Scalar",
		NamespaceKind: "Namespace",
		BothKind:      "Both",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Empty":     EmptyKind,
		"Scalar":    ScalarKind,
		"Namespace": NamespaceKind,
		"Both":      BothKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// HasValue reports whether nodes of this kind carry a scalar.
func (k Kind) HasValue() bool {
	return k == ScalarKind || k == BothKind
}

// IsNamespace reports whether nodes of this kind have children.
func (k Kind) IsNamespace() bool {
	return k == NamespaceKind || k == BothKind
}
