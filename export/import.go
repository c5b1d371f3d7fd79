package export

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/signadot/prefs/ir/kpath"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// FlattenJSON reads a JSON object in the layout produced by JSON and
// returns its scalars by path. Numbers and booleans are kept as their
// JSON text; null members are reported in nulls.
func FlattenJSON(d []byte) (vals map[string]string, nulls []string, err error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, nil, fmt.Errorf("%w: got %T", ErrNotObject, v)
	}
	vals = map[string]string{}
	if err := flatten(vals, &nulls, "", obj); err != nil {
		return nil, nil, err
	}
	slices.Sort(nulls)
	return vals, nulls, nil
}

// FlattenYAML is FlattenJSON for a YAML mapping.
func FlattenYAML(d []byte) (map[string]string, []string, error) {
	j, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, nil, err
	}
	return FlattenJSON(j)
}

func flatten(vals map[string]string, nulls *[]string, prefix string, obj map[string]any) error {
	for k, v := range obj {
		p := prefix
		if k != "" {
			p = kpath.Join(prefix, k)
		}
		if p == "" {
			return fmt.Errorf("%w: value for the document root", ErrUnsupported)
		}
		switch x := v.(type) {
		case string:
			vals[p] = x
		case json.Number:
			vals[p] = x.String()
		case bool:
			vals[p] = fmt.Sprint(x)
		case nil:
			*nulls = append(*nulls, p)
		case map[string]any:
			if k == "" {
				return fmt.Errorf("%w: object under \"\" at %q", ErrUnsupported, p)
			}
			if err := flatten(vals, nulls, p, x); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %T at %q", ErrUnsupported, v, p)
		}
	}
	return nil
}
