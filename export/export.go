package export

import (
	"bytes"
	"io"

	"github.com/signadot/prefs/ir"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Field is one member of an Object.
type Field struct {
	Key   string
	Value any
}

// Object is an ordered set of fields; values are strings or Objects.
type Object []Field

func (o Object) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MapSlice converts o for ordered YAML output.
func (o Object) MapSlice() yaml.MapSlice {
	ms := make(yaml.MapSlice, len(o))
	for i, f := range o {
		v := f.Value
		if sub, ok := v.(Object); ok {
			v = sub.MapSlice()
		}
		ms[i] = yaml.MapItem{Key: f.Key, Value: v}
	}
	return ms
}

// Value returns n's scalar as a string when it has no children, and an
// Object otherwise.
func Value(n *ir.Node) any {
	v, ok := n.Value()
	if n.Len() == 0 {
		return v
	}
	obj := make(Object, 0, n.Len()+1)
	if ok {
		obj = append(obj, Field{Key: "", Value: v})
	}
	for _, c := range n.Children() {
		obj = append(obj, Field{Key: c.Key, Value: Value(c)})
	}
	return obj
}

func object(tree *ir.Tree) Object {
	if o, ok := Value(tree.Root).(Object); ok {
		return o
	}
	return Object{}
}

func MarshalJSON(tree *ir.Tree) ([]byte, error) {
	return json.Marshal(object(tree))
}

// JSON writes tree as an indented JSON object.
func JSON(tree *ir.Tree, w io.Writer) error {
	d, err := MarshalJSON(tree)
	if err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, d, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// YAML writes tree as a YAML mapping.
func YAML(tree *ir.Tree, w io.Writer) error {
	d, err := yaml.Marshal(object(tree).MapSlice())
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Flat returns every scalar of tree by path.
func Flat(tree *ir.Tree) map[string]string {
	res := map[string]string{}
	_ = tree.Root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if v, ok := n.Value(); ok && !isPost {
			res[n.Path()] = v
		}
		return true, nil
	})
	return res
}
