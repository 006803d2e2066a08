package vdom

import (
	"fmt"
	"reflect"
	"strconv"
)

// Normalize classifies producer output into delta nodes.
//
// Literals become Text, nodes are kept (fragments included), sequences
// are flattened in order, readers and zero-argument functions become
// Reactive, and nil contributes nothing. Any other shape is an
// unrenderable child and returns an error describing it.
func Normalize(value any) ([]*VNode, error) {
	return normalize(nil, value)
}

func normalize(out []*VNode, value any) ([]*VNode, error) {
	switch v := value.(type) {
	case nil:
		return out, nil
	case *VNode:
		if v == nil {
			return out, nil
		}
		return append(out, v), nil
	case []*VNode:
		for _, c := range v {
			if c != nil {
				out = append(out, c)
			}
		}
		return out, nil
	case []any:
		var err error
		for _, c := range v {
			if out, err = normalize(out, c); err != nil {
				return out, err
			}
		}
		return out, nil
	case string:
		return append(out, Text(v)), nil
	case []string:
		for _, s := range v {
			out = append(out, Text(s))
		}
		return out, nil
	case Reader:
		return append(out, Reactive(v.Read)), nil
	case func() any:
		return append(out, Reactive(v)), nil
	case Attr, []Attr, EventHandler:
		return out, fmt.Errorf("%T is not renderable in child position", value)
	}

	if s, ok := literal(value); ok {
		return append(out, Text(s)), nil
	}
	if p, ok := Producer(value); ok {
		return append(out, Reactive(p)), nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		var err error
		for i := 0; i < rv.Len(); i++ {
			if out, err = normalize(out, rv.Index(i).Interface()); err != nil {
				return out, err
			}
		}
		return out, nil
	}

	return out, fmt.Errorf("%T is not renderable", value)
}

// Producer reports whether value is reactive and returns its producer.
// Readers and zero-argument, single-result functions qualify.
func Producer(value any) (func() any, bool) {
	switch v := value.(type) {
	case Reader:
		return v.Read, true
	case func() any:
		return v, true
	case func() string:
		return func() any { return v() }, true
	case func() *VNode:
		return func() any { return v() }, true
	case func() []*VNode:
		return func() any { return v() }, true
	case func() bool:
		return func() any { return v() }, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, false
	}
	rt := rv.Type()
	if rt.NumIn() != 0 || rt.NumOut() != 1 {
		return nil, false
	}
	return func() any { return rv.Call(nil)[0].Interface() }, true
}

// Stringify converts a literal to its text form.
func Stringify(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	return literal(value)
}

func literal(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(v).Int(), 10), true
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	return "", false
}
