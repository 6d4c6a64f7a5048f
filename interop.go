// interop.go — host bridge between Value and plain Go data.
//
// Used when the interpreter is embedded: keywords become strings (colon
// stripped), maps with scalar keys become map[string]any, lists and vectors
// become []any, and functions become Go closures that convert their
// arguments and result. Shapes that cannot round-trip — maps with
// collection keys, macros — raise a ConversionError.
package clj

import "fmt"

// HostFn is the host-side shape of a converted Function.
type HostFn func(args ...any) (any, error)

// ToGo converts a Value to host data.
func ToGo(v Value) (any, error) {
	switch v.Tag {
	case VTNil:
		return nil, nil
	case VTBool:
		return v.Bool(), nil
	case VTNumber:
		return v.Num(), nil
	case VTString:
		return v.Str(), nil
	case VTKeyword:
		return v.Str()[1:], nil
	case VTSymbol:
		return v.Str(), nil
	case VTList, VTVector:
		items := v.Items()
		out := make([]any, len(items))
		for i, it := range items {
			x, err := ToGo(it)
			if err != nil {
				return nil, err
			}
			out[i] = x
		}
		return out, nil
	case VTMap:
		m := v.Map()
		out := make(map[string]any, m.Len())
		for _, e := range m.Entries {
			k, err := recordKey(e.Key)
			if err != nil {
				return nil, err
			}
			x, err := ToGo(e.Val)
			if err != nil {
				return nil, err
			}
			out[k] = x
		}
		return out, nil
	case VTFun, VTNative:
		callee := v
		return HostFn(func(args ...any) (any, error) {
			conv := make([]Value, len(args))
			for i, a := range args {
				cv, err := FromGo(a)
				if err != nil {
					return nil, err
				}
				conv[i] = cv
			}
			res, err := Apply(callee, conv)
			if err != nil {
				return nil, err
			}
			return ToGo(res)
		}), nil
	case VTMacro:
		return nil, &ConversionError{Msg: "macros cannot cross the host boundary"}
	default:
		return nil, &ConversionError{Msg: fmt.Sprintf("cannot convert %s value to host data", v.Tag)}
	}
}

// recordKey renders a scalar map key as a host record key. Collection keys
// cannot round-trip through a string-keyed record.
func recordKey(k Value) (string, error) {
	switch k.Tag {
	case VTKeyword:
		return k.Str()[1:], nil
	case VTString, VTSymbol:
		return k.Str(), nil
	case VTNumber:
		return formatNumber(k.Num()), nil
	case VTBool:
		if k.Bool() {
			return "true", nil
		}
		return "false", nil
	case VTNil:
		return "nil", nil
	default:
		return "", &ConversionError{Msg: fmt.Sprintf("map key %s cannot become a host record key", PrintString(k))}
	}
}

// FromGo converts host data to a Value. Map keys come back as keywords,
// matching the keyword↔string convention of ToGo.
func FromGo(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Nil, nil
	case bool:
		return Bool(t), nil
	case float64:
		return Num(t), nil
	case float32:
		return Num(float64(t)), nil
	case int:
		return Num(float64(t)), nil
	case int64:
		return Num(float64(t)), nil
	case string:
		return Str(t), nil
	case []any:
		out := make([]Value, len(t))
		for i, it := range t {
			v, err := FromGo(it)
			if err != nil {
				return Nil, err
			}
			out[i] = v
		}
		return Vector(out...), nil
	case map[string]any:
		m := &MapObject{Entries: make([]MapEntry, 0, len(t))}
		for k, it := range t {
			v, err := FromGo(it)
			if err != nil {
				return Nil, err
			}
			m.set(Keyword(":"+k), v)
		}
		return MapVal(m), nil
	case HostFn:
		fn := t
		return NativeVal(&Native{
			Name: "host-fn",
			Fn: func(args []Value) (Value, error) {
				conv := make([]any, len(args))
				for i, a := range args {
					x, err := ToGo(a)
					if err != nil {
						return Nil, err
					}
					conv[i] = x
				}
				res, err := fn(conv...)
				if err != nil {
					return Nil, err
				}
				return FromGo(res)
			},
		}), nil
	case Value:
		return t, nil
	default:
		return Nil, &ConversionError{Msg: fmt.Sprintf("cannot convert host value of type %T", x)}
	}
}
