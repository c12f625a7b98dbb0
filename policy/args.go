package policy

import (
	"fmt"
	"math"
	"reflect"

	errorsmod "cosmossdk.io/errors"
)

// Expression is a canonical policy string: no whitespace, function-call
// syntax such as and_v(v:pk(...),older(...)).
type Expression string

func (e Expression) String() string {
	return string(e)
}

// Arg is a value that can be substituted into a policy template. The set of
// implementations is closed; see format for the exhaustive match.
type Arg interface {
	isArg()
}

// Absent renders as the empty string.
type Absent struct{}

// Bytes renders as lowercase hex without prefix.
type Bytes []byte

// Text renders verbatim.
type Text string

// Int renders as decimal digits.
type Int int64

// Handle wraps an already parsed or compiled policy value and renders it
// through its String method.
type Handle struct {
	fmt.Stringer
}

// List renders as the comma-joined formatting of its elements. All elements
// must be of the same non-list kind.
type List []Arg

func (Absent) isArg()     {}
func (Bytes) isArg()      {}
func (Text) isArg()       {}
func (Int) isArg()        {}
func (Expression) isArg() {}
func (Handle) isArg()     {}
func (List) isArg()       {}

// Expressions is a shorthand for a List of rendered fragments.
func Expressions(exprs ...Expression) List {
	l := make(List, len(exprs))
	for i, e := range exprs {
		l[i] = e
	}
	return l
}

// ByteSlices is a shorthand for a List of byte sequences.
func ByteSlices(bs ...[]byte) List {
	l := make(List, len(bs))
	for i, b := range bs {
		l[i] = Bytes(b)
	}
	return l
}

// FromValue lifts a dynamically typed Go value into an Arg.
func FromValue(v any) (Arg, error) {
	switch val := v.(type) {
	case nil:
		return Absent{}, nil
	case Arg:
		return val, nil
	case []byte:
		return Bytes(val), nil
	case string:
		return Text(val), nil
	case int:
		return Int(val), nil
	case int8:
		return Int(val), nil
	case int16:
		return Int(val), nil
	case int32:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case uint8:
		return Int(val), nil
	case uint16:
		return Int(val), nil
	case uint32:
		return Int(val), nil
	case uint:
		return uintArg(uint64(val))
	case uint64:
		return uintArg(val)
	case fmt.Stringer:
		if isNilStringer(val) {
			return nil, errorsmod.Wrapf(ErrUnsupportedArgumentType, "nil %T policy handle", val)
		}
		return Handle{val}, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errorsmod.Wrapf(ErrUnsupportedArgumentType, "%T", v)
	}

	// named byte slices and byte arrays are byte sequences, not lists of ints
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		b := make([]byte, rv.Len())
		for i := range b {
			b[i] = byte(rv.Index(i).Uint())
		}
		return Bytes(b), nil
	}

	list := make(List, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem, err := FromValue(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		list[i] = elem
	}
	if err := list.checkHomogeneous(); err != nil {
		return nil, err
	}

	return list, nil
}

func isNilStringer(s fmt.Stringer) bool {
	if s == nil {
		return true
	}
	rv := reflect.ValueOf(s)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func uintArg(v uint64) (Arg, error) {
	if v > math.MaxInt64 {
		return nil, errorsmod.Wrapf(ErrUnsupportedArgumentType, "integer %d overflows int64", v)
	}
	return Int(v), nil
}

type argKind int

const (
	kindAbsent argKind = iota
	kindBytes
	kindFragment
	kindText
	kindInt
	kindList
)

func (k argKind) String() string {
	switch k {
	case kindAbsent:
		return "absent"
	case kindBytes:
		return "bytes"
	case kindFragment:
		return "fragment"
	case kindText:
		return "text"
	case kindInt:
		return "int"
	case kindList:
		return "list"
	default:
		return "unknown"
	}
}

func kindOf(a Arg) (argKind, error) {
	switch v := a.(type) {
	case Absent:
		return kindAbsent, nil
	case Bytes:
		return kindBytes, nil
	case Expression:
		return kindFragment, nil
	case Handle:
		if isNilStringer(v.Stringer) {
			return 0, errorsmod.Wrap(ErrUnsupportedArgumentType, "nil policy handle")
		}
		return kindFragment, nil
	case Text:
		return kindText, nil
	case Int:
		return kindInt, nil
	case List:
		return kindList, nil
	default:
		return 0, errorsmod.Wrapf(ErrUnsupportedArgumentType, "%T", a)
	}
}

func (l List) checkHomogeneous() error {
	if len(l) == 0 {
		return nil
	}

	first, err := kindOf(l[0])
	if err != nil {
		return err
	}
	if first == kindList {
		return errorsmod.Wrap(ErrUnsupportedArgumentType, "nested lists are not supported")
	}

	for i, elem := range l[1:] {
		k, err := kindOf(elem)
		if err != nil {
			return err
		}
		if k != first {
			return errorsmod.Wrapf(ErrUnsupportedArgumentType,
				"list is not homogeneous: element %d is %s, expected %s", i+1, k, first)
		}
	}

	return nil
}
