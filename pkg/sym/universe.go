package sym

import "github.com/vela-lang/vela/pkg/types"

// Universe holds the canonical class symbols for one compilation context.
// Construction is deterministic: building two universes yields the same
// classes, method names, and overload orders.
type Universe struct {
	Boolean *Class
	Byte    *Class
	Short   *Class
	Char    *Class
	Int     *Class
	Long    *Class
	Float   *Class
	Double  *Class

	Any    *Class
	Object *Class
	String *Class
	Array  *Class
}

// numericTypes lists the numeric value types in widening order. Overload
// sets and conversion methods iterate this slice so that declaration order
// is fixed.
var numericTypes = []*types.Type{
	types.Byte, types.Short, types.Char, types.Int,
	types.Long, types.Float, types.Double,
}

// integralTypes lists the value types that support bitwise and shift
// operations.
var integralTypes = []*types.Type{
	types.Byte, types.Short, types.Char, types.Int, types.Long,
}

// conversionNames pairs each toX method with its target type, in the same
// order as numericTypes.
var conversionNames = []struct {
	Name   string
	Target *types.Type
}{
	{"toByte", types.Byte},
	{"toShort", types.Short},
	{"toChar", types.Char},
	{"toInt", types.Int},
	{"toLong", types.Long},
	{"toFloat", types.Float},
	{"toDouble", types.Double},
}

// NewUniverse builds the built-in class symbols with their full operator
// surface.
func NewUniverse() *Universe {
	u := &Universe{
		Boolean: NewClass("Boolean", types.Bool),
		Byte:    NewClass("Byte", types.Byte),
		Short:   NewClass("Short", types.Short),
		Char:    NewClass("Char", types.Char),
		Int:     NewClass("Int", types.Int),
		Long:    NewClass("Long", types.Long),
		Float:   NewClass("Float", types.Float),
		Double:  NewClass("Double", types.Double),
		Any:     NewClass("Any", types.Any),
		Object:  NewClass("Object", types.Object),
		String:  NewClass("String", types.String),
		Array:   NewClass("Array", types.ArrayOf(types.Any)),
	}

	u.defineBoolean()
	for _, cls := range u.NumericClasses() {
		u.defineNumeric(cls)
	}
	u.defineRoots()
	return u
}

// ValueClasses returns the eight primitive value classes in declaration
// order.
func (u *Universe) ValueClasses() []*Class {
	return []*Class{u.Boolean, u.Byte, u.Short, u.Char, u.Int, u.Long, u.Float, u.Double}
}

// NumericClasses returns the seven numeric value classes in widening order.
func (u *Universe) NumericClasses() []*Class {
	return []*Class{u.Byte, u.Short, u.Char, u.Int, u.Long, u.Float, u.Double}
}

// ClassFor maps a value kind to its class symbol, or nil for non-value
// kinds.
func (u *Universe) ClassFor(k types.Kind) *Class {
	switch k {
	case types.KindBool:
		return u.Boolean
	case types.KindByte:
		return u.Byte
	case types.KindShort:
		return u.Short
	case types.KindChar:
		return u.Char
	case types.KindInt:
		return u.Int
	case types.KindLong:
		return u.Long
	case types.KindFloat:
		return u.Float
	case types.KindDouble:
		return u.Double
	default:
		return nil
	}
}

func (u *Universe) defineBoolean() {
	b := u.Boolean
	b.Define("==", []*types.Type{types.Bool}, types.Bool)
	b.Define("!=", []*types.Type{types.Bool}, types.Bool)
	b.Define("unary_!", nil, types.Bool)
	b.Define("&&", []*types.Type{types.Bool}, types.Bool)
	b.Define("||", []*types.Type{types.Bool}, types.Bool)
	b.Define("&", []*types.Type{types.Bool}, types.Bool)
	b.Define("|", []*types.Type{types.Bool}, types.Bool)
	b.Define("^", []*types.Type{types.Bool}, types.Bool)
}

func (u *Universe) defineNumeric(cls *Class) {
	t := cls.Type

	// Equality and relational operators: one overload per numeric
	// argument type.
	for _, name := range []string{"==", "!=", "<", "<=", ">", ">="} {
		for _, arg := range numericTypes {
			cls.Define(name, []*types.Type{arg}, types.Bool)
		}
	}

	// Arithmetic: one overload per numeric argument type, result widened.
	// "+" additionally carries the string-concatenation overload.
	for _, name := range []string{"+", "-", "*", "/", "%"} {
		for _, arg := range numericTypes {
			cls.Define(name, []*types.Type{arg}, Promote(t, arg))
		}
		if name == "+" {
			cls.Define(name, []*types.Type{types.String}, types.String)
		}
	}

	// Unary operators.
	cls.Define("unary_+", nil, PromoteUnary(t))
	cls.Define("unary_-", nil, PromoteUnary(t))

	if t.IsIntegral() {
		for _, name := range []string{"&", "|", "^"} {
			for _, arg := range integralTypes {
				cls.Define(name, []*types.Type{arg}, Promote(t, arg))
			}
		}
		// Shift distance is Int or Long; the result keeps the
		// receiver's (unary-promoted) type.
		for _, name := range []string{"<<", ">>", ">>>"} {
			cls.Define(name, []*types.Type{types.Int}, PromoteUnary(t))
			cls.Define(name, []*types.Type{types.Long}, PromoteUnary(t))
		}
		cls.Define("unary_~", nil, PromoteUnary(t))
	}

	for _, conv := range conversionNames {
		cls.Define(conv.Name, nil, conv.Target)
	}
}

func (u *Universe) defineRoots() {
	u.Any.Define("==", []*types.Type{types.Any}, types.Bool)
	u.Any.Define("!=", []*types.Type{types.Any}, types.Bool)
	u.Any.Define("equals", []*types.Type{types.Any}, types.Bool)
	u.Any.Define("##", nil, types.Int)
	u.Any.Define("isInstanceOf", nil, types.Bool)
	u.Any.Define("asInstanceOf", nil, types.Any)

	u.Object.Define("eq", []*types.Type{types.Object}, types.Bool)
	u.Object.Define("ne", []*types.Type{types.Object}, types.Bool)
	u.Object.Define("synchronized", []*types.Type{types.Any}, types.Any)

	u.String.Define("+", []*types.Type{types.Any}, types.String)

	// Generic array accessors. Element specialization happens at
	// classification time, not here.
	u.Array.Define("length", nil, types.Int)
	u.Array.Define("apply", []*types.Type{types.Int}, types.Any)
	u.Array.Define("update", []*types.Type{types.Int, types.Any}, types.Unit)
	u.Array.Define("clone", nil, types.ArrayOf(types.Any))
}

// Promote returns the result type of a binary numeric operation between
// the two operand types, following the usual widening rules.
func Promote(a, b *types.Type) *types.Type {
	switch {
	case a.Kind() == types.KindDouble || b.Kind() == types.KindDouble:
		return types.Double
	case a.Kind() == types.KindFloat || b.Kind() == types.KindFloat:
		return types.Float
	case a.Kind() == types.KindLong || b.Kind() == types.KindLong:
		return types.Long
	default:
		return types.Int
	}
}

// PromoteUnary returns the result type of a unary numeric operation:
// sub-Int types widen to Int, everything else keeps its type.
func PromoteUnary(t *types.Type) *types.Type {
	switch t.Kind() {
	case types.KindByte, types.KindShort, types.KindChar:
		return types.Int
	default:
		return t
	}
}
