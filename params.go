package formula

import (
	"strconv"
	"strings"
)

// ParamNames is the alphabet of parameter names, in the order in which
// polynomial coefficients and other enumerations use them. It excludes x,
// which is the variable, and e.
const ParamNames = "abcdfghijklmnopqrstuvwyz"

// ParamMin and ParamMax bound the values RandomParams chooses.
const (
	ParamMin = -9.0
	ParamMax = 9.0
)

// IsParamName returns whether name is in ParamNames.
func IsParamName(name byte) bool {
	return paramIndex(name) >= 0
}

func paramIndex(name byte) int {
	return strings.IndexByte(ParamNames, name)
}

func quoteName(name byte) string {
	return strconv.QuoteRune(rune(name))
}

// Params is a set of values bound to parameter names. The zero value is an
// empty set ready to use. A Params is not safe for concurrent modification.
type Params struct {
	vals [len(ParamNames)]float64
	set  uint32
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return new(Params)
}

// ParamsOf creates a parameter set from a map. Panics if any name is not in
// ParamNames.
func ParamsOf(vals map[byte]float64) *Params {
	p := NewParams()
	for k, v := range vals {
		p.Set(k, v)
	}
	return p
}

// Set binds a parameter. Returns p for chaining. Panics if name is not in
// ParamNames.
func (p *Params) Set(name byte, v float64) *Params {
	k := paramIndex(name)
	if k < 0 {
		panic("formula: invalid parameter name " + quoteName(name))
	}
	p.vals[k] = v
	p.set |= 1 << k
	return p
}

// Get returns the value bound to name and whether it is bound.
func (p *Params) Get(name byte) (float64, bool) {
	if p == nil {
		return 0, false
	}
	k := paramIndex(name)
	if k < 0 || p.set&(1<<k) == 0 {
		return 0, false
	}
	return p.vals[k], true
}

// Value returns the value bound to name. Panics with a *NameError if name is
// not bound. Callers should use CheckParams or Get when the binding is not
// already known to exist.
func (p *Params) Value(name byte) float64 {
	v, ok := p.Get(name)
	if !ok {
		panic(&NameError{Name: name})
	}
	return v
}

// Len returns the number of bound parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	n := 0
	for s := p.set; s != 0; s &= s - 1 {
		n++
	}
	return n
}

// Names returns the bound names in alphabet order.
func (p *Params) Names() []byte {
	r := make([]byte, 0, p.Len())
	for i := 0; i < len(ParamNames); i++ {
		if p != nil && p.set&(1<<i) != 0 {
			r = append(r, ParamNames[i])
		}
	}
	return r
}

// Clone returns a copy of p.
func (p *Params) Clone() *Params {
	r := NewParams()
	if p != nil {
		*r = *p
	}
	return r
}

// String formats the bindings like "{a: 1.5, b: -2}".
func (p *Params) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range p.Names() {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteByte(name)
		b.WriteString(": ")
		b.WriteString(strconv.FormatFloat(p.Value(name), 'g', -1, 64))
	}
	b.WriteByte('}')
	return b.String()
}

// NameError is a lookup of a parameter that is not bound.
type NameError struct {
	// Name is the parameter that was missing.
	Name byte
}

func (err *NameError) Error() string {
	return "undefined parameter: " + quoteName(err.Name)
}
