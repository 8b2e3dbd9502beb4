package formula_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/formula"
)

// near reports whether a and b are equal to within a relative tolerance,
// treating NaNs as equal.
func near(a, b, tol float64) bool {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return math.IsNaN(a) && math.IsNaN(b)
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return a == b
	}
	d := math.Abs(a - b)
	return d <= tol || d <= tol*math.Max(math.Abs(a), math.Abs(b))
}

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		x    float64
		p    map[byte]float64
		want float64
	}{
		{"var", "x", 2.5, nil, 2.5},
		{"const", "3.14", 2.5, nil, 3.14},
		{"zero", "0", 2.5, nil, 0},
		{"one", "1", 2.5, nil, 1},
		{"param", "a", 2.5, map[byte]float64{'a': -7}, -7},
		{"neg", "-x", 2.5, nil, -2.5},
		{"exp", "exp(x)", 1, nil, math.E},
		{"ln", "ln(x)", math.E, nil, 1},
		{"sqrt", "sqrt(x)", 6.25, nil, 2.5},
		{"sq", "x^2", 2.5, nil, 6.25},
		{"sin", "sin(x)", math.Pi / 2, nil, 1},
		{"cos", "cos(x)", 0, nil, 1},
		{"tan", "tan(x)", math.Pi / 4, nil, 1},
		{"add", "4+5+6", 0, nil, 15},
		{"sub", "4-5-6", 0, nil, -7},
		{"mul", "4*5*6", 0, nil, 120},
		{"div", "4/5/6", 0, nil, 4.0 / 5.0 / 6.0},
		{"pow", "2^3^2", 0, nil, 512},
		{"linear", "a*x + b", 3, map[byte]float64{'a': 2, 'b': 1}, 7},
		{"neg-sq", "-x^2", 3, nil, -9},
		{"sq-neg", "(-x)^2", 3, nil, 9},
		{"div-zero", "1/x", 0, nil, math.Inf(1)},
		{"div-negzero", "-1/x", 0, nil, math.Inf(-1)},
		{"ln-neg", "ln(x)", -1, nil, math.NaN()},
		{"ln-zero", "ln(x)", 0, nil, math.Inf(-1)},
		{"sqrt-neg", "sqrt(x)", -1, nil, math.NaN()},
		{"pow-zero-zero", "x^0", 0, nil, 1},
		{
			"gauss",
			"h + a*exp(-((x-m)/s)^2)",
			1,
			map[byte]float64{'h': 1, 'a': 2, 'm': 1, 's': 3},
			3,
		},
		{
			"mixed",
			"x + 2*a*(x+1)^2 - sin(x+1) + exp(3*x)/exp(x)",
			1,
			map[byte]float64{'a': 0.5},
			11.479758672104968,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := formula.Parse(c.src)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.src, err)
			}
			p := formula.ParamsOf(c.p)
			if err := e.CheckParams(p); err != nil {
				t.Fatalf("%q with params %v: %v", c.src, p, err)
			}
			r := e.Eval(c.x, p)
			if !near(r, c.want, 1e-12) {
				t.Errorf("%q at x=%g with %v: want %g, got %g", c.src, c.x, p, c.want, r)
			}
		})
	}
}

func TestEvalPoly(t *testing.T) {
	cases := []struct {
		name string
		e    *formula.Expr
		x    float64
		p    *formula.Params
		want float64
	}{
		{"const", formula.Poly(0), 5, formula.NewParams().Set('a', 3), 3},
		{"linear", formula.Poly(1), 5, formula.NewParams().Set('a', 3).Set('b', 2), 13},
		{"quadratic", formula.Poly(2), 2, formula.NewParams().Set('a', 1).Set('b', 2).Set('c', 3), 17},
		{"series-linear", formula.SeriesPoly(1), 5, formula.NewParams().Set('a', 3).Set('b', 2), 13},
		{
			"series-cubic",
			formula.SeriesPoly(3),
			2,
			formula.NewParams().Set('a', 1).Set('b', 1).Set('c', 1).Set('d', 1),
			1 + 2 + 4.0/2 + 8.0/6,
		},
		{
			"series-exp",
			formula.SeriesPoly(20),
			1,
			func() *formula.Params {
				p := formula.NewParams()
				for i := 0; i <= 20; i++ {
					p.Set(formula.ParamNames[i], 1)
				}
				return p
			}(),
			math.E,
		},
		{
			"nested",
			formula.Mul(formula.Var(), formula.Poly(1)),
			3,
			formula.NewParams().Set('a', 1).Set('b', 1),
			12,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := c.e.Eval(c.x, c.p)
			if !near(r, c.want, 1e-12) {
				t.Errorf("%v at x=%g with %v: want %g, got %g", c.e, c.x, c.p, c.want, r)
			}
		})
	}
}

func TestParamNamesUsed(t *testing.T) {
	cases := []struct {
		name string
		e    *formula.Expr
		want string
	}{
		{"none", formula.MustParse("x*sin(x)"), ""},
		{"one", formula.MustParse("a*x"), "a"},
		{"order", formula.MustParse("h + a*exp(-((x-m)/s)^2)"), "hams"},
		{"repeat", formula.MustParse("a*a + b"), "aab"},
		{"poly", formula.Poly(2), "abc"},
		{"series", formula.Add(formula.Param('z'), formula.SeriesPoly(1)), "zab"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := string(c.e.Params()); got != c.want {
				t.Errorf("%v uses params %q, want %q", c.e, got, c.want)
			}
		})
	}
}

func TestCheckParams(t *testing.T) {
	e := formula.MustParse("a*x + b")
	if err := e.CheckParams(formula.NewParams().Set('a', 1).Set('b', 2)); err != nil {
		t.Errorf("unexpected error with all params bound: %v", err)
	}
	err := e.CheckParams(formula.NewParams().Set('a', 1))
	var ne *formula.NameError
	if !errors.As(err, &ne) {
		t.Fatalf("wrong error with b unbound: %v", err)
	}
	if ne.Name != 'b' {
		t.Errorf("missing param reported as %q, want 'b'", ne.Name)
	}
	if err := e.CheckParams(nil); err == nil {
		t.Error("no error with nil params")
	}
}

func TestEvalUnboundPanics(t *testing.T) {
	e := formula.MustParse("x + c")
	defer func() {
		r := recover()
		ne, ok := r.(*formula.NameError)
		if !ok {
			t.Fatalf("wrong panic value %#v", r)
		}
		if ne.Name != 'c' {
			t.Errorf("panic named %q, want 'c'", ne.Name)
		}
	}()
	e.Eval(1, formula.NewParams().Set('a', 1))
	t.Error("Eval returned with an unbound parameter")
}
