// Package formula implements formulas of one variable for brute-force curve
// fitting.
//
// A formula is a tree over the variable x, literal numbers, and parameters
// named by single letters from ParamNames. Formulas can be parsed from text
// like "h + a*exp(-((x-m)/s)^2)", generated randomly with a complexity bound,
// simplified, and evaluated for many values of x and the parameters. Fitting
// the parameters to data is left to the caller; the parameters a formula
// needs are listed by Params.
//
// The syntax is ordinary infix notation with + - * / ^ and the functions exp,
// ln, sqrt, sin, cos, and tan. Numbers use decimal notation without
// exponents. Any of (), [], and {} group terms.
package formula
