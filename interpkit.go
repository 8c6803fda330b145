/*
Package interpkit provides polynomial interpolation over arbitrary sample points,
together with a small algebra of univariate polynomials (arithmetic, evaluation,
derivative, integral, composition and integer powers) sufficient to manipulate the
result. Both the polynomial value type and the interpolator are generic over the
scalar types of the independent and dependent variables, so the same code serves
real-valued and complex-valued problems.
*/
package interpkit
