/*
Package polyops provides a pure Go implementation of univariate polynomials over
float64 coefficients.

The polynomial type and its arithmetic live in the poly sub-package; the utils
sub-packages hold the generic vector, slice and sampling helpers it is built on.
*/
package polyops
