// Package quadratic turns root pairs into monic quadratic polynomials.
//
// The package validates a loaded document and produces one Result per entry:
//   - A document whose root is not an array fails as a whole with ErrShape.
//   - An entry without a usable two-element roots list yields a Result whose
//     Err is set; the remaining entries are still processed.
//
// Derivation follows Vieta's formulas for a monic quadratic:
//
//	x^2 + b·x + c = 0,  b = -(r1 + r2),  c = r1·r2
//
// Nothing here prints or logs; reporting is the caller's concern.
package quadratic
