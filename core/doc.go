// Package core defines the vocabulary every other lvlalg package speaks:
// storage categories, structural bands, orientation, index transforms,
// element types, storage identity tokens and the sentinel error set.
//
// Storage categories classify how a container physically represents its
// elements:
//
//   - Dense            every slot is stored (contiguous arrays);
//   - Packed           only a band or triangle is stored, the rest reads as zero;
//   - SparseUnordered  hash-keyed (major,minor)→value entries;
//   - SparseSorted     compressed/coordinate layouts with sorted index runs;
//   - Unknown          nothing can be assumed; access goes index by index.
//
// Categories are fixed per instance. Expression nodes derive theirs from
// their operands through the precedence tables in this package (Union,
// Intersection, Product, Quotient), and the dispatch package turns a set of
// categories into a traversal strategy.
//
// Errors:
//
//	ErrShapeMismatch     - operand shapes incompatible for the operation.
//	ErrIndexOutOfRange   - index >= declared size on read or write.
//	ErrOutOfBand         - mutable access outside a packed storage region.
//	ErrInvalidRange      - proxy parameters address outside the referent.
//	ErrReadOnly          - write attempted through an immutable view.
//	ErrCapacity          - fixed-capacity storage asked to grow.
//	ErrInvalidDimensions - negative sizes or band widths.
//	ErrNilOperand        - nil container, proxy or expression.
//
// Aliasing violations (asserting "no alias" for an expression that does read
// the destination) are undefined behaviour, not an error value.
package core
