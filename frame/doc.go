// Package frame is the small, immutable columnar table engine used by
// polarbayes. A Frame wraps an Apache Arrow record whose columns are named
// uniquely and typed with one of four value kinds.
//
// 🚀 What does it provide?
//
//   - Typed columns: Bool, Int (int64), Float (float64) and String, each nullable.
//   - A widening rule between kinds (Supertype) and explicit casts (Cast).
//   - Relational primitives: Select (all names required), Exclude, Take,
//     Filter, WithColumn / WithNullColumn, CastColumn.
//   - Reshaping: Unpivot (wide → long) and strict vertical Concat.
//   - Export: CSV (arrow/csv) and newline-delimited JSON.
//
// ✨ Widening rule:
//
//	Bool < Int < Float < String
//
// Supertype returns the highest ranked kind it sees, so {Int, Float} → Float
// and {Int, String} → String. Cast only ever widens; narrowing is ErrCast.
//
// ⚙️ Ownership:
//
// Every operation returns a new Frame and never mutates its receiver. Frames are
// allocated with the Go allocator, so no Release bookkeeping is required.
//
//	f, err := frame.New(
//		frame.Column{Name: "chain", Values: frame.Int64s(0, 0, 1, 1)},
//		frame.Column{Name: "mu", Values: frame.Float64s(0.1, 0.2, 0.3, 0.4)},
//	)
//	long, err := f.Unpivot([]string{"chain"}, nil, "variable", "value")
package frame
