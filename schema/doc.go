// Package schema fixes the column naming and column ordering conventions
// shared by every table polarbayes produces.
//
// 🚀 What lives here?
//
//   - Reserved names: "chain" and "draw" identify one posterior sample,
//     "variable" and "value" label the long (tidy) layout.
//   - OrderIndexColumnNames: the single ordering policy for index columns.
//
// ✨ Ordering policy:
//
//	[chain name, if present] [draw name, if present] [everything else, ascending]
//
// The remaining names are compared byte-wise (Go string order), so "0b" sorts
// before "a" and "Z" before "a". The result never depends on the order the
// names were supplied in, and ordering an already ordered list is a no-op.
//
// ⚙️ Usage:
//
//	ordered := schema.OrderIndexColumnNames([]string{"team", "draw", "chain"})
//	// [chain draw team]
//
//	custom := schema.OrderIndexColumnNames(cols,
//		schema.WithChainName("run"), schema.WithDrawName("iter"))
package schema
