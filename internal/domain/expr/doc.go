// Package expr compiles bytebeat expressions into numeric programs.
//
// The language is the numeric subset of JavaScript expressions used by
// bytebeat players: number literals, the time variable t, assignments,
// arithmetic, bitwise, comparison, logical and conditional operators, the
// comma operator, indexed array literals, a whitelist of Math functions and
// constants, and the reserved plot(...) marker. Bitwise operators work on
// 32-bit integers exactly like their JavaScript counterparts.
//
// Source text is tokenized with go/scanner and parsed by a Pratt parser into
// a small tree which is then compiled into closures, so evaluating a sample
// does not allocate.
//
// Two tap discovery paths exist and are kept apart on purpose:
//
//   - Compile records every inline plot(expr) call; the call evaluates to its
//     argument and the taps are numbered in post-order.
//   - CompileAnnotated reads `// plot(name[, window])` comments and reports
//     the final value of each named variable.
package expr
