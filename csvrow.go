// # csvrow: A Single-Row CSV Field Tokenizer for Go
//
// csvrow decomposes one line of delimiter-separated text into its fields under RFC 4180 quoting rules, and escapes raw values back into CSV text. It is deliberately line-scoped: no file I/O, no multi-line quoted fields, no header or schema handling. Split your document into lines however you like and hand each line to a Row.
//
// # Features
//
// - Lazy field iteration over a single line with custom delimiters and minimal copying.
// - Literal mode returning fields verbatim, quotes and escaping intact, alongside the default unescaped view.
// - Deterministic handling of malformed quoting (orphaned and prematurely closed quotes) with no error path.
// - `Escape`, `Unescape`, and `Join` as the exact inverses of tokenization, for building rows back up.
// - Benchmarks, fuzz targets, and table-driven unit tests for regression protection.
//
// # Getting Started
//
// The module path is `github.com/RetrospectionSoftware/csvrow`. Construct a Row per line and call Next until io.EOF, or collect everything with Fields.
package csvrow
