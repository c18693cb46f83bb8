// Package format renders curly-brace templates against typed argument lists.
//
// A placeholder is "{}" or "{n}", optionally followed by ":spec" where spec
// follows the grammar
//
//	[[fill]align][sign]['#'][width]['.'precision][verb]
//
// Width and precision may themselves be "{}" or "{n}" references resolved
// from the argument list. Literal braces are doubled.
//
//	format.MustFormat("{} = {:>8.2f}", "pi", 3.14159) // "pi =     3.14"
//	format.MustFormat("{0:#x} {0:b}", 255)            // "0xff 11111111"
//	format.MustFormat("{:.1a}", 90*time.Second)       // "1.5min"
//
// Values render by capability: booleans, characters, integers up to 128 bits,
// floats, strings, pointers, durations and times each have a verb set, and
// any type implementing Formatter renders itself. Grammar errors and verb
// mismatches fail the whole call rather than producing partial output.
//
// Compiled templates are cached by xxHash64, so repeated calls with the same
// template skip parsing. All entry points are safe for concurrent use.
package format
