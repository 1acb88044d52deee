// Package lua exposes the YAML bridge to gopher-lua scripts as the module "yaml".
//
//	L := lua.NewState()
//	L.PreloadModule("yaml", yamllua.Loader)
//
// Scripts then call:
//
//	local yaml = require("yaml")
//	local doc = yaml.parse_yaml("a: 1\nb: null")
//	assert(doc.b == yaml.NIL)
//
// Lua numbers are float64, so integers outside ±2^53 fail with a RangeError instead of losing
// precision. Conversion failures are raised as Lua errors whose message starts with the error
// kind, e.g. "RangeError: ...", and can be caught with pcall.
package lua
