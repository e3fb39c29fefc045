package cpu

import (
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system names for $() expressions.
var sysEquate = map[string]int{
	"WORD_SIZE":     WORD_SIZE,
	"MEM_ADDR_BITS": MEM_ADDR_BITS,
	"MEM_MAX":       MEM_MAX,
}

// parenEval does compile-time $(...) evaluations. Integer results are
// returned in decimal, string results verbatim.
func (asm *Assembler) parenEval(expr string, lineno int) (value string, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, v := range sysEquate {
		pred[key] = starlark.MakeInt(v)
	}
	pred["LINENO"] = starlark.MakeInt(lineno)
	for key, str := range asm.predefine {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			pred[key] = starlark.String(str)
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}

	switch rc := dict["rc"].(type) {
	case starlark.Int:
		u64, ok := rc.Uint64()
		if !ok {
			err = ErrParseExpression(expr)
			return
		}
		value = strconv.FormatUint(u64, 10)
	case starlark.String:
		value = string(rc)
	default:
		err = ErrParseExpression(expr)
	}

	return
}
