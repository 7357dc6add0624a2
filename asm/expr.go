package asm

import (
	"iter"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// evalExpr does compile-time $(...) evaluations.
func evalExpr(expr string, names iter.Seq2[string, int]) (value int, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for name, v := range names {
		pred[name] = starlark.MakeInt(v)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > int64(^uint32(0)) {
		err = ErrParseExpression(expr)
		return
	}

	value = int(st_int64)
	return
}
