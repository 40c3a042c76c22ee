package delegate

import (
	"reflect"
	"runtime"
	"strings"
)

// funcKey recovers a comparable identity from a callable, when it has one.
// Only declared functions do: Go gives every distinct declared function a
// distinct code pointer, and its runtime name tells it apart from closures
// and method values, which reuse or synthesize code pointers and therefore
// carry no identity usable for equality. Returns zero when recovery fails.
func funcKey(fn any) uintptr {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return 0
	}
	pc := v.Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil || !isPlainFuncName(f.Name()) {
		return 0
	}
	return pc
}

// isPlainFuncName reports whether a runtime function name belongs to a
// declared function rather than a closure ("pkg.Parent.func1", nested
// variants end in a bare number) or a method value ("pkg.(*T).M-fm").
func isPlainFuncName(name string) bool {
	if name == "" || strings.HasSuffix(name, "-fm") {
		return false
	}
	seg := name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		seg = name[i+1:]
	}
	if isDigits(seg) {
		return false
	}
	if rest, ok := strings.CutPrefix(seg, "func"); ok && isDigits(rest) {
		return false
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
