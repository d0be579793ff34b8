package assert

import "github.com/oomph-ac/vrloco/oerror"

// IsTrue panics when ok is false. It guards programmer errors only; runtime conditions such as
// query misses are reported through return values.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
