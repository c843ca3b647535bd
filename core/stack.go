package core

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Frame is a read-only view of one call stack frame
type Frame struct {
	// Type is the fully qualified declaring type ("path/pkg.Type"), or the
	// package path for plain functions and closures.
	Type   string
	Method string
	// File is the base name of the source file
	File string
	Line int
}

// SimpleType returns the part of Type after the last '/' or '.'
func (f Frame) SimpleType() string {
	return f.Type[strings.LastIndexAny(f.Type, "/.")+1:]
}

// Stack is a snapshot of the calling goroutine
type Stack struct {
	Thread string
	Frames []Frame
}

// StackSource captures the current call stack.
// Frames[0] of the returned stack is the function that called Capture.
type StackSource interface {
	Capture() Stack
}

// StackFunc adapts a plain function to the StackSource interface
type StackFunc func() Stack

// Capture calls f
func (f StackFunc) Capture() Stack {
	return f()
}

// DefaultStackDepth is the maximum number of frames captured by RuntimeStackSource
const DefaultStackDepth = 64

// RuntimeStackSource captures the live call stack of the calling goroutine
type RuntimeStackSource struct {
	// Depth limits the number of captured frames (default: DefaultStackDepth)
	Depth int
}

// Capture returns the stack of the calling goroutine, starting at the caller of Capture
func (s RuntimeStackSource) Capture() Stack {
	depth := s.Depth
	if depth <= 0 {
		depth = DefaultStackDepth
	}

	pcs := make([]uintptr, depth)
	// 0: runtime.Callers, 1: Capture
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	out := make([]Frame, 0, n)
	for {
		f, more := frames.Next()
		typ, method := SplitFunction(f.Function)
		out = append(out, Frame{
			Type:   typ,
			Method: method,
			File:   filepath.Base(f.File),
			Line:   f.Line,
		})
		if !more {
			break
		}
	}

	return Stack{Thread: GoroutineName(), Frames: out}
}

// SplitFunction splits a runtime function name into its declaring type and method.
//
//	example.com/app/pkg.(*T).Method  -> example.com/app/pkg.T, Method
//	example.com/app/pkg.T.Method     -> example.com/app/pkg.T, Method
//	example.com/app/pkg.Func         -> example.com/app/pkg,   Func
//	example.com/app/pkg.Func.func1   -> example.com/app/pkg,   Func.func1
//	gopkg.in/yaml%2ev3.(*T).Method   -> gopkg.in/yaml.v3.T,    Method
func SplitFunction(fn string) (typ, method string) {
	if fn == "" {
		return "", ""
	}
	fn = strings.ReplaceAll(fn, "[...]", "")

	slash := strings.LastIndexByte(fn, '/')
	dot := strings.IndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return fn, ""
	}
	dot += slash + 1
	// the linker escapes dots in the last path element as %2e
	pkg, rest := strings.ReplaceAll(fn[:dot], "%2e", "."), fn[dot+1:]

	if strings.HasPrefix(rest, "(") {
		end := strings.IndexByte(rest, ')')
		if end < 0 || end+2 > len(rest) {
			return pkg, rest
		}
		recv := strings.TrimPrefix(rest[1:end], "*")
		return pkg + "." + recv, rest[end+2:]
	}

	if name, tail, ok := strings.Cut(rest, "."); ok && !isClosureName(tail) {
		return pkg + "." + name, tail
	}
	return pkg, rest
}

// isClosureName reports whether s names a compiler-generated function
// (func1, gowrap2, ...) rather than a method.
func isClosureName(s string) bool {
	for _, prefix := range []string{"func", "gowrap", "deferwrap"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok && rest != "" && rest[0] >= '0' && rest[0] <= '9' {
			return true
		}
	}
	return false
}

// GoroutineName returns "goroutine <id>" for the calling goroutine.
// Go has no thread names; the goroutine id is the closest equivalent.
func GoroutineName() string {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// "goroutine 18 [running]:..."
	field := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	id, _, _ := strings.Cut(field, " ")
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return "goroutine"
	}
	return "goroutine " + id
}
