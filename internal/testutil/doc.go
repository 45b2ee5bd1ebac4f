// Package testutil provides shared test helpers for bfckd.
//
// # Fixtures
//
// fixtures.go holds sample programs in the combined stream format
// (program, '!', input): HelloWorld, Multiply, Echo, EchoForever,
// Commented and Reverse.
//
// # I/O helpers
//
//   - FailingReader - yields its data, then ErrDevice instead of io.EOF
//   - FailingWriter - accepts Limit bytes, then fails with ErrDevice
//
// # Timeouts
//
//   - ContextWithTestDeadline(t, fallback) - context bounded by the test deadline
//   - RunContext(t) - context for one program run
//   - DefaultMaxSteps - step cap for programs that never terminate
//
// # Usage
//
//	func TestSomething(t *testing.T) {
//	    ctx, cancel := testutil.RunContext(t)
//	    defer cancel()
//	    prog, _ := bf.Load(strings.NewReader(testutil.Multiply), bf.LoadOptions{})
//	    // ... run prog ...
//	}
package testutil
