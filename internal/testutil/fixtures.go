package testutil

// Sample programs. Each is a combined stream: program text, the '!'
// sentinel, then program input.
const (
	// HelloWorld prints "Hello World!\n".
	HelloWorld = `++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.!`

	// HelloWorldOutput is the output of HelloWorld.
	HelloWorldOutput = "Hello World!\n"

	// Multiply prints '@' (8*8 = 64).
	Multiply = `++++++++[>++++++++<-]>.!`

	// Echo copies its input and stops on the first zero byte it sees after
	// clearing the cell, so it terminates at end of input.
	Echo = `,[.[-],]!`

	// EchoForever copies its input but never clears the cell, so end of
	// input leaves the last byte in place and the loop never exits.
	EchoForever = `,[.,]!`

	// Commented is the Multiply program buried in prose. Only the
	// instruction symbols survive loading.
	Commented = `
Multiply eight by eight
++++++++ [ loop eight times
	> ++++++++ add eight to the next cell
	< - decrement the counter
]
> . print the result
!`

	// Reverse reads input up to end of input and prints it backwards.
	Reverse = `>,[>,]<[.<]!`
)
