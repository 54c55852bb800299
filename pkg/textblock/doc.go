// Package textblock implements the layout primitive used to render example
// snippets: an immutable block of text that is either a single line or an
// ordered stack of lines.
//
// Blocks are combined in two directions. Merge stacks blocks vertically.
// AttachRight joins them horizontally, line by line, and pads continuation
// lines so a right-hand column (usually a trailing comment) stays aligned:
//
//	value := textblock.Line("port = 8080")
//	note := textblock.Lines("# default port,", "# change for prod")
//	fmt.Println(value.AttachRight(note))
//
//	// port = 8080 # default port,
//	//             # change for prod
//
// Every operation returns a new Block; the receiver is never modified.
package textblock
