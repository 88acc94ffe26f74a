// Package menu is the state machine behind the interactive shell.
//
// A session moves through three states:
//
//	AwaitingKey  --CreateKey|LoadKey|SetKey-->  AwaitingFile
//	AwaitingFile --CreateFile|LoadFile------->  Managing
//
// Each state permits a fixed set of actions; anything else is rejected with
// ErrActionNotPermitted before it reaches the key or password services. A
// failed action leaves the state where it was.
package menu
