package controller

// Dialogs are the blocking user prompts the controller needs. They run on
// the caller's goroutine and return once the user has answered.
type Dialogs interface {
	// Alert shows msg and waits for acknowledgement.
	Alert(msg string)

	// Confirm asks a yes/no question. It returns false when declined.
	Confirm(msg string) bool

	// Prompt asks for a line of text, pre-filled with seed. ok is false
	// when the user cancels.
	Prompt(msg, seed string) (text string, ok bool)
}
