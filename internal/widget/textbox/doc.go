// Package textbox implements the interaction state machine of a
// bounded text-editing widget.
//
// Each update pass borrows the host's text buffer, folds an ordered
// batch of input events over the cursor and drag state, and emits a
// frame of render operations (background, text run, selection
// highlights, caret) for the host to draw. State is written back at
// most once per pass per field, so the host sees zero or one change
// notification per pass.
package textbox
