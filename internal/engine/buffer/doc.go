// Package buffer provides the mutable text run edited by the engine.
//
// The buffer is owned by the host and borrowed per update pass. It keeps
// byte offsets and character offsets strictly separate: bytes index the
// underlying string, characters index grapheme clusters. All cursor
// arithmetic in the engine is expressed in character offsets and
// converted at this boundary.
package buffer
