// Package keyboard models the key events pathte reacts to.
//
// The system-wide keyboard listener lives outside this module. It delivers
// an ordered stream of Event values (key down or key up, a virtual key code
// and the modifiers held at that moment) through a Source. The hotkey
// controller only cares about the paste key, the release of its trigger
// modifier and whether the reverse modifier is held.
//
// # Scripts
//
// Event streams can be written down as scripts, one event per line:
//
//	# open the selection and step back once
//	down ctrl
//	down v
//	up v
//	down shift+v
//	up ctrl
//
// A spec is an optional list of modifiers joined by "+" followed by a key.
// Modifier keys pressed with "down" stay held until their "up", and every
// event carries the held modifiers plus any explicit ones.
package keyboard
