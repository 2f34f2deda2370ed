// Package paths classifies path strings and converts them between the
// three conventions pathte understands.
//
// # Formats
//
//   - Windows: backslash separated, optionally anchored by a drive letter
//     (C:\Users\me\notes.txt)
//   - Unix: forward-slash separated, no drive concept (/home/me/notes.txt)
//   - WSL: a Windows drive mounted under the Linux subsystem
//     (/mnt/c/Users/me/notes.txt)
//
// # Classification
//
// Classify applies the format patterns in a fixed priority order: WSL, then
// Unix, then Windows. WSL text is syntactically also Unix text, so it has to
// be recognized first. Text containing line breaks, NUL characters or a URL
// scheme prefix is never a path. Not matching any pattern is a normal
// outcome and is reported with a false second return value, not an error.
//
// # Conversion
//
// Convert rewrites a TypedPath into another format. Converting to the same
// format returns the input unchanged. Every other conversion validates its
// output against the target format's own pattern, so a TypedPath always
// holds text that is valid for its format. Conversions that cannot produce
// valid text fail with a coded error:
//
//   - NO_DRIVE_ANCHOR: the target needs a drive letter the input lacks
//     (Unix -> WSL, driveless Windows -> WSL)
//   - INVALID_OUTPUT: the rewritten text breaks the target's rules
//   - UNSUPPORTED_FORMAT: an unknown format was requested
package paths
