// Package paths handles everything ezlink needs to know about path strings
// before it touches them: home expansion, sanitizing, containment checks,
// the XDG locations of ezlink's own files, and the request validator that
// guards every link request.
package paths
