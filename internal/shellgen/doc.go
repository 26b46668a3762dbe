// Package shellgen generates shell source for the running session to eval:
// argument quoting that round-trips through shell word splitting, the
// wrapper function-body template, and the shw-create integration snippets
// for Zsh, Bash and Fish.
package shellgen
