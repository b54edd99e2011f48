// Package cli implements the lpsolve command tree: it loads a problem file,
// calls lp.Solve, and renders the Solution as text or JSON.
package cli
