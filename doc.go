// Package mazegrid generates, solves, and encodes “perfect” rectangular
// mazes — spanning trees over a grid graph with exactly one path between
// any two cells and no loops.
//
// 🚀 What is mazegrid?
//
//	A small, deterministic maze toolkit built from composable packages:
//		• grid/     — the R×C cell lattice with four-directional neighbor links
//		• dsu/      — disjoint-set forest (union-find) with path compression
//		• spantree/ — randomized Kruskal carving: open corridors, keep walls
//		• solve/    — iterative depth-first path discovery entrance → exit
//		• symbol/   — renderer-neutral (2R+1)×(2C+1) symbolic grid encoding
//		• maze/     — the aggregate: Generate, SolutionPath, Render
//
// ✨ Why mazegrid?
//
//   - Deterministic – same seed, same dimensions ⇒ same maze, same path
//   - Loud failures – invariant violations surface as errors, never as
//     silently wrong renders
//   - Renderer-agnostic – the symbol grid carries kinds, not characters
//     or pixels; adapters choose glyphs and colors
//
// Quick ASCII taste (a solved 2×2 maze):
//
//	X   X X X
//	X @     X
//	X @ X X X
//	X @ @ @ X
//	X X X   X
//
// Dive into maze.Generate for the one-call entry point, or wire the
// stages yourself for step-by-step construction snapshots.
//
//	go get github.com/katalvlaran/mazegrid
package mazegrid
