// Package scaffold turns interview answers into project files.
//
// Scaffolding runs a fixed sequence of steps against a project root. Each
// step is independent: a failing step is recorded and the remaining steps
// still run. In dry-run mode steps compute their output but nothing is
// written to disk.
package scaffold
