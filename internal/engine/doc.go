// Package engine orchestrates single-file and batch flip runs.
//
// The engine owns the per-file error boundary: decode, flip and save
// failures are reported as progress lines and turned into a boolean
// result, so one bad file never aborts a batch. Progress lines go to
// an injectable writer, which keeps the engine re-entrant and easy to
// test; it holds no ambient state.
package engine
