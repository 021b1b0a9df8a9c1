// Package gridgraph treats a 2D grid of cells (typically the pixels of a maze
// image) as an implicit graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable Threshold.
//   - IsOpen/Bounds expose the grid as a boolean field to search engines.
//   - FromImage classifies each pixel by gray luminance with one threshold test.
//   - Neighbors yields orthogonal neighbors in the fixed order W, E, N, S.
//   - ConnectedComponents / ComponentOf identify reachable open regions.
//   - ShortestPath computes a minimum-edge path with a plain BFS.
//
// Why:
//
//   - Maze solving: hide pixel formats behind a tiny contract.
//   - Verification: ComponentOf and ShortestPath give engine-independent
//     answers to check traversal results against.
//
// Complexity:
//
//   - IsOpen, InBounds:      O(1).
//   - FromImage:             O(W×H), Memory: O(W×H).
//   - ConnectedComponents:   O(W×H), Memory: O(W×H).
//   - ShortestPath:          O(W×H), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Threshold: minimum value considered "open".
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrNoPath: no open path exists between two cells.
package gridgraph
