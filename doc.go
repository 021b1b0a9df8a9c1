// Package mazesolver solves maze images by treating every pixel as a node of
// an implicit grid graph and searching it depth-first or breadth-first.
//
// A solve runs in four stages:
//
//	imageio/   - decode the input and normalize it to pure black and white
//	gridgraph/ - wrap the pixels as a GridGraph with a thresholded open test
//	traverse/  - DFS or BFS from the start until an exit cell is popped,
//	             recording which cell first discovered each neighbor
//	render/    - paint discovered cells green and the reconstructed path red,
//	             optionally dumping numbered progress frames
//
// The solver package ties these together and reports to logrus and a
// prometheus registry (metrics/); config/ and cmd/mazesolver provide the
// viper/cobra command line.
//
// Quick start:
//
//	mazesolver -i maze.png -o solved.png --start 1,0 --exit "1801,1794-1796" --mode bfs
//
// BFS returns a shortest path (fewest moves). DFS returns some valid path and
// usually explores less of the image before reaching the exit.
package mazesolver
