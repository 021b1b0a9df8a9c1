// File: gridgraph/shortest_test.go
package gridgraph

import (
	"reflect"
	"testing"
)

// TestShortestPath_Line tests a 1×5 corridor.
// Expected: 4 edges, 5 cells.
func TestShortestPath_Line(t *testing.T) {
	gg, _ := From2D([][]int{{1, 1, 1, 1, 1}})
	path, dist, err := gg.ShortestPath(Coord{0, 0}, Coord{4, 0})
	if err != nil {
		t.Fatalf("ShortestPath error: %v", err)
	}
	if dist != 4 {
		t.Errorf("dist = %d; want 4", dist)
	}
	if len(path) != 5 {
		t.Errorf("path length = %d; want 5", len(path))
	}
}

// TestShortestPath_AroundWall routes around a central wall.
//
//	1 1 1
//	1 0 1
//	1 1 1
func TestShortestPath_AroundWall(t *testing.T) {
	gg, _ := From2D([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	path, dist, err := gg.ShortestPath(Coord{0, 0}, Coord{2, 2})
	if err != nil {
		t.Fatalf("ShortestPath error: %v", err)
	}
	want := []Coord{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}
	if dist != 4 || !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v (dist %d); want %v (dist 4)", path, dist, want)
	}
}

// TestShortestPath_WallDestination accepts a walled destination next to open cells.
func TestShortestPath_WallDestination(t *testing.T) {
	gg, _ := From2D([][]int{{1, 1, 0}})
	_, dist, err := gg.ShortestPath(Coord{0, 0}, Coord{2, 0})
	if err != nil || dist != 2 {
		t.Errorf("got dist=%d err=%v; want 2, nil", dist, err)
	}
}

// TestShortestPath_Errors covers unreachable and out-of-bounds queries.
func TestShortestPath_Errors(t *testing.T) {
	gg, _ := From2D([][]int{{1, 0, 0, 1}})
	if _, _, err := gg.ShortestPath(Coord{0, 0}, Coord{3, 0}); err != ErrNoPath {
		t.Errorf("split grid: got %v; want ErrNoPath", err)
	}
	if _, _, err := gg.ShortestPath(Coord{-1, 0}, Coord{3, 0}); err != ErrOutOfBounds {
		t.Errorf("src out of bounds: got %v; want ErrOutOfBounds", err)
	}
	if _, _, err := gg.ShortestPath(Coord{1, 0}, Coord{3, 0}); err != ErrNoPath {
		t.Errorf("walled src: got %v; want ErrNoPath", err)
	}
}
