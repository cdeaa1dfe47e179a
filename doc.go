// Package distgrid turns bitmap test cases read from a line stream into
// distance maps: for every cell, the step distance to the nearest high cell.
//
// What is distgrid?
//
//	A small, allocation-aware toolkit made of:
//		• grid/       generic row-major Grid[T], Coordinate, Bitmap and factories
//		• reader/     line-driven state machine that frames "count / R C / rows"
//		              streams into grids and reports faults without stopping
//		• distance/   multi-source 4-neighbour distance transform with a
//		              pluggable worklist (LIFO, FIFO, Random) and summaries
//		• heatmap/    go-echarts HTML export of distance grids
//
// The distgrid command (cmd/distgrid) wires them together: stdin → reader →
// transform → stdout, configured through flags, DISTGRID_* variables and an
// optional TOML or YAML file.
//
// Why distgrid?
//
//   - Fault tolerant: one malformed case never hides the cases after it
//   - Deterministic: the distance map does not depend on worklist order
//   - Pure Go, generic over the cell type
//
// Quick start:
//
//	r, _ := reader.New(grid.BitmapFactory, func(b *grid.Bitmap) {
//		d, _ := distance.Transform(b)
//		fmt.Println(d)
//	})
//	_ = r.Run(os.Stdin)
package distgrid
