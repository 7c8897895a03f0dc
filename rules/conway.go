package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

/*
ShouldToggle reports whether a cell flips state this generation under B3/S23.

A dead cell with exactly 3 live neighbors is born; a live cell with fewer than 2
or more than 3 live neighbors dies. Everything else keeps its state.
*/
func ShouldToggle(neighbors int, alive bool) bool {
	return ApplyConwayRules(neighbors, alive) != alive
}
