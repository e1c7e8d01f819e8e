package defs

// Cell is a grid coordinate (column, row).
type Cell struct {
	X, Y int
}

// MapLayout is a static path supplied to the simulation.
type MapLayout struct {
	ID          string
	Name        string
	Description string
	Path        []Cell
}

func run(cells []Cell, fromX, toX, y int) []Cell {
	step := 1
	if toX < fromX {
		step = -1
	}
	for x := fromX; x != toX; x += step {
		cells = append(cells, Cell{x, y})
	}
	return cells
}

func column(cells []Cell, x, fromY, toY int) []Cell {
	step := 1
	if toY < fromY {
		step = -1
	}
	for y := fromY; y != toY; y += step {
		cells = append(cells, Cell{x, y})
	}
	return cells
}

// Layouts returns the built-in path layouts. Диапазоны полуоткрытые: [from, to).
func Layouts() []MapLayout {
	straight := run([]Cell{{0, 5}}, 1, 20, 5)

	zigzag := []Cell{{0, 5}}
	zigzag = run(zigzag, 1, 19, 5)
	zigzag = column(zigzag, 19, 5, 10)
	zigzag = run(zigzag, 19, 0, 10)
	zigzag = column(zigzag, 0, 10, 15)
	zigzag = run(zigzag, 0, 20, 15)

	spiral := []Cell{{0, 2}}
	spiral = run(spiral, 1, 18, 2)
	spiral = column(spiral, 18, 2, 16)
	spiral = run(spiral, 18, 2, 16)
	spiral = column(spiral, 2, 16, 4)
	spiral = run(spiral, 2, 16, 4)
	spiral = column(spiral, 16, 4, 14)
	spiral = run(spiral, 16, 4, 14)
	spiral = column(spiral, 4, 14, 6)
	spiral = run(spiral, 4, 14, 6)
	spiral = column(spiral, 14, 6, 8)
	spiral = run(spiral, 14, 9, 8)

	return []MapLayout{
		{ID: "straight", Name: "Straight Path", Description: "A straightforward path perfect for beginners", Path: straight},
		{ID: "zigzag", Name: "Zigzag Path", Description: "A challenging path with multiple turns", Path: zigzag},
		{ID: "spiral", Name: "Spiral Path", Description: "A complex spiral path for experienced players", Path: spiral},
	}
}

// Layout finds a built-in layout by ID.
func Layout(id string) (MapLayout, bool) {
	for _, l := range Layouts() {
		if l.ID == id {
			return l, true
		}
	}
	return MapLayout{}, false
}
