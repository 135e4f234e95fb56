package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid is a tile map seen from above. Row index is Z, column index is X.
// Tile 0 is empty, anything else is a wall with that texture id.
type Grid struct {
	Width  int
	Height int
	tiles  []int
}

// NewGrid parses rows of digits. '.', ' ' and '0' are empty cells. Short
// rows are padded with empty cells.
func NewGrid(rows []string) (*Grid, error) {
	g := &Grid{Height: len(rows)}
	for _, row := range rows {
		if len(row) > g.Width {
			g.Width = len(row)
		}
	}
	g.tiles = make([]int, g.Width*g.Height)

	for z, row := range rows {
		for x, c := range row {
			switch {
			case c == '.' || c == ' ' || c == '0':
			case c >= '1' && c <= '9':
				g.tiles[z*g.Width+x] = int(c - '0')
			default:
				return nil, fmt.Errorf("grid row %d col %d: unexpected tile %q", z, x, c)
			}
		}
	}
	return g, nil
}

// Tile returns the tile id at (x, z). Cells outside the grid are empty.
func (g *Grid) Tile(x, z int) int {
	if x < 0 || z < 0 || x >= g.Width || z >= g.Height {
		return 0
	}
	return g.tiles[z*g.Width+x]
}

// Solid reports whether (x, z) is a wall.
func (g *Grid) Solid(x, z int) bool {
	return g.Tile(x, z) != 0
}

// BoxColliders covers every wall cell with as few boxes as a greedy scan
// finds: each uncovered wall cell starts a box that runs along its row or its
// column, whichever solid run is longer (the column on a tie). Boxes may
// overlap cells an earlier box already covers. Heights are ±scale/2.
func (g *Grid) BoxColliders(scale float32) []Spawn {
	h := scale / 2
	covered := make([]bool, len(g.tiles))
	var boxes []Spawn
	for z := 0; z < g.Height; z++ {
		for x := 0; x < g.Width; x++ {
			if covered[z*g.Width+x] || !g.Solid(x, z) {
				continue
			}

			w, d := 1, 1
			for g.Solid(x+w, z) {
				w++
			}
			for g.Solid(x, z+d) {
				d++
			}
			if w > d {
				d = 1
			} else {
				w = 1
			}

			for cz := z; cz < z+d; cz++ {
				for cx := x; cx < x+w; cx++ {
					covered[cz*g.Width+cx] = true
				}
			}

			hw, hd := float32(w)*h, float32(d)*h
			boxes = append(boxes, Spawn{
				Pos: mgl32.Vec3{float32(x)*scale + hw, 0, float32(z)*scale + hd},
				Min: mgl32.Vec3{-hw, -h, -hd},
				Max: mgl32.Vec3{hw, h, hd},
			})
		}
	}
	return boxes
}

// Planes returns an upward floor quad for every empty cell and a quad for
// every wall face that borders an empty cell inside the grid, facing it.
// Floor quads carry tile 0.
func (g *Grid) Planes(scale float32) []Plane {
	h := scale / 2
	up := mgl32.Vec3{0, scale, 0}
	var planes []Plane
	for z := 0; z < g.Height; z++ {
		for x := 0; x < g.Width; x++ {
			x0, z0 := float32(x)*scale, float32(z)*scale
			x1, z1 := x0+scale, z0+scale

			tile := g.Tile(x, z)
			if tile == 0 {
				planes = append(planes, Plane{Origin: mgl32.Vec3{x0, -h, z0}, A: mgl32.Vec3{0, 0, scale}, B: mgl32.Vec3{scale, 0, 0}})
				continue
			}

			if z > 0 && !g.Solid(x, z-1) {
				planes = append(planes, Plane{Origin: mgl32.Vec3{x1, -h, z0}, A: mgl32.Vec3{-scale, 0, 0}, B: up, Tile: tile})
			}
			if z < g.Height-1 && !g.Solid(x, z+1) {
				planes = append(planes, Plane{Origin: mgl32.Vec3{x0, -h, z1}, A: mgl32.Vec3{scale, 0, 0}, B: up, Tile: tile})
			}
			if x > 0 && !g.Solid(x-1, z) {
				planes = append(planes, Plane{Origin: mgl32.Vec3{x0, -h, z0}, A: mgl32.Vec3{0, 0, scale}, B: up, Tile: tile})
			}
			if x < g.Width-1 && !g.Solid(x+1, z) {
				planes = append(planes, Plane{Origin: mgl32.Vec3{x1, -h, z1}, A: mgl32.Vec3{0, 0, -scale}, B: up, Tile: tile})
			}
		}
	}
	return planes
}
