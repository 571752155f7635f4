package models

// TableRegion is the column range one category's table occupies on a
// sheet holding several tables side by side. Regions on the same sheet
// never share columns.
type TableRegion struct {
	// Categoria is the canonical category assigned to the region.
	Categoria string `json:"categoria"`
	// C1 is the start column (0-based, inclusive).
	C1 int `json:"c1"`
	// C2 is the end column (0-based, exclusive).
	C2 int `json:"c2"`
}
