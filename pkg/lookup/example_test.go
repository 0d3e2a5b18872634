package lookup_test

import (
	"fmt"

	"github.com/matzehuels/melib/pkg/grid"
	"github.com/matzehuels/melib/pkg/lookup"
)

func ExampleReadRow() {
	g := grid.MustFromRows([][]any{
		{"Table", 1},
		{"GRADE", "Dmin", "Dmax"},
		{"GRADE 4.8", 1.6, 10.0},
	})

	row, err := lookup.ReadRow(g, 1, "GRADE 4.8", []string{"Dmin"}, lookup.Options{})
	if err != nil {
		panic(err)
	}
	fmt.Println(row.Values)

	row, _ = lookup.ReadRow(g, 1, "GRADE 4.8", []string{"Dmax", "Sp"}, lookup.Options{})
	fmt.Println(row.Values, row.Status[1])
	// Output:
	// [1.6]
	// [10 0] missing column
}
