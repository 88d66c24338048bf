package terminal

import "strings"

// Row is one table line plus the color it should be tinted with.
type Row struct {
	Color string
	Cells []string
}

// alignRows pads cells column by column so rows line up, and joins each
// row into one string. spad is glued to every cell before padding so
// the fill character never touches the text itself.
func alignRows(rows []Row, pad, spad string) []Row {
	lengths := []int{}
	for _, r := range rows {
		for j, cell := range r.Cells {
			for len(lengths) <= j {
				lengths = append(lengths, 0)
			}
			if l := len(cell) + len(spad); l > lengths[j] {
				lengths[j] = l
			}
		}
	}

	aligned := make([]Row, 0, len(rows))
	for _, r := range rows {
		cells := make([]string, len(r.Cells))
		for j, cell := range r.Cells {
			cells[j] = ljust(cell+spad, lengths[j], pad)
		}
		aligned = append(aligned, Row{Color: r.Color, Cells: []string{strings.Join(cells, " ")}})
	}
	return aligned
}

func ljust(s string, width int, pad string) string {
	if pad == "" {
		pad = " "
	}
	var sb strings.Builder
	sb.WriteString(s)
	for sb.Len() < width {
		sb.WriteString(pad)
	}
	return sb.String()
}
