package engine

import "strings"

const rule = "____________________________________________\n"

// Render draws the board as the fixed-width textual grid used by the
// interactive terminal: a foundations row, the columns grid padded to the
// tallest column, and a hand row. Cells are three characters wide and blank
// cells are three spaces. With ascii set, suit glyphs are replaced by
// S/H/D/C.
func Render(b *Board, ascii bool) string {
	var out strings.Builder

	out.WriteString("                           a    b    c    d\n")
	out.WriteString(rule)
	out.WriteString("                          ")
	for i, f := range b.foundations {
		if i > 0 {
			out.WriteString("  ")
		}
		out.WriteString(foundationCell(f, ascii))
	}
	out.WriteString("\n\n\n")

	out.WriteString("  e    f    g    h    i    j    k    l    m\n")
	out.WriteString(rule)
	for row := 0; !allColumnsShorterThan(b, row); row++ {
		for i, c := range b.columns {
			if i > 0 {
				out.WriteString("  ")
			}
			out.WriteString(columnCell(c, row, ascii))
		}
		out.WriteString("\n")
	}
	out.WriteString("\n")

	out.WriteString("  n    o    p    q    r    s    t\n")
	out.WriteString(rule)
	for _, s := range b.hand {
		out.WriteString(handCell(s, ascii))
		out.WriteString("  ")
	}
	out.WriteString("\n")

	return out.String()
}

func allColumnsShorterThan(b *Board, row int) bool {
	for _, c := range b.columns {
		if c.Len() >= row {
			return false
		}
	}
	return true
}

func foundationCell(f *Foundation, ascii bool) string {
	card, ok := f.ActiveCard()
	if !ok {
		suit := f.suit.String()
		if ascii {
			suit = f.suit.letter()
		}
		return "  " + suit
	}
	return card.cell(ascii)
}

func columnCell(c *Column, row int, ascii bool) string {
	card, ok := c.CardAt(row)
	if !ok {
		return "   "
	}
	return card.cell(ascii)
}

func handCell(s *SpotInHand, ascii bool) string {
	card, ok := s.ActiveCard()
	if !ok {
		return "   "
	}
	return card.cell(ascii)
}
