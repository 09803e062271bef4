package puzzle

import "fmt"

var directionPhrases = map[Direction]string{
	Left:  "hacia la izquierda",
	Right: "hacia la derecha",
	Up:    "hacia arriba",
	Down:  "hacia abajo",
}

// Describe renders m as a human-readable Spanish action string, e.g.
// "mover 3 hacia la derecha" or "mover carro objetivo hacia arriba 2
// espacios". It never affects search and is purely decorative.
func (b *Board) Describe(m Move) string {
	label := b.Vehicles[m.VehicleIndex].Label
	phrase := directionPhrases[m.Direction]
	if m.Steps <= 1 {
		return fmt.Sprintf("mover %s %s", label, phrase)
	}
	return fmt.Sprintf("mover %s %s %d espacios", label, phrase, m.Steps)
}
