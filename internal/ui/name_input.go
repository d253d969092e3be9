// internal/ui/name_input.go
package ui

import "unicode"

// NameInput — поле ввода имени для таблицы рекордов.
type NameInput struct {
	runes []rune
	max   int
}

func NewNameInput(max int) *NameInput {
	return &NameInput{max: max}
}

// Append добавляет печатные символы, пока есть место.
func (n *NameInput) Append(rs []rune) {
	for _, r := range rs {
		if len(n.runes) >= n.max {
			return
		}
		if unicode.IsPrint(r) {
			n.runes = append(n.runes, r)
		}
	}
}

func (n *NameInput) Backspace() {
	if len(n.runes) > 0 {
		n.runes = n.runes[:len(n.runes)-1]
	}
}

func (n *NameInput) String() string {
	return string(n.runes)
}

func (n *NameInput) Empty() bool {
	return len(n.runes) == 0
}
