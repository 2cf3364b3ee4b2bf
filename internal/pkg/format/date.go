package format

import (
	"fmt"
	"strings"
	"time"
)

// Placeholder выводится вместо пустой даты
const Placeholder = "—"

// месяцы в родительном падеже, сокращения как в ru-RU dateStyle=medium
var shortMonths = [...]string{
	"янв.", "февр.", "мар.", "апр.", "мая", "июн.",
	"июл.", "авг.", "сент.", "окт.", "нояб.", "дек.",
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Date форматирует ISO-дату как «10 апр. 2025 г.».
// Пустая строка даёт прочерк, нераспознанная (в том числе из одних пробелов)
// возвращается как есть.
func Date(s string) string {
	if s == "" {
		return Placeholder
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(s))
		if err != nil {
			continue
		}
		return fmt.Sprintf("%d %s %d г.", t.Day(), shortMonths[t.Month()-1], t.Year())
	}

	return s
}
