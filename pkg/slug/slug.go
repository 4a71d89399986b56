package slug

import (
	"regexp"
	"strings"
)

var invalidChars = regexp.MustCompile(`[^a-z0-9-]+`)

// Make gera um slug a partir de um texto: minúsculas, espaços viram hífens
// e caracteres inválidos são removidos
func Make(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.ReplaceAll(s, " ", "-")
	s = invalidChars.ReplaceAllString(s, "")
	return s
}
