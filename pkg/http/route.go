package http

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

func getRouteName(method, path string) string {
	path = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}
		if r == '{' || r == '}' {
			return -1
		}
		return '_'
	}, strings.Trim(path, "/"))

	return strcase.ToSnake(method + "_" + path)
}
