package extractor

import (
	"fmt"
	"unicode/utf8"
)

func readText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: text is not valid utf-8", ErrMalformed)
	}
	return string(data), nil
}
