package autofill

import (
	"bytes"
	"fmt"
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DelimiterAuto asks ResolveDelimiter to sniff the delimiter from the data.
const DelimiterAuto = "auto"

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file. Defaults to a comma.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 && len(delimiters[0]) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// ResolveDelimiter interprets a user-supplied delimiter. "auto" sniffs it from
// data, `\t` and "tab" mean a tab, and anything else must be a single rune.
func ResolveDelimiter(flagValue string, data []byte) (rune, error) {
	switch flagValue {
	case DelimiterAuto:
		return DetermineDelimiter(bytes.NewReader(data)), nil
	case `\t`, "tab":
		return '\t', nil
	}

	runes := []rune(flagValue)
	if len(runes) != 1 {
		return 0, fmt.Errorf("Delimiter %q must be a single character, 'tab', or '%s'", flagValue, DelimiterAuto)
	}

	return runes[0], nil
}
