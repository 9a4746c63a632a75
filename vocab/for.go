package vocab

import (
	"log/slog"
	"strings"

	"github.com/coecms/zenmeta/plan"
)

// ResolveForCodes maps a 2008 FOR code (or its name) to the corresponding
// 2020 classification entries. A 2008 code may fan out to several 2020
// codes. An unrecognised input returns an empty sequence and is logged,
// never an error, so a bad keyword cannot abort a batch run.
func ResolveForCodes(code2008 string) []plan.ForCode {
	load()

	key := strings.TrimSpace(code2008)
	entries, ok := forByCode[key]
	if !ok {
		entries, ok = forByName[key]
	}
	if !ok {
		slog.Warn("unknown 2008 FOR code", "code", key)
		return nil
	}

	result := make([]plan.ForCode, 0, len(entries))
	for _, e := range entries {
		result = append(result, plan.ForCode{Code: e.Code, Name: e.Name})
	}
	return result
}

// LooksLikeForCode reports whether a keyword token is a FOR classification
// code rather than a free-text term. Source records encode FOR codes as
// keywords starting with a zero digit.
func LooksLikeForCode(keyword string) bool {
	return len(keyword) > 0 && keyword[0] == '0'
}
