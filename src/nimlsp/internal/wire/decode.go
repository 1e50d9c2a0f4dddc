package wire

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/uber/nimlsp/src/nimlsp/entity"
)

const _recordFields = 8

// Decode extracts every well-formed record from a response.
// Lines that do not have the record shape are skipped, the analyzer interleaves diagnostics with answers.
// The result is never nil.
func Decode(raw []byte) []entity.Record {
	records := make([]entity.Record, 0)
	for _, line := range bytes.Split(raw, []byte("\n")) {
		if r, ok := decodeLine(string(bytes.TrimRight(line, "\r"))); ok {
			records = append(records, r)
		}
	}
	return records
}

func decodeLine(line string) (entity.Record, bool) {
	if line == "" {
		return entity.Record{}, false
	}

	// Newer analyzers append fields such as quality and prefix, only the first eight are used.
	fields := strings.SplitN(line, "\t", _recordFields+1)
	if len(fields) < _recordFields {
		return entity.Record{}, false
	}

	lineNum, err := strconv.Atoi(fields[5])
	if err != nil {
		return entity.Record{}, false
	}
	column, err := strconv.Atoi(fields[6])
	if err != nil {
		return entity.Record{}, false
	}

	return entity.Record{
		AnswerType:    fields[0],
		SymbolKind:    fields[1],
		QualifiedName: fields[2],
		Signature:     fields[3],
		FilePath:      fields[4],
		Line:          lineNum,
		Column:        column,
		Doc:           fields[7],
	}, true
}
