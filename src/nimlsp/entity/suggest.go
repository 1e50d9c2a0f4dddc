package entity

import (
	"strconv"
)

// Verb selects the kind of query sent to nimsuggest.
type Verb string

// Verbs understood by nimsuggest.
const (
	VerbDefinition  Verb = "def"
	VerbUsages      Verb = "use"
	VerbDotUsages   Verb = "dus"
	VerbSuggestions Verb = "sug"
	VerbContext     Verb = "context"
	VerbHighlight   Verb = "highlight"
	VerbOutline     Verb = "outline"
)

// Verbs lists every supported Verb.
var Verbs = []Verb{
	VerbDefinition,
	VerbUsages,
	VerbDotUsages,
	VerbSuggestions,
	VerbContext,
	VerbHighlight,
	VerbOutline,
}

// Valid reports whether v is one of Verbs.
func (v Verb) Valid() bool {
	for _, known := range Verbs {
		if v == known {
			return true
		}
	}
	return false
}

// Record is a single answer line returned by nimsuggest.
type Record struct {
	AnswerType    string
	SymbolKind    string
	QualifiedName string
	Signature     string
	FilePath      string
	Line          int
	Column        int
	// Doc is the raw doc string field, usually a quoted string literal. May be empty.
	Doc string
}

// Documentation returns the doc string with its surrounding quotes and escapes removed.
func (r Record) Documentation() string {
	if len(r.Doc) < 2 || r.Doc[0] != '"' {
		return r.Doc
	}
	s, err := strconv.Unquote(r.Doc)
	if err != nil {
		return r.Doc
	}
	return s
}

// Name returns the last component of the qualified name.
func (r Record) Name() string {
	for i := len(r.QualifiedName) - 1; i >= 0; i-- {
		if r.QualifiedName[i] == '.' {
			return r.QualifiedName[i+1:]
		}
	}
	return r.QualifiedName
}

// Response is the outcome of a single query.
// When Complete is false no answer is available: the analyzer died mid-response, could not be started,
// or the query was drained during shutdown. Records is nil in that case, and Raw may hold partial output.
type Response struct {
	Raw      []byte
	Records  []Record
	Complete bool
}

// Callback receives the Response for a query. It is always invoked on the scheduler's goroutine.
type Callback func(Response)
