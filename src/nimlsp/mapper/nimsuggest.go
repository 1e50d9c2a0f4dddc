package mapper

import (
	"strings"

	"github.com/uber/nimlsp/src/nimlsp/entity"
	"go.lsp.dev/protocol"
)

var _symbolKinds = map[string]protocol.SymbolKind{
	"skProc":      protocol.SymbolKindFunction,
	"skFunc":      protocol.SymbolKindFunction,
	"skIterator":  protocol.SymbolKindFunction,
	"skConverter": protocol.SymbolKindFunction,
	"skMacro":     protocol.SymbolKindFunction,
	"skTemplate":  protocol.SymbolKindFunction,
	"skMethod":    protocol.SymbolKindMethod,
	"skType":      protocol.SymbolKindClass,
	"skEnumField": protocol.SymbolKindEnumMember,
	"skConst":     protocol.SymbolKindConstant,
	"skField":     protocol.SymbolKindField,
	"skModule":    protocol.SymbolKindModule,
	"skPackage":   protocol.SymbolKindPackage,
}

var _completionKinds = map[string]protocol.CompletionItemKind{
	"skProc":      protocol.CompletionItemKindFunction,
	"skFunc":      protocol.CompletionItemKindFunction,
	"skIterator":  protocol.CompletionItemKindFunction,
	"skConverter": protocol.CompletionItemKindFunction,
	"skMacro":     protocol.CompletionItemKindSnippet,
	"skTemplate":  protocol.CompletionItemKindSnippet,
	"skMethod":    protocol.CompletionItemKindMethod,
	"skType":      protocol.CompletionItemKindClass,
	"skEnumField": protocol.CompletionItemKindEnumMember,
	"skConst":     protocol.CompletionItemKindConstant,
	"skVar":       protocol.CompletionItemKindVariable,
	"skLet":       protocol.CompletionItemKindVariable,
	"skParam":     protocol.CompletionItemKindVariable,
	"skResult":    protocol.CompletionItemKindVariable,
	"skForVar":    protocol.CompletionItemKindVariable,
	"skField":     protocol.CompletionItemKindField,
	"skModule":    protocol.CompletionItemKindModule,
	"skKeyword":   protocol.CompletionItemKindKeyword,
}

// PositionToSuggest maps an LSP position to the line and column nimsuggest expects.
// nimsuggest lines are 1-based, columns are 0-based like LSP characters.
func PositionToSuggest(pos protocol.Position) (line int, column int) {
	return int(pos.Line) + 1, int(pos.Character)
}

// RecordToPosition maps the position of a record to an LSP position.
func RecordToPosition(r entity.Record) protocol.Position {
	line := r.Line - 1
	if line < 0 {
		line = 0
	}
	column := r.Column
	if column < 0 {
		column = 0
	}
	return protocol.Position{Line: uint32(line), Character: uint32(column)}
}

// RecordToRange maps a record to the range covering its symbol name.
func RecordToRange(r entity.Record) protocol.Range {
	start := RecordToPosition(r)
	end := start
	end.Character += uint32(len(r.Name()))
	return protocol.Range{Start: start, End: end}
}

// RecordToLocation maps a record to the location of its symbol.
func RecordToLocation(r entity.Record) protocol.Location {
	return protocol.Location{
		URI:   PathToDocumentURI(r.FilePath),
		Range: RecordToRange(r),
	}
}

// RecordsToLocations maps every record to a location, dropping records without a file.
func RecordsToLocations(records []entity.Record) []protocol.Location {
	locations := make([]protocol.Location, 0, len(records))
	for _, r := range records {
		if r.FilePath == "" {
			continue
		}
		locations = append(locations, RecordToLocation(r))
	}
	return locations
}

// RecordsToCompletionList maps suggestion records to a completion list.
func RecordsToCompletionList(records []entity.Record) *protocol.CompletionList {
	items := make([]protocol.CompletionItem, 0, len(records))
	for _, r := range records {
		item := protocol.CompletionItem{
			Label:  r.Name(),
			Kind:   SymbolKindToCompletionItemKind(r.SymbolKind),
			Detail: r.Signature,
		}
		if doc := r.Documentation(); doc != "" {
			item.Documentation = &protocol.MarkupContent{Kind: protocol.Markdown, Value: doc}
		}
		items = append(items, item)
	}
	return &protocol.CompletionList{Items: items}
}

// RecordsToDocumentHighlights maps highlight records that belong to file to document highlights.
func RecordsToDocumentHighlights(records []entity.Record, file string) []protocol.DocumentHighlight {
	highlights := make([]protocol.DocumentHighlight, 0, len(records))
	for _, r := range records {
		if r.FilePath != "" && r.FilePath != file {
			continue
		}
		highlights = append(highlights, protocol.DocumentHighlight{
			Range: RecordToRange(r),
			Kind:  protocol.DocumentHighlightKindText,
		})
	}
	return highlights
}

// RecordsToSymbolInformation maps outline records to symbols, using the module part of the qualified name as container.
func RecordsToSymbolInformation(records []entity.Record) []protocol.SymbolInformation {
	symbols := make([]protocol.SymbolInformation, 0, len(records))
	for _, r := range records {
		sym := protocol.SymbolInformation{
			Name:     r.Name(),
			Kind:     SymbolKindToLSP(r.SymbolKind),
			Location: RecordToLocation(r),
		}
		if i := strings.LastIndexByte(r.QualifiedName, '.'); i > 0 {
			sym.ContainerName = r.QualifiedName[:i]
		}
		symbols = append(symbols, sym)
	}
	return symbols
}

// RecordsToHover maps the first definition record to hover contents. Returns nil when there is nothing to show.
func RecordsToHover(records []entity.Record) *protocol.Hover {
	if len(records) == 0 {
		return nil
	}
	r := records[0]

	var b strings.Builder
	b.WriteString("```nim\n")
	b.WriteString(r.QualifiedName)
	if r.Signature != "" {
		b.WriteString(": ")
		b.WriteString(r.Signature)
	}
	b.WriteString("\n```")
	if doc := r.Documentation(); doc != "" {
		b.WriteString("\n\n")
		b.WriteString(doc)
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.Markdown, Value: b.String()},
	}
}

// RecordsToSignatureHelp maps context records to signature help. Returns nil when no callable is in context.
func RecordsToSignatureHelp(records []entity.Record) *protocol.SignatureHelp {
	if len(records) == 0 {
		return nil
	}
	signatures := make([]protocol.SignatureInformation, 0, len(records))
	for _, r := range records {
		sig := protocol.SignatureInformation{
			Label:      r.Name() + signatureParams(r.Signature),
			Parameters: signatureParameters(r.Signature),
		}
		if doc := r.Documentation(); doc != "" {
			sig.Documentation = doc
		}
		signatures = append(signatures, sig)
	}
	return &protocol.SignatureHelp{Signatures: signatures}
}

// SymbolKindToLSP maps a nimsuggest symbol kind to an LSP symbol kind.
func SymbolKindToLSP(kind string) protocol.SymbolKind {
	if k, ok := _symbolKinds[kind]; ok {
		return k
	}
	return protocol.SymbolKindVariable
}

// SymbolKindToCompletionItemKind maps a nimsuggest symbol kind to an LSP completion item kind.
func SymbolKindToCompletionItemKind(kind string) protocol.CompletionItemKind {
	if k, ok := _completionKinds[kind]; ok {
		return k
	}
	return protocol.CompletionItemKindText
}

// signatureParams returns the parenthesized parameter list of a signature such as "proc (a: int): string".
func signatureParams(signature string) string {
	start := strings.IndexByte(signature, '(')
	if start < 0 {
		return "()"
	}
	depth := 0
	for i := start; i < len(signature); i++ {
		switch signature[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth == 0 {
				return signature[start : i+1]
			}
		}
	}
	return signature[start:]
}

func signatureParameters(signature string) []protocol.ParameterInformation {
	params := strings.TrimSuffix(strings.TrimPrefix(signatureParams(signature), "("), ")")
	if strings.TrimSpace(params) == "" {
		return nil
	}

	var (
		result []protocol.ParameterInformation
		depth  int
		start  int
	)
	for i := 0; i <= len(params); i++ {
		if i < len(params) {
			switch params[i] {
			case '(', '[':
				depth++
				continue
			case ')', ']':
				depth--
				continue
			case ',', ';':
				if depth > 0 {
					continue
				}
			default:
				continue
			}
		}
		if label := strings.TrimSpace(params[start:i]); label != "" {
			result = append(result, protocol.ParameterInformation{Label: label})
		}
		start = i + 1
	}
	return result
}
