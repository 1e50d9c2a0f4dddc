package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/nimlsp/src/nimlsp/entity"
	"github.com/uber/nimlsp/src/nimlsp/factory"
	"go.lsp.dev/protocol"
)

func TestPositionToSuggest(t *testing.T) {
	line, column := PositionToSuggest(protocol.Position{Line: 0, Character: 0})
	assert.Equal(t, 1, line)
	assert.Equal(t, 0, column)

	line, column = PositionToSuggest(protocol.Position{Line: 9, Character: 4})
	assert.Equal(t, 10, line)
	assert.Equal(t, 4, column)
}

func TestRecordToLocation(t *testing.T) {
	r := entity.Record{QualifiedName: "app.greet", FilePath: "/src/app.nim", Line: 4, Column: 5}
	assert.Equal(t, protocol.Location{
		URI: "file:///src/app.nim",
		Range: protocol.Range{
			Start: protocol.Position{Line: 3, Character: 5},
			End:   protocol.Position{Line: 3, Character: 10},
		},
	}, RecordToLocation(r))

	t.Run("clamps positions", func(t *testing.T) {
		pos := RecordToPosition(entity.Record{Line: 0, Column: -1})
		assert.Equal(t, protocol.Position{}, pos)
	})
}

func TestRecordsToLocations(t *testing.T) {
	records := []entity.Record{
		factory.Record(entity.VerbUsages, "/src/a.nim", 1),
		{QualifiedName: "noFile"},
		factory.Record(entity.VerbUsages, "/src/b.nim", 2),
	}
	locations := RecordsToLocations(records)
	require.Len(t, locations, 2)
	assert.Equal(t, protocol.DocumentURI("file:///src/a.nim"), locations[0].URI)
	assert.Equal(t, uint32(1), locations[0].Range.Start.Line)
	assert.Equal(t, protocol.DocumentURI("file:///src/b.nim"), locations[1].URI)

	assert.NotNil(t, RecordsToLocations(nil))
}

func TestRecordsToCompletionList(t *testing.T) {
	records := []entity.Record{
		{SymbolKind: "skProc", QualifiedName: "strutils.strip", Signature: "proc (s: string): string", Doc: `"Strips whitespace."`},
		{SymbolKind: "skVar", QualifiedName: "app.counter", Signature: "int", Doc: `""`},
		{SymbolKind: "skUnknown", QualifiedName: "x"},
	}
	list := RecordsToCompletionList(records)
	require.Len(t, list.Items, 3)
	assert.False(t, list.IsIncomplete)

	assert.Equal(t, "strip", list.Items[0].Label)
	assert.Equal(t, protocol.CompletionItemKindFunction, list.Items[0].Kind)
	assert.Equal(t, "proc (s: string): string", list.Items[0].Detail)
	assert.Equal(t, &protocol.MarkupContent{Kind: protocol.Markdown, Value: "Strips whitespace."}, list.Items[0].Documentation)

	assert.Equal(t, protocol.CompletionItemKindVariable, list.Items[1].Kind)
	assert.Nil(t, list.Items[1].Documentation)
	assert.Equal(t, protocol.CompletionItemKindText, list.Items[2].Kind)
}

func TestRecordsToDocumentHighlights(t *testing.T) {
	records := []entity.Record{
		{QualifiedName: "app.x", FilePath: "/src/app.nim", Line: 1, Column: 4},
		{QualifiedName: "app.x", FilePath: "/src/other.nim", Line: 2, Column: 4},
		{QualifiedName: "app.x", Line: 3, Column: 0},
	}
	highlights := RecordsToDocumentHighlights(records, "/src/app.nim")
	require.Len(t, highlights, 2)
	assert.Equal(t, protocol.DocumentHighlight{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 4},
			End:   protocol.Position{Line: 0, Character: 5},
		},
		Kind: protocol.DocumentHighlightKindText,
	}, highlights[0])
	assert.Equal(t, uint32(2), highlights[1].Range.Start.Line)
}

func TestRecordsToSymbolInformation(t *testing.T) {
	records := []entity.Record{
		{SymbolKind: "skType", QualifiedName: "app.Person", FilePath: "/src/app.nim", Line: 2, Column: 2},
		{SymbolKind: "skProc", QualifiedName: "greet", FilePath: "/src/app.nim", Line: 5, Column: 5},
	}
	symbols := RecordsToSymbolInformation(records)
	require.Len(t, symbols, 2)
	assert.Equal(t, "Person", symbols[0].Name)
	assert.Equal(t, protocol.SymbolKindClass, symbols[0].Kind)
	assert.Equal(t, "app", symbols[0].ContainerName)
	assert.Equal(t, "greet", symbols[1].Name)
	assert.Equal(t, protocol.SymbolKindFunction, symbols[1].Kind)
	assert.Empty(t, symbols[1].ContainerName)
}

func TestSymbolKindToLSP(t *testing.T) {
	tests := []struct {
		kind string
		want protocol.SymbolKind
	}{
		{"skProc", protocol.SymbolKindFunction},
		{"skMethod", protocol.SymbolKindMethod},
		{"skEnumField", protocol.SymbolKindEnumMember},
		{"skConst", protocol.SymbolKindConstant},
		{"skModule", protocol.SymbolKindModule},
		{"skLet", protocol.SymbolKindVariable},
		{"", protocol.SymbolKindVariable},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			assert.Equal(t, tt.want, SymbolKindToLSP(tt.kind))
		})
	}
}

func TestRecordsToHover(t *testing.T) {
	assert.Nil(t, RecordsToHover(nil))

	hover := RecordsToHover([]entity.Record{
		{QualifiedName: "app.greet", Signature: "proc (name: string)", Doc: `"Says hello.\nTwice."`},
		{QualifiedName: "app.ignored"},
	})
	require.NotNil(t, hover)
	assert.Equal(t, protocol.Markdown, hover.Contents.Kind)
	assert.Equal(t, "```nim\napp.greet: proc (name: string)\n```\n\nSays hello.\nTwice.", hover.Contents.Value)

	hover = RecordsToHover([]entity.Record{{QualifiedName: "app.T"}})
	assert.Equal(t, "```nim\napp.T\n```", hover.Contents.Value)
}

func TestRecordsToSignatureHelp(t *testing.T) {
	assert.Nil(t, RecordsToSignatureHelp(nil))

	help := RecordsToSignatureHelp([]entity.Record{
		{QualifiedName: "app.add", Signature: "proc (a: int; b: seq[int, ]): int {.noSideEffect.}", Doc: `"Adds."`},
		{QualifiedName: "app.noop", Signature: "proc ()"},
		{QualifiedName: "app.weird", Signature: "template"},
	})
	require.NotNil(t, help)
	require.Len(t, help.Signatures, 3)

	assert.Equal(t, "add(a: int; b: seq[int, ])", help.Signatures[0].Label)
	assert.Equal(t, "Adds.", help.Signatures[0].Documentation)
	assert.Equal(t, []protocol.ParameterInformation{{Label: "a: int"}, {Label: "b: seq[int, ]"}}, help.Signatures[0].Parameters)

	assert.Equal(t, "noop()", help.Signatures[1].Label)
	assert.Nil(t, help.Signatures[1].Parameters)
	assert.Nil(t, help.Signatures[1].Documentation)

	assert.Equal(t, "weird()", help.Signatures[2].Label)
}
