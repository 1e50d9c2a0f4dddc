package factory

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/uber/nimlsp/src/nimlsp/entity"
	"go.lsp.dev/jsonrpc2"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// Record is a factory for a nimsuggest answer about the proc numbered id in file.
func Record(verb entity.Verb, file string, id int) entity.Record {
	return entity.Record{
		AnswerType:    string(verb),
		SymbolKind:    "skProc",
		QualifiedName: fmt.Sprintf("mod.proc%d", id),
		Signature:     fmt.Sprintf("proc (a%d: int): string", id),
		FilePath:      file,
		Line:          id + 1,
		Column:        2,
		Doc:           fmt.Sprintf("%q", fmt.Sprintf("Documentation of proc%d.", id)),
	}
}
