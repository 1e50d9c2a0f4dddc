package mapper

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

const _fileURIPrefix = "file://"

// RequestToInitializeParams maps the parameters from a jsonrpc2.Request into protocol.InitializeParams.
func RequestToInitializeParams(req jsonrpc2.Request) (*protocol.InitializeParams, error) {
	params := protocol.InitializeParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToInitializedParams maps the parameters from a jsonrpc2.Request into protocol.InitializedParams.
func RequestToInitializedParams(req jsonrpc2.Request) (*protocol.InitializedParams, error) {
	params := protocol.InitializedParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToDidOpenTextDocumentParams maps the parameters from a jsonrpc2.Request into protocol.DidOpenTextDocumentParams.
func RequestToDidOpenTextDocumentParams(req jsonrpc2.Request) (*protocol.DidOpenTextDocumentParams, error) {
	params := protocol.DidOpenTextDocumentParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToDidChangeTextDocumentParams maps the parameters from a jsonrpc2.Request into protocol.DidChangeTextDocumentParams.
func RequestToDidChangeTextDocumentParams(req jsonrpc2.Request) (*protocol.DidChangeTextDocumentParams, error) {
	params := protocol.DidChangeTextDocumentParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToDidSaveTextDocumentParams maps the parameters from a jsonrpc2.Request into protocol.DidSaveTextDocumentParams.
func RequestToDidSaveTextDocumentParams(req jsonrpc2.Request) (*protocol.DidSaveTextDocumentParams, error) {
	params := protocol.DidSaveTextDocumentParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToDidCloseTextDocumentParams maps the parameters from a jsonrpc2.Request into protocol.DidCloseTextDocumentParams.
func RequestToDidCloseTextDocumentParams(req jsonrpc2.Request) (*protocol.DidCloseTextDocumentParams, error) {
	params := protocol.DidCloseTextDocumentParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToDefinitionParams maps the parameters from a jsonrpc2.Request into protocol.DefinitionParams.
func RequestToDefinitionParams(req jsonrpc2.Request) (*protocol.DefinitionParams, error) {
	params := protocol.DefinitionParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToReferencesParams maps the parameters from a jsonrpc2.Request into protocol.ReferenceParams.
func RequestToReferencesParams(req jsonrpc2.Request) (*protocol.ReferenceParams, error) {
	params := protocol.ReferenceParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToCompletionParams maps the parameters from a jsonrpc2.Request into protocol.CompletionParams.
func RequestToCompletionParams(req jsonrpc2.Request) (*protocol.CompletionParams, error) {
	params := protocol.CompletionParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToDocumentHighlightParams maps the parameters from a jsonrpc2.Request into protocol.DocumentHighlightParams.
func RequestToDocumentHighlightParams(req jsonrpc2.Request) (*protocol.DocumentHighlightParams, error) {
	params := protocol.DocumentHighlightParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToDocumentSymbolParams maps the parameters from a jsonrpc2.Request into protocol.DocumentSymbolParams.
func RequestToDocumentSymbolParams(req jsonrpc2.Request) (*protocol.DocumentSymbolParams, error) {
	params := protocol.DocumentSymbolParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToHoverParams maps the parameters from a jsonrpc2.Request into protocol.HoverParams.
func RequestToHoverParams(req jsonrpc2.Request) (*protocol.HoverParams, error) {
	params := protocol.HoverParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToSignatureHelpParams maps the parameters from a jsonrpc2.Request into protocol.SignatureHelpParams.
func RequestToSignatureHelpParams(req jsonrpc2.Request) (*protocol.SignatureHelpParams, error) {
	params := protocol.SignatureHelpParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToTextDocumentPositionParams maps the parameters from a jsonrpc2.Request into protocol.TextDocumentPositionParams.
func RequestToTextDocumentPositionParams(req jsonrpc2.Request) (*protocol.TextDocumentPositionParams, error) {
	params := protocol.TextDocumentPositionParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// InitializationOptions holds the nimlsp specific options an IDE may pass with initialize.
type InitializationOptions struct {
	ProjectFile string `json:"projectFile"`
}

// InitializeParamsToOptions extracts the nimlsp options from initialize parameters. Unknown or malformed options are ignored.
func InitializeParamsToOptions(params *protocol.InitializeParams) InitializationOptions {
	opts := InitializationOptions{}
	if params == nil || params.InitializationOptions == nil {
		return opts
	}
	raw, err := json.Marshal(params.InitializationOptions)
	if err != nil {
		return opts
	}
	_ = json.Unmarshal(raw, &opts)
	return opts
}

// InitializeParamsToRootPath returns the file system path of the first workspace folder, falling back to the root URI.
func InitializeParamsToRootPath(params *protocol.InitializeParams) string {
	if params == nil {
		return ""
	}
	for _, folder := range params.WorkspaceFolders {
		if p, err := DocumentURIToPath(protocol.DocumentURI(folder.URI)); err == nil {
			return p
		}
	}
	if p, err := DocumentURIToPath(params.RootURI); err == nil {
		return p
	}
	return ""
}

// DocumentURIToPath returns the file system path of a file URI.
func DocumentURIToPath(u protocol.DocumentURI) (string, error) {
	if !strings.HasPrefix(string(u), _fileURIPrefix) {
		return "", fmt.Errorf("%q is not a file uri", u)
	}
	return u.Filename(), nil
}

// PathToDocumentURI returns the file URI of a file system path.
func PathToDocumentURI(path string) protocol.DocumentURI {
	return uri.File(path)
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err)
}
