// internal/agent/tools.go
// Toolbox: maps a declared tool name to the code that executes it.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	jsonschema "github.com/google/jsonschema-go/jsonschema"
	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrUnknownTool   = errors.New("unknown tool")
	ErrToolArguments = errors.New("invalid tool arguments")
)

// Executor runs one tool call. arguments is the raw JSON string produced by the model.
type Executor interface {
	Schema() (*jsonschema.Schema, error)
	Execute(ctx context.Context, arguments string) (any, error)
}

type tool struct {
	def    ToolDef
	params *jsonschema.Schema
	exec   Executor
}

// Toolbox is built once at startup and only read afterwards.
type Toolbox struct {
	tools map[string]tool
}

// NewToolbox pairs every catalog entry with its executor. A declared tool
// without an executor is a wiring error.
func NewToolbox(executors map[string]Executor) (*Toolbox, error) {
	defs, err := LoadToolDefs()
	if err != nil {
		return nil, fmt.Errorf("load tool defs: %w", err)
	}
	tb := &Toolbox{tools: make(map[string]tool, len(defs))}
	for _, d := range defs {
		ex, ok := executors[d.Name]
		if !ok {
			return nil, fmt.Errorf("tool %q is declared but has no executor", d.Name)
		}
		schema, err := ex.Schema()
		if err != nil {
			return nil, fmt.Errorf("schema for %q: %w", d.Name, err)
		}
		tb.tools[d.Name] = tool{def: d, params: schema, exec: ex}
	}
	return tb, nil
}

// Names lists registered tools in sorted order.
func (tb *Toolbox) Names() []string {
	keys := make([]string, 0, len(tb.tools))
	for k := range tb.tools {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Declarations renders the toolbox as function tools for a completion request.
func (tb *Toolbox) Declarations() []openai.Tool {
	out := make([]openai.Tool, 0, len(tb.tools))
	for _, name := range tb.Names() {
		t := tb.tools[name]
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.def.Name,
				Description: t.def.Description,
				Parameters:  t.params,
			},
		})
	}
	return out
}

// Execute dispatches inv to its executor and returns the JSON-encoded result.
func (tb *Toolbox) Execute(ctx context.Context, inv ToolInvocation) (json.RawMessage, error) {
	t, ok := tb.tools[inv.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, inv.Name)
	}
	out, err := t.exec.Execute(ctx, inv.Arguments)
	if err != nil {
		return nil, fmt.Errorf("tool %s: %w", inv.Name, err)
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode %s result: %w", inv.Name, err)
	}
	return b, nil
}
