// internal/agent/tools_def.go
// Tool catalog declared to the model, embedded at build time.
package agent

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed tools.json
var toolsJSON []byte

type ToolDef struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
type ToolCatalog struct {
	Tools []ToolDef `json:"tools"`
}

var (
	toolDefs     []ToolDef
	toolDefsOnce sync.Once
	toolDefsErr  error
)

func LoadToolDefs() ([]ToolDef, error) {
	toolDefsOnce.Do(func() {
		var cat ToolCatalog
		if err := json.Unmarshal(toolsJSON, &cat); err != nil {
			toolDefsErr = err
			return
		}
		toolDefs = cat.Tools
	})
	return toolDefs, toolDefsErr
}
