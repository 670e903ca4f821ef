package analysis

import "fmt"

// ToolError indicates a tool failed outside its documented contract. It
// aborts the whole request rather than producing a partial claim.
type ToolError struct {
	Tool    string
	Message string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("tool %q failed: %s", e.Tool, e.Message)
}
