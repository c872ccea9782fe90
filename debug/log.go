package debug

import (
	"fmt"
	"os"

	"github.com/croabeast/yaml-api/encode"
	"github.com/croabeast/yaml-api/ir"
)

// Logf writes to stderr. *ir.Node arguments are rendered as YAML so
// traces stay readable.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(*ir.Node)
		if !ok {
			continue
		}
		s, err := encode.Document(x)
		if err != nil {
			args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
			continue
		}
		args[i] = s
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
