package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/dept-reports/pkg/runtime/app"
	"github.com/de-tools/dept-reports/pkg/services/schema"
)

// Provider returns the wired application. It is resolved when a command runs,
// after persistent flags have been parsed.
type Provider func() (*app.App, error)

// readInstance decodes a JSON form from path ("-" reads in) into inst.
func readInstance(path string, in io.Reader, inst schema.Instance) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read form %s: %w", path, err)
	}
	if err := json.Unmarshal(data, inst); err != nil {
		return fmt.Errorf("failed to decode form %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
