// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// under reports whether path is pkg itself or one of its subpackages.
func under(path, pkg string) bool {
	return path == pkg || strings.HasPrefix(path, pkg+"/")
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	front := []string{"loopcmp/internal/cli", "loopcmp/internal/app", "loopcmp/internal/appshell", "loopcmp/cmd"}
	bans := map[string][]string{
		"loopcmp/internal/sweep":     append([]string{"loopcmp/internal/output", "loopcmp/internal/writers"}, front...),
		"loopcmp/internal/output":    append([]string{"loopcmp/internal/writers"}, front...),
		"loopcmp/internal/writers":   front,
		"loopcmp/internal/jsonutil":  append([]string{"loopcmp/internal/sweep"}, front...),
		"loopcmp/internal/jsonlutil": append([]string{"loopcmp/internal/sweep"}, front...),
		"loopcmp/pkg/api":            append([]string{"loopcmp/internal"}, front...),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "loopcmp/") {
			continue
		}
		for owner, forbidden := range bans {
			if !under(p.ImportPath, owner) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if under(dep, ban) {
						violations = append(violations, p.ImportPath+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
