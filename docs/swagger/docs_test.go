package swagger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type operation struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

var routerLine = regexp.MustCompile(`^// @Router\s+(\S+)\s+\[(\w+)\]`)

// annotatedOperations reads the swag annotations of the feature handlers.
func annotatedOperations(t *testing.T) map[string]operation {
	t.Helper()
	files, err := filepath.Glob("../../feature/*/handler.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	ops := map[string]operation{}
	for _, file := range files {
		f, err := os.Open(file)
		require.NoError(t, err)

		var current operation
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			switch {
			case strings.HasPrefix(line, "// @Summary "):
				current.Summary = strings.TrimPrefix(line, "// @Summary ")
			case strings.HasPrefix(line, "// @Description "):
				current.Description = strings.TrimPrefix(line, "// @Description ")
			default:
				if m := routerLine.FindStringSubmatch(line); m != nil {
					ops[strings.ToLower(m[2])+" "+m[1]] = current
					current = operation{}
				}
			}
		}
		require.NoError(t, scanner.Err())
		f.Close()
	}
	return ops
}

func TestDocMatchesHandlerAnnotations(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]operation `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	documented := map[string]operation{}
	for path, methods := range doc.Paths {
		for method, op := range methods {
			documented[method+" "+path] = op
		}
	}

	annotated := annotatedOperations(t)
	assert.Equal(t, len(annotated), len(documented), "documented and annotated routes differ")
	for route, want := range annotated {
		got, ok := documented[route]
		if !assert.True(t, ok, "%s is not documented", route) {
			continue
		}
		assert.Equal(t, want.Summary, got.Summary, route)
		assert.Equal(t, want.Description, got.Description, route)
	}
}
