package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"text/template"

	"station-generator/internal/common"
)

// importSpec describes one import of the generated file.
type importSpec struct {
	Alias string
	Path  string
}

type fileData struct {
	PackageName string
	Imports     []importSpec
	Lines       []string
}

// Render produces the formatted setup file from the committed statements.
// Rendering is deterministic: statement order is emission order and imports
// are sorted, so identical input always yields identical output.
func (c *Context) Render() (GeneratedFile, error) {
	data := fileData{PackageName: c.cfg.PackageName}

	paths := make([]string, 0, len(c.imports)+1)
	// The setup function signature always needs the application package.
	paths = append(paths, c.cfg.DriverModule+"/app")

	for p := range c.imports {
		if p != c.cfg.DriverModule+"/app" {
			paths = append(paths, p)
		}
	}

	sort.Strings(paths)

	for _, p := range paths {
		data.Imports = append(data.Imports, importSpec{Path: p})
	}

	seen := map[string]struct{}{}
	for i, im := range data.Imports {
		alias := common.PkgAlias(im.Path)
		if _, dup := seen[alias]; dup {
			data.Imports[i].Alias = alias + IntLit(i)
		}

		seen[alias] = struct{}{}
	}

	for _, s := range c.stmts {
		data.Lines = append(data.Lines, s.Line())
	}

	var buf bytes.Buffer
	if err := setupTemplate.Execute(&buf, data); err != nil {
		return GeneratedFile{}, fmt.Errorf("executing setup template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("formatting generated code: %w\n%s", err, buf.String())
	}

	return GeneratedFile{Filename: c.cfg.Filename, Content: formatted}, nil
}

var setupTemplate = template.Must(template.New("setup").Parse(`// Code generated by station-generator. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
// Setup wires the configured sensors onto their driver instances.
func Setup(dev *app.Application) {
{{range .Lines}}	{{.}}
{{end}}}
`))
