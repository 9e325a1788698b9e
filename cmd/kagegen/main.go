// Command kagegen embeds Kage shader programs into a Go source file. Each
// *.kage file in the input directory becomes an exported []byte variable;
// programs are compiled first so broken shaders fail the generation
// instead of the game.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/tools/imports"
)

type program struct {
	VarName string
	File    string
}

const fileTemplate = `// Code generated by kagegen. DO NOT EDIT.

package {{.Package}}

import _ "embed"

{{range .Programs}}//go:embed "{{.File}}"
var {{.VarName}} []byte

{{end}}`

func main() {
	dir := flag.String("dir", ".", "Directory containing .kage programs.")
	pkg := flag.String("pkg", "shaders", "Package name of the generated file.")
	out := flag.String("out", "embed.go", "Output file name, relative to -dir.")
	flag.Parse()

	// Glob results come back sorted, which keeps the output stable.
	paths, err := filepath.Glob(filepath.Join(*dir, "*.kage"))
	if err != nil {
		log.Fatalf("kagegen: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("kagegen: no .kage programs under %s", *dir)
	}

	programs := make([]program, 0, len(paths))
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("kagegen: %v", err)
		}
		s, err := ebiten.NewShader(src)
		if err != nil {
			log.Fatalf("kagegen: %s does not compile: %v", path, err)
		}
		s.Deallocate()

		file := filepath.Base(path)
		programs = append(programs, program{
			VarName: exportName(strings.TrimSuffix(file, filepath.Ext(file))),
			File:    file,
		})
	}

	var buf bytes.Buffer
	tmpl := template.Must(template.New("embed").Parse(fileTemplate))
	if err := tmpl.Execute(&buf, map[string]any{
		"Package":  *pkg,
		"Programs": programs,
	}); err != nil {
		log.Fatalf("kagegen: %v", err)
	}

	outPath := filepath.Join(*dir, *out)
	formatted, err := imports.Process(outPath, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		log.Fatalf("kagegen: format: %v", err)
	}

	if err := os.WriteFile(outPath, formatted, 0o644); err != nil {
		log.Fatalf("kagegen: %v", err)
	}
	fmt.Printf("kagegen: wrote %s (%d programs)\n", outPath, len(programs))
}

// exportName converts a snake_case program name into an exported Go
// identifier: motion_blur becomes MotionBlur.
func exportName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
