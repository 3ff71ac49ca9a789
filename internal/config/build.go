package config

import (
	"station-generator/internal/gen"
)

// Build runs code generation for a validated document and returns the
// generated files. Validate must have been called and be error-free;
// resolution failures (undefined or mistyped identifiers) still surface
// here as build errors.
func (d *Document) Build(cfg gen.GeneratorConfig) ([]gen.GeneratedFile, error) {
	ctx := gen.NewContext(cfg)

	for _, b := range d.blocks {
		ctx.EnqueueTask(b.handler.Priority(), b.Label(), func(tc *gen.TaskContext) error {
			return b.handler.ToCode(tc, b.conf)
		})
	}

	if err := ctx.Run(); err != nil {
		return nil, err
	}

	file, err := ctx.Render()
	if err != nil {
		return nil, err
	}

	return []gen.GeneratedFile{file}, nil
}
