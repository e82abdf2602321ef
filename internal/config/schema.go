package config

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

const storedConfigSchema = `
#StoredConfig: {
	api_key?: string | null
	...
}
`

// validateStored checks decoded YAML against the #StoredConfig schema.
func validateStored(doc map[string]any) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(storedConfigSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("invalid config schema: %v", err)
	}
	def := schema.LookupPath(cue.ParsePath("#StoredConfig"))
	if !def.Exists() {
		return fmt.Errorf("invalid config schema: missing #StoredConfig")
	}
	v := def.Unify(ctx.Encode(doc))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %v", err)
	}
	return nil
}
