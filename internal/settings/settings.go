// Package settings resolves the folder layout, module naming and feature
// flags of the generated module from configuration.
package settings

import (
	"cmp"
	"context"
	"regexp"
	"slices"
	"strings"

	"cmdlet-generator/internal/codemodel"
	"cmdlet-generator/internal/config"
	"cmdlet-generator/internal/naming"
)

// DefaultMaxInlinedParameters applies when max-inlined-parameters is unset.
const DefaultMaxInlinedParameters = 4

var (
	azPrefix   = regexp.MustCompile(`(?i)^Az`)
	clientWord = regexp.MustCompile(`(?i)client`)
)

// Project holds resolved project settings.
type Project struct {
	Azure                bool
	SkipModelCmdlets     bool
	MaxInlinedParameters int

	ModuleName       string
	ProjectNamespace string

	BaseFolder          string
	ModuleFolder        string
	CmdletFolder        string
	ModelCmdletFolder   string
	CustomFolder        string
	TestFolder          string
	RuntimeFolder       string
	APIFolder           string
	APIExtensionsFolder string
	BinFolder           string
	ObjFolder           string
	ExportsFolder       string
	DocsFolder          string

	Csproj     string
	DLL        string
	Psd1       string
	Psm1       string
	Psm1Custom string

	// Overrides maps runtime namespaces in emitted code to the project's own.
	Overrides map[string]string
}

// resolver reads settings one key at a time and keeps the first error.
type resolver struct {
	ctx context.Context
	svc config.Service
	err error
}

func (r *resolver) str(key, fallback string) string {
	if r.err != nil {
		return fallback
	}

	v, ok, err := config.String(r.ctx, r.svc, key)
	if err != nil {
		r.err = err
		return fallback
	}

	if !ok {
		return fallback
	}

	return v
}

func (r *resolver) flag(key string) bool {
	if r.err != nil {
		return false
	}

	v, err := config.Bool(r.ctx, r.svc, key)
	if err != nil {
		r.err = err
	}

	return v
}

// Resolve computes project settings. Every unset key falls back to a
// default derived from base-folder, module-folder and the module name.
func Resolve(ctx context.Context, svc config.Service, model *codemodel.Model) (*Project, error) {
	r := &resolver{ctx: ctx, svc: svc}
	p := &Project{}

	mil, ok, err := config.Int(ctx, svc, "max-inlined-parameters")
	if err != nil {
		return nil, err
	}

	p.MaxInlinedParameters = DefaultMaxInlinedParameters
	if ok {
		p.MaxInlinedParameters = mil
	}

	p.SkipModelCmdlets = r.flag("skip-model-cmdlets")
	p.Azure = r.flag("azure") || r.flag("azure-arm")
	p.ModuleName = r.str("module-name", defaultModuleName(p.Azure, model))
	p.ProjectNamespace = model.Info.Namespace

	p.BaseFolder = r.str("base-folder", ".")
	p.ModuleFolder = r.str("module-folder", p.BaseFolder+"/generated")
	p.CmdletFolder = r.str("cmdlet-folder", p.ModuleFolder+"/cmdlets")
	p.ModelCmdletFolder = r.str("model-cmdlet-folder", p.ModuleFolder+"/model-cmdlets")
	p.CustomFolder = r.str("custom-cmdlet-folder", p.BaseFolder+"/custom")
	p.TestFolder = r.str("test-folder", p.BaseFolder+"/test")
	p.RuntimeFolder = r.str("runtime-folder", p.ModuleFolder+"/runtime")
	p.APIFolder = r.str("api-folder", p.ModuleFolder+"/api")
	p.APIExtensionsFolder = r.str("api-extensions-folder", p.ModuleFolder+"/api-extensions")
	p.BinFolder = r.str("bin-folder", p.BaseFolder+"/bin")
	p.ObjFolder = r.str("obj-folder", p.BaseFolder+"/obj")
	p.ExportsFolder = r.str("exports-folder", p.BaseFolder+"/exports")
	p.DocsFolder = r.str("docs-folder", p.BaseFolder+"/docs")

	p.Csproj = r.str("csproj", p.ModuleName+".private.csproj")
	p.DLL = r.str("dll", p.BinFolder+"/"+p.ModuleName+".private.dll")
	p.Psd1 = r.str("psd1", p.ModuleName+".psd1")
	p.Psm1 = r.str("psm1", p.ModuleName+".psm1")
	p.Psm1Custom = r.str("psm1-custom", p.CustomFolder+"/"+p.ModuleName+".custom.psm1")

	if r.err != nil {
		return nil, r.err
	}

	p.Overrides = namespaceOverrides(p.ProjectNamespace)

	return p, nil
}

// defaultModuleName is "Az.<Service>" for azure modules, otherwise the
// PascalCase client name without "client".
func defaultModuleName(azure bool, model *codemodel.Model) string {
	if azure {
		return azPrefix.ReplaceAllString(model.Info.NounPrefix, "Az.")
	}

	return naming.PascalCase(naming.Deconstruct(clientWord.ReplaceAllString(model.Info.Name, "")))
}

// namespaceOverrides is empty without a namespace, leaving the runtime
// namespaces in place.
func namespaceOverrides(ns string) map[string]string {
	if ns == "" {
		return nil
	}

	return map[string]string{
		"Carbon.Json.Converters":       ns + ".Runtime.Json",
		"Carbon.Internal.Extensions":   ns + ".Runtime.Json",
		"Carbon.Internal":              ns + ".Runtime.Json",
		"Carbon.Data":                  ns + ".Runtime.Json",
		"using Data;":                  "",
		"using Parser;":                "",
		"using Converters;":            "",
		"using Internal.Extensions;":   "",
		"Carbon.Json.Parser":           ns + ".Runtime.Json",
		"Carbon.Json":                  ns + ".Runtime.Json",
		"Microsoft.Rest.ClientRuntime": ns + ".Runtime",
		"Microsoft.Rest":               ns,
	}
}

// ApplyOverrides rewrites runtime namespaces in emitted code. Longer keys
// are replaced first so "Carbon.Json.Parser" is not caught by "Carbon.Json".
func (p *Project) ApplyOverrides(code string) string {
	if len(p.Overrides) == 0 {
		return code
	}

	keys := make([]string, 0, len(p.Overrides))
	for k := range p.Overrides {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, func(a, b string) int {
		if n := cmp.Compare(len(b), len(a)); n != 0 {
			return n
		}

		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, p.Overrides[k])
	}

	return strings.NewReplacer(pairs...).Replace(code)
}
