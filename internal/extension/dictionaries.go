package extension

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"cmdlet-generator/internal/codemodel"
	"cmdlet-generator/internal/config"
	"cmdlet-generator/internal/diagnostic"
	"cmdlet-generator/internal/naming"
	"cmdlet-generator/internal/pipeline"
	"cmdlet-generator/internal/schema"
	"cmdlet-generator/internal/settings"
)

// DictionariesFile is the output written below the project's api folder.
const DictionariesFile = "dictionaries.cs"

// Dictionaries returns the stage that emits declaration, validation and
// JSON (de)serialization fragments for every container schema in the model.
// Schemas whose value shape cannot be resolved are reported as errors;
// fragments containing placeholders are reported as warnings.
func Dictionaries(logger *slog.Logger) pipeline.Plugin {
	if logger == nil {
		logger = slog.Default()
	}

	return func(ctx context.Context, s *pipeline.Session) error {
		model := s.Model()
		if model == nil {
			return nil
		}

		var cfg config.Service = config.Values{}
		if s.Config() != nil {
			cfg = s.Config()
		}

		project, err := settings.Resolve(ctx, cfg, model)
		if err != nil {
			return fmt.Errorf("resolving project settings: %w", err)
		}

		var b strings.Builder

		emitted := 0

		for _, name := range model.SchemaNames() {
			def := model.Schemas[name]
			if !def.IsContainer() {
				continue
			}

			decl, err := schema.Resolve(def, schema.WithLogger(logger))
			if err != nil {
				s.Diagnostics().AddError(diagnostic.CodeSchemaShape, err.Error(), StageDictionaries, name)
				continue
			}

			fragment := emitFragment(name, decl)
			if schema.IsPlaceholder(fragment) {
				s.Diagnostics().AddWarning(diagnostic.CodePlaceholder,
					"generated code contains unimplemented emission paths", StageDictionaries, name)
			}

			b.WriteString(fragment)

			emitted++
		}

		if emitted == 0 {
			return nil
		}

		out := path.Join(project.APIFolder, DictionariesFile)
		s.AddOutput(out, []byte(project.ApplyOverrides(header(model)+b.String())))

		logger.Info("emitted container fragments", slog.Int("schemas", emitted), slog.String("file", out))

		return nil
	}
}

func header(model *codemodel.Model) string {
	return fmt.Sprintf("// Container members generated for %s. Do not edit.\n", model.Info.Name)
}

// emitFragment renders one container schema as a property with its
// validation and serialization statements.
func emitFragment(name string, decl schema.Declaration) string {
	property := naming.PascalCase(naming.Deconstruct(name))
	if property == "" {
		property = "Value"
	}

	first, size := utf8.DecodeRuneInString(property)
	field := "this._" + string(unicode.ToLower(first)) + property[size:]

	var b strings.Builder

	fmt.Fprintf(&b, "\n// %s\n", name)
	fmt.Fprintf(&b, "private %s %s;\n", decl.Declaration(), strings.TrimPrefix(field, "this."))
	fmt.Fprintf(&b, "public %s %s { get => %s; set => %s = value; }\n", decl.Declaration(), property, field, field)

	for _, stmt := range []string{
		decl.ValidatePresence(field),
		decl.ValidateValue(field),
		decl.JSONSerializationImplementation("container", field, name),
		decl.JSONDeserializationImplementationOnProperty("json", field, name),
	} {
		if stmt != "" {
			b.WriteString(stmt)
			b.WriteString("\n")
		}
	}

	return b.String()
}
