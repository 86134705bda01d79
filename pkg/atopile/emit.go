package atopile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Files renders every file in the project and returns filename to source
// text. Rendering is deterministic: repeated calls on the same project yield
// byte-identical output.
func (p *Project) Files() (map[string]string, error) {
	files := make(map[string]string, len(p.filesByName))
	for filename, file := range p.filesByName {
		var buf bytes.Buffer
		if err := p.writeFile(file, &buf); err != nil {
			return nil, fmt.Errorf("render %s: %w", filename, err)
		}
		files[filename] = buf.String()
	}
	return files, nil
}

// GenerateToDirectory renders the project and writes the files under
// <outputDir>/elec/src/. I/O failures abort immediately; no partial-write
// cleanup is attempted.
func (p *Project) GenerateToDirectory(outputDir string) error {
	files, err := p.Files()
	if err != nil {
		return err
	}

	for filename, content := range files {
		path := filepath.Join(outputDir, "elec", "src", filepath.FromSlash(filename))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", filename, err)
		}
	}

	return nil
}

func (p *Project) writeFile(file *File, out io.Writer) error {
	w := newIndentWriter(out)

	imports := make([]importRef, 0)
	for ref := range p.collectImports(file.Filename) {
		imports = append(imports, ref)
	}
	sort.Slice(imports, func(i, j int) bool {
		if c := naturalCompare(imports[i].filename, imports[j].filename); c != 0 {
			return c < 0
		}
		return imports[i].symbolName < imports[j].symbolName
	})

	for _, ref := range imports {
		if err := w.writeLinef("from %q import %s", ref.filename, ref.symbolName); err != nil {
			return err
		}
	}
	if len(imports) > 0 {
		if err := w.writeLine(""); err != nil {
			return err
		}
	}

	symbolNames := make([]string, len(file.SymbolNames))
	copy(symbolNames, file.SymbolNames)
	sort.Strings(symbolNames)

	for _, symbolName := range symbolNames {
		switch symbol := p.symbolsByName[symbolName].(type) {
		case *ComponentSymbol:
			if err := writeComponent(symbol, w); err != nil {
				return err
			}
		case *ModuleSymbol:
			if err := writeModule(symbol, w); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeComponent(component *ComponentSymbol, w *indentWriter) error {
	if err := w.startBlock(fmt.Sprintf("component %s:", component.Name)); err != nil {
		return err
	}

	signalNames := make([]string, 0, len(component.Signals))
	for signalName := range component.Signals {
		signalNames = append(signalNames, signalName)
	}
	naturalSort(signalNames)

	for _, signalName := range signalNames {
		if err := w.writeLinef("signal %s", signalName); err != nil {
			return err
		}

		pinNames := make([]string, len(component.Signals[signalName]))
		copy(pinNames, component.Signals[signalName])
		naturalSort(pinNames)

		for _, pinName := range pinNames {
			if err := w.writeLinef("%s ~ pin %s", signalName, pinName); err != nil {
				return err
			}
		}
		if err := w.writeLine(""); err != nil {
			return err
		}
	}

	if mpn, ok := component.Part.Metadata[mpnKey]; ok {
		if err := w.writeLinef("mpn = %q", mpn); err != nil {
			return err
		}
	}
	if footprint, ok := component.Part.Metadata[footprintKey]; ok {
		if err := w.writeLinef("footprint = %q", footprint); err != nil {
			return err
		}
	}

	w.endBlock()
	return nil
}

func writeModule(module *ModuleSymbol, w *indentWriter) error {
	if err := w.startBlock(fmt.Sprintf("module %s:", module.Name)); err != nil {
		return err
	}

	definitions := make([]Definition, len(module.Definitions))
	copy(definitions, module.Definitions)
	sort.Slice(definitions, func(i, j int) bool {
		return naturalCompare(definitions[i].Name, definitions[j].Name) < 0
	})

	for _, definition := range definitions {
		if err := w.writeLinef("%s = new %s", definition.Name, definition.TargetSymbol); err != nil {
			return err
		}

		// Only real component instantiations get a designator; sub-module
		// inclusions do not.
		if definition.Component != nil {
			if err := w.writeLinef("%s.designator = %q", definition.Name, definition.Name); err != nil {
				return err
			}
		}

		if err := w.ensureBreak(); err != nil {
			return err
		}
	}

	netNames := make([]string, 0, len(module.Nets))
	for netName := range module.Nets {
		netNames = append(netNames, netName)
	}
	naturalSort(netNames)

	for _, netName := range netNames {
		refs := dedupe(module.Nets[netName])
		naturalSort(refs)

		// A net reaching fewer than two distinct ports carries no
		// information; skip it.
		if len(refs) < 2 {
			continue
		}

		if err := w.writeLinef("signal %s", netName); err != nil {
			return err
		}
		for _, ref := range refs {
			if err := w.writeLinef("%s ~ %s", netName, ref); err != nil {
				return err
			}
		}
		if err := w.writeLine(""); err != nil {
			return err
		}
	}

	w.endBlock()
	return nil
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
