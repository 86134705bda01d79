package atopile

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/atogen/atogen/pkg/schematic"
)

// Metadata keys consulted on schematic parts and components. These match the
// property/field names KiCad writes into its netlist exports.
const (
	sheetNameKey = "Sheetname"
	mpnKey       = "MPN"
	footprintKey = "Footprint"
)

// ErrNameCollision is returned when a symbol name is defined twice in one
// project. Collisions are never resolved silently: a sheet named like a part
// is a real design ambiguity the user has to fix.
var ErrNameCollision = errors.New("name collision")

// Project is a set of atopile source files sharing a single global symbol
// namespace.
type Project struct {
	// The capitalized project name, which also names the root module.
	name string

	// filesByName maps filename to the file and the symbols it defines.
	filesByName map[string]*File

	// symbolsByName maps symbol name to its definition.
	symbolsByName map[string]Symbol

	// symbolFiles maps symbol name to the filename defining it.
	symbolFiles map[string]string
}

// File is one output source file and the ordered names of the symbols it
// defines.
type File struct {
	Filename    string
	SymbolNames []string
}

// Symbol is a named, globally-unique definable entity: a component or a
// module.
type Symbol interface {
	SymbolName() string
}

// ComponentSymbol declares one library part: its signals and the pins each
// signal maps to.
type ComponentSymbol struct {
	Name string

	// Signals maps signal name to the pin terminal identifiers carrying it.
	// A signal may map to several physical pins (e.g. ganged grounds).
	Signals map[string][]string

	// Part is the schematic part being described, kept for metadata lookups
	// at emission time.
	Part *schematic.Part
}

// SymbolName returns the component's symbol name.
func (c *ComponentSymbol) SymbolName() string { return c.Name }

// Definition is one instantiation inside a module:
//
//	R1 = new Resistor
//
// Name is "R1", TargetSymbol is "Resistor". Component points back at the
// schematic component for real instantiations and is nil for sub-module
// inclusions.
type Definition struct {
	Name         string
	TargetSymbol string
	Component    *schematic.Component
}

// ModuleSymbol declares one module: its instantiations and the nets scoped to
// it, as a map from net name to the port references it connects.
type ModuleSymbol struct {
	Name        string
	Definitions []Definition
	Nets        map[string][]string
}

// SymbolName returns the module's symbol name.
func (m *ModuleSymbol) SymbolName() string { return m.Name }

func (p *Project) findOrCreateFile(filename string) *File {
	if file, ok := p.filesByName[filename]; ok {
		return file
	}
	file := &File{Filename: filename}
	p.filesByName[filename] = file
	return file
}

func (p *Project) findModule(name string) *ModuleSymbol {
	if m, ok := p.symbolsByName[name].(*ModuleSymbol); ok {
		return m
	}
	return nil
}

// defineSymbol registers a symbol into the project-wide namespace, failing
// with ErrNameCollision if the name is already defined.
func (p *Project) defineSymbol(filename string, symbol Symbol) error {
	name := symbol.SymbolName()
	if _, ok := p.symbolsByName[name]; ok {
		return fmt.Errorf("%w: %s", ErrNameCollision, name)
	}

	file := p.findOrCreateFile(filename)
	file.SymbolNames = append(file.SymbolNames, name)
	p.symbolFiles[name] = filename
	p.symbolsByName[name] = symbol
	return nil
}

// sheetForComponent resolves the sheet a component lives on: its "Sheetname"
// metadata when present, otherwise the project name. The result is passed
// through the part-name rules so it is usable as a module and file name.
func (p *Project) sheetForComponent(component *schematic.Component) (string, error) {
	sheetName, ok := component.Metadata[sheetNameKey]
	if !ok || sheetName == "" {
		sheetName = p.name
	}
	normalized, err := Normalizer{}.NormalizePartName(sheetName)
	if err != nil {
		return "", fmt.Errorf("sheet name for %s: %w", component.Name, err)
	}
	return normalized, nil
}

// FromSchematic builds a project from a normalized schematic. The project
// name is capitalized and names the root module; components land in one
// module per sheet (components without a sheet land in the root), and each
// net is scoped to its single sheet's module or to the root when it spans
// sheets.
func FromSchematic(name string, sch *schematic.Schematic) (*Project, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty project name", schematic.ErrInvalidName)
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	name = string(runes)

	p := &Project{
		name:          name,
		filesByName:   make(map[string]*File),
		symbolsByName: make(map[string]Symbol),
		symbolFiles:   make(map[string]string),
	}

	// A library file for each part.
	for _, part := range sch.Parts() {
		signals := make(map[string][]string, len(part.Ports))
		for pinName, port := range part.Ports {
			signals[port.Signal] = append(signals[port.Signal], pinName)
		}

		symbol := &ComponentSymbol{
			Name:    part.Name,
			Signals: signals,
			Part:    part,
		}
		if err := p.defineSymbol(fmt.Sprintf("library/%s.ato", part.Name), symbol); err != nil {
			return nil, err
		}
	}

	// The root module. It is created before the components are placed so
	// that components whose sheet resolves to the project name share it.
	rootFilename := fmt.Sprintf("%s.ato", strings.ToLower(name))
	if err := p.defineSymbol(rootFilename, &ModuleSymbol{
		Name: name,
		Nets: make(map[string][]string),
	}); err != nil {
		return nil, err
	}

	// A module for each sheet, instantiating the sheet's components.
	sheetNames := make(map[string]struct{})
	for _, component := range sch.Components() {
		sheetName, err := p.sheetForComponent(component)
		if err != nil {
			return nil, err
		}
		sheetNames[sheetName] = struct{}{}

		if p.findModule(sheetName) == nil {
			module := &ModuleSymbol{
				Name: sheetName,
				Nets: make(map[string][]string),
			}
			if err := p.defineSymbol(fmt.Sprintf("%s.ato", sheetName), module); err != nil {
				return nil, err
			}
		}

		module := p.findModule(sheetName)
		module.Definitions = append(module.Definitions, Definition{
			Name:         component.Name,
			TargetSymbol: component.Part.Name,
			Component:    component,
		})
	}

	// Scope each net to a sheet module or to the root, depending on how far
	// it spans. A net whose connections all sit on one sheet is declared
	// there with unqualified references; anything else (including a net with
	// no connections at all) is declared in the root with sheet-qualified
	// references.
	for _, net := range sch.Nets() {
		sheets := make([]string, len(net.Connections))
		for i, conn := range net.Connections {
			sheet, err := p.sheetForComponent(conn.Component)
			if err != nil {
				return nil, err
			}
			sheets[i] = sheet
		}

		placeInRoot := len(sheets) == 0
		for _, sheet := range sheets {
			if sheet != sheets[0] {
				placeInRoot = true
				break
			}
		}

		moduleName := name
		if !placeInRoot {
			moduleName = sheets[0]
		}
		module := p.findModule(moduleName)
		if module == nil {
			return nil, fmt.Errorf("%w: module %s for net %s", schematic.ErrNameNotFound, moduleName, net.Name)
		}

		for i, conn := range net.Connections {
			ref := fmt.Sprintf("%s.%s", conn.Component.Name, conn.Port.Signal)
			if placeInRoot {
				ref = fmt.Sprintf("%s.%s", sheets[i], ref)
			}
			module.Nets[net.Name] = append(module.Nets[net.Name], ref)
		}
	}

	// Finally, wire the sheet modules into the root's instantiation list.
	root := p.findModule(name)
	for sheetName := range sheetNames {
		if sheetName == name {
			continue
		}
		root.Definitions = append(root.Definitions, Definition{
			Name:         sheetName,
			TargetSymbol: sheetName,
		})
	}

	return p, nil
}

// Name returns the capitalized project name.
func (p *Project) Name() string {
	return p.name
}

type importRef struct {
	filename   string
	symbolName string
}

// collectImports gathers the cross-file imports a file needs: one per
// definition whose target symbol lives in a different file, deduplicated.
func (p *Project) collectImports(filename string) map[importRef]struct{} {
	file := p.filesByName[filename]
	imports := make(map[importRef]struct{})

	for _, symbolName := range file.SymbolNames {
		module, ok := p.symbolsByName[symbolName].(*ModuleSymbol)
		if !ok {
			continue
		}
		for _, definition := range module.Definitions {
			targetFile, ok := p.symbolFiles[definition.TargetSymbol]
			if !ok || targetFile == filename {
				continue
			}
			imports[importRef{filename: targetFile, symbolName: definition.TargetSymbol}] = struct{}{}
		}
	}

	return imports
}
