package netlist

import (
	"errors"
	"strings"
	"testing"

	"github.com/atogen/atogen/pkg/atopile"
	"github.com/atogen/atogen/pkg/schematic"
)

func parseSample(t *testing.T) *Netlist {
	t.Helper()
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}
	nl, err := parser.ParseString(sampleNetlist)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	return nl
}

func TestToSchematic(t *testing.T) {
	sch, err := ToSchematic(parseSample(t))
	if err != nil {
		t.Fatalf("ToSchematic failed: %v", err)
	}

	// Standard library parts plus the netlist's own
	for _, name := range []string{"Resistor", "Capacitor", "R", "C"} {
		if _, ok := sch.Part(name); !ok {
			t.Errorf("expected part %s", name)
		}
	}

	part, _ := sch.Part("R")
	if part.Metadata["Footprint"] != "Resistor_SMD:R_0805" {
		t.Errorf("part metadata = %v", part.Metadata)
	}
	port, ok := part.Port("1")
	if !ok {
		t.Fatal("part R missing pin 1")
	}
	if port.Signal != "~" {
		t.Errorf("pin 1 signal = %q", port.Signal)
	}

	r1, ok := sch.Component("R1")
	if !ok {
		t.Fatal("expected component R1")
	}
	if r1.Part != part {
		t.Error("R1 does not reference part R")
	}
	if r1.Metadata["Sheetname"] != "Amp" {
		t.Errorf("R1 metadata = %v", r1.Metadata)
	}

	net, ok := sch.Net("/vdd")
	if !ok {
		t.Fatal("expected net /vdd")
	}
	if len(net.Connections) != 2 {
		t.Errorf("expected 2 connections on /vdd, got %d", len(net.Connections))
	}
}

func TestToSchematicUnknownPart(t *testing.T) {
	nl := parseSample(t)
	nl.Components[0].Libsource.Part = "Missing"

	_, err := ToSchematic(nl)
	if !errors.Is(err, schematic.ErrNameNotFound) {
		t.Fatalf("expected ErrNameNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "Missing") {
		t.Errorf("error does not name the missing part: %v", err)
	}
}

func TestToSchematicUnknownComponent(t *testing.T) {
	nl := parseSample(t)
	nl.Nets[0].Nodes[0].Ref = "R99"

	_, err := ToSchematic(nl)
	if !errors.Is(err, schematic.ErrNameNotFound) {
		t.Fatalf("expected ErrNameNotFound, got %v", err)
	}
}

func TestToSchematicUnknownPin(t *testing.T) {
	nl := parseSample(t)
	nl.Nets[0].Nodes[0].Pin = "99"

	_, err := ToSchematic(nl)
	if !errors.Is(err, schematic.ErrNameNotFound) {
		t.Fatalf("expected ErrNameNotFound, got %v", err)
	}
}

const pipelineNetlist = `(export (version "E")
  (components
    (comp (ref "R1")
      (value "10k")
      (libsource (lib "Device") (part "R2512"))
      (property (name "Sheetname") (value "Amp")))
    (comp (ref "C1")
      (value "100n")
      (libsource (lib "Device") (part "C0805"))
      (property (name "Sheetname") (value "Psu"))))
  (libparts
    (libpart (lib "Device") (part "R2512")
      (pins
        (pin (num "1") (name "P1") (type "passive"))
        (pin (num "2") (name "P2") (type "passive"))))
    (libpart (lib "Device") (part "C0805")
      (pins
        (pin (num "1") (name "P1") (type "passive"))
        (pin (num "2") (name "P2") (type "passive")))))
  (nets
    (net (code "1") (name "/vdd")
      (node (ref "R1") (pin "1"))
      (node (ref "C1") (pin "1")))
    (net (code "2") (name "GND")
      (node (ref "R1") (pin "2"))
      (node (ref "C1") (pin "2")))))`

// TestConvertPipeline runs the whole chain: parse, ingest, normalize, build,
// render.
func TestConvertPipeline(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}
	nl, err := parser.ParseString(pipelineNetlist)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	sch, err := ToSchematic(nl)
	if err != nil {
		t.Fatalf("ToSchematic failed: %v", err)
	}

	if err := sch.Normalize(atopile.Normalizer{}); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	project, err := atopile.FromSchematic("board", sch)
	if err != nil {
		t.Fatalf("FromSchematic failed: %v", err)
	}

	files, err := project.Files()
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}

	root, ok := files["board.ato"]
	if !ok {
		t.Fatalf("missing root file, got %v", keys(files))
	}

	// R1 sits on sheet Amp, C1 on sheet Psu, so both nets span sheets and
	// land in the root with qualified references. Net names normalize:
	// "/vdd" loses its slash.
	output := joinFiles(files)
	for _, want := range []string{
		"module Amp:",
		"R1 = new R2512",
		`from "library/R2512.ato" import R2512`,
		"signal GND",
		"GND ~ Amp.R1.P2",
		"GND ~ Psu.C1.P2",
		"signal vdd",
		"vdd ~ Amp.R1.P1",
		"vdd ~ Psu.C1.P1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q", want)
		}
	}

	if !strings.Contains(root, "Amp = new Amp") || !strings.Contains(root, "Psu = new Psu") {
		t.Errorf("root does not instantiate the sheets:\n%s", root)
	}
}

func keys(files map[string]string) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	return names
}

func joinFiles(files map[string]string) string {
	var b strings.Builder
	for _, content := range files {
		b.WriteString(content)
	}
	return b.String()
}
