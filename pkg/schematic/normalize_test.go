package schematic

import (
	"errors"
	"strings"
	"testing"
)

// upperNormalizer uppercases every name. It exists to prove the schematic is
// normalizer-agnostic and to provoke collisions ("a" and "A" collapse).
type upperNormalizer struct{}

func (upperNormalizer) NormalizeComponentName(name string) (string, error) {
	return strings.ToUpper(name), nil
}

func (upperNormalizer) NormalizeNetName(name string) (string, error) {
	return strings.ToUpper(name), nil
}

func (upperNormalizer) NormalizePartName(name string) (string, error) {
	return strings.ToUpper(name), nil
}

func (upperNormalizer) NormalizePortName(pinName, signalName string) (string, error) {
	if signalName == "" {
		return strings.ToUpper(pinName), nil
	}
	return strings.ToUpper(signalName), nil
}

// failingNormalizer rejects one specific net name.
type failingNormalizer struct {
	upperNormalizer
	reject string
}

func (n failingNormalizer) NormalizeNetName(name string) (string, error) {
	if name == n.reject {
		return "", errors.New("invalid name: " + name)
	}
	return strings.ToUpper(name), nil
}

func TestNormalizeRewritesGraph(t *testing.T) {
	sch, _ := buildTestSchematic(t)
	if err := sch.Connect("vdd", "r1", "1"); err != nil {
		t.Fatalf("connect failed: %v", err)
	}

	if err := sch.Normalize(upperNormalizer{}); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	part, ok := sch.Part("RESISTOR")
	if !ok {
		t.Fatal("expected part under normalized name RESISTOR")
	}
	if part.Name != "RESISTOR" {
		t.Errorf("part name not rewritten: %s", part.Name)
	}

	port, ok := part.Port("1")
	if !ok {
		t.Fatal("terminal identifiers must survive normalization")
	}
	if port.Signal != "P1" {
		t.Errorf("port signal not rewritten: %s", port.Signal)
	}

	component, ok := sch.Component("R1")
	if !ok {
		t.Fatal("expected component under normalized name R1")
	}
	if component.Part != part {
		t.Error("component lost its part reference")
	}

	net, ok := sch.Net("VDD")
	if !ok {
		t.Fatal("expected net under normalized name VDD")
	}
	if len(net.Connections) != 1 || net.Connections[0].Component != component {
		t.Error("net connections must survive normalization")
	}

	if _, ok := sch.Part("resistor"); ok {
		t.Error("old part name still resolves after normalization")
	}
}

func TestNormalizeConflictIsAtomic(t *testing.T) {
	sch := New()
	for _, name := range []string{"sig", "SIG"} {
		net, err := NewNetBuilder().Name(name).Build()
		if err != nil {
			t.Fatalf("failed to build net: %v", err)
		}
		if _, err := sch.AddNet(net); err != nil {
			t.Fatalf("failed to add net: %v", err)
		}
	}
	part, _ := sch.AddPart(buildResistorPart(t, "resistor"))

	err := sch.Normalize(upperNormalizer{})
	if !errors.Is(err, ErrNameConflict) {
		t.Fatalf("expected ErrNameConflict, got %v", err)
	}

	// Nothing anywhere in the graph may have changed
	for _, name := range []string{"sig", "SIG"} {
		if _, ok := sch.Net(name); !ok {
			t.Errorf("net %s missing after failed normalization", name)
		}
	}
	if part.Name != "resistor" {
		t.Errorf("part renamed despite failed normalization: %s", part.Name)
	}
	if port, _ := part.Port("1"); port.Signal != "P1" {
		t.Errorf("port signal rewritten despite failed normalization: %s", port.Signal)
	}
}

func TestNormalizeInvalidNameIsAtomic(t *testing.T) {
	sch, _ := buildTestSchematic(t)

	err := sch.Normalize(failingNormalizer{reject: "gnd"})
	if err == nil {
		t.Fatal("expected normalization to fail")
	}

	if _, ok := sch.Net("gnd"); !ok {
		t.Error("net gnd missing after failed normalization")
	}
	if _, ok := sch.Component("r1"); !ok {
		t.Error("component r1 renamed despite failed normalization")
	}
	if _, ok := sch.Part("resistor"); !ok {
		t.Error("part resistor renamed despite failed normalization")
	}
}
