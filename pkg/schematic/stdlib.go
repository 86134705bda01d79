package schematic

// Metadata keys for standard library part values.
const (
	ResistanceKey  = "resistance"
	CapacitanceKey = "capacitance"
)

func registerResistor(s *Schematic) error {
	part, err := NewPartBuilder().
		Name("Resistor").
		Port("1", "p1").
		Port("2", "p2").
		Build()
	if err != nil {
		return err
	}

	_, err = s.AddPart(part)
	return err
}

func registerCapacitor(s *Schematic) error {
	part, err := NewPartBuilder().
		Name("Capacitor").
		Port("1", "p1").
		Port("2", "p2").
		Build()
	if err != nil {
		return err
	}

	_, err = s.AddPart(part)
	return err
}

// RegisterStandardLibrary seeds the schematic with the built-in generic
// parts.
func (s *Schematic) RegisterStandardLibrary() error {
	if err := registerResistor(s); err != nil {
		return err
	}
	return registerCapacitor(s)
}
