package bfvm

// Globals exposes the machine to the debug tap. Registers are functions so they stay current across step calls.
func (m *Machine) Globals() map[string]any {
	return map[string]any{
		"ip":     m.IP,
		"dp":     m.DP,
		"cycles": m.Cycles,
		"program": func() string {
			return string(m.rom.Bytes())
		},
		"data": func() []byte {
			return m.ram.Bytes()
		},
		"read": func(addr int) (int, error) {
			b, err := m.ram.Read(addr)
			return int(b), err
		},
		"step": func() (bool, error) {
			return m.Step()
		},
	}
}
