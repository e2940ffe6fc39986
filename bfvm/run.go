package bfvm

import "context"

// Run steps the machine until it halts, faults, or ctx is done.
func (m *Machine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		halted, err := m.Step()
		if err != nil {
			return err
		}
		if halted {
			m.logger.InfoContext(ctx, "ip passed end of program",
				"ip", m.ip,
				"cycles", m.cycles,
			)
			return nil
		}
	}
}
