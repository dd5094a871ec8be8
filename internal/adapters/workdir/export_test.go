package workdir

// SetLookupEnv replaces the environment lookup used to find the entry script.
func (m *Manager) SetLookupEnv(fn func(string) (string, bool)) {
	m.lookupEnv = fn
}
