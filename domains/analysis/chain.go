package analysis

// ProviderSlot is one position of the provider chain. Provider is nil when
// the backend has no credentials.
type ProviderSlot struct {
	Name     string
	Provider Provider
}

// Selection describes which slot served a request.
type Selection struct {
	Provider     Provider
	Position     int
	FallbackUsed bool
}

// ProviderChain is an ordered list of inference backends. It only answers
// availability: the first configured slot wins. Runtime failures of the
// selected provider are not its concern and never cascade.
type ProviderChain struct {
	slots []ProviderSlot
}

func NewProviderChain(slots ...ProviderSlot) ProviderChain {
	return ProviderChain{slots: slots}
}

// Select returns the first configured provider. ok is false when none is configured.
func (c ProviderChain) Select() (Selection, bool) {
	for i, s := range c.slots {
		if s.Provider != nil {
			return Selection{Provider: s.Provider, Position: i, FallbackUsed: i > 0}, true
		}
	}
	return Selection{}, false
}

// Configured reports availability per slot name, in chain order.
func (c ProviderChain) Configured() map[string]bool {
	out := make(map[string]bool, len(c.slots))
	for _, s := range c.slots {
		out[s.Name] = s.Provider != nil
	}
	return out
}

// Primary returns the name of the first slot, configured or not.
func (c ProviderChain) Primary() string {
	if len(c.slots) == 0 {
		return ""
	}
	return c.slots[0].Name
}
