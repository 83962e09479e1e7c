package autowire

// FactoryBinding lists the candidates matched to one factory definition.
type FactoryBinding struct {
	// ID is the factory's service id.
	ID string
	// Capability is the fully-qualified name of the factory's target.
	Capability string
	// Candidates are the matched service ids in enumeration order.
	Candidates []string
}

// Plan is the outcome of discovery: which candidates go to which factory.
type Plan struct {
	Mode      Mode
	Factories []FactoryBinding
	// Unmatched holds candidates that no factory accepted.
	Unmatched []string
}

// Factory returns the binding for the factory with the given id.
func (p *Plan) Factory(id string) (FactoryBinding, bool) {
	for _, b := range p.Factories {
		if b.ID == id {
			return b, true
		}
	}
	return FactoryBinding{}, false
}

// Registrations returns the total number of (factory, candidate) pairs.
func (p *Plan) Registrations() int {
	n := 0
	for _, b := range p.Factories {
		n += len(b.Candidates)
	}
	return n
}
