package namespace

// Kind discriminates the two container flavours a Namespace can have.
type Kind int

const (
	// KindModule is a module-like namespace: leaves are plain bindings.
	KindModule Kind = iota
	// KindClass is a class-like namespace: leaves behave as instance members.
	KindClass
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindClass:
		return "class"
	default:
		return "unknown"
	}
}
