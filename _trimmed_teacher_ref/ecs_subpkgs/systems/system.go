package systems

// System interface that all systems must implement
type System interface {
	Apply()
}
