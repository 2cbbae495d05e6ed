package launcher

// IDGenerator produces launch identifiers.
type IDGenerator interface {
	Generate() string
}
