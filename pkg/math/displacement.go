package math

// Displacement is an immutable from/to pair describing a transition in
// position or angle.
type Displacement[T any] struct {
	From T
	To   T
}

// NewDisplacement returns the transition from -> to.
func NewDisplacement[T any](from, to T) Displacement[T] {
	return Displacement[T]{From: from, To: to}
}

// Reversed returns the opposite transition. The receiver is not modified.
func (d Displacement[T]) Reversed() Displacement[T] {
	return Displacement[T]{From: d.To, To: d.From}
}

// Delta returns To - From for a position displacement.
func Delta(d Displacement[Vec3]) Vec3 {
	return d.To.Sub(d.From)
}

// Rise returns the elevation change of a position displacement.
func Rise(d Displacement[Vec3]) float32 {
	return d.To.Y - d.From.Y
}
