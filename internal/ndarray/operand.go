package ndarray

type operandKind uint8

const (
	operandInvalid operandKind = iota
	operandScalar
	operandArray
)

// Operand is the right-hand side of an elementwise operation: either a scalar
// broadcast to every element, or an array whose shape must equal the receiver's.
//
// Example:
//
//	v := ndarray.NewVector([]float64{1, 2, 3})
//	a, _ := v.Add(ndarray.Scalar(10))      // [11 12 13]
//	b, _ := v.Mul(v.Operand())             // [1 4 9]
//	c, _ := v.Sub(ndarray.Array(ndarray.Shape{3}, []float64{1, 1, 1}))
type Operand struct {
	kind  operandKind
	value float64
	shape Shape
	data  []float64
}

// Scalar returns an operand that broadcasts v across every element.
func Scalar(v float64) Operand {
	return Operand{kind: operandScalar, value: v}
}

// Array returns an operand backed by a raw row-major buffer of the given shape.
// The buffer is read, never written, by the operation that consumes it.
func Array(shape Shape, data []float64) Operand {
	return Operand{kind: operandArray, shape: shape.Clone(), data: data}
}

// IsScalar reports whether the operand broadcasts a single value.
func (o Operand) IsScalar() bool {
	return o.kind == operandScalar
}

// Shape returns the operand's shape; a scalar has the empty shape ().
func (o Operand) Shape() Shape {
	return o.shape.Clone()
}

// elementwise dispatches on the operand tag: scalars go to scalarFn, arrays of
// exactly the receiver's shape go to arrayFn.
func elementwise(
	op string,
	shape Shape,
	data []float64,
	x Operand,
	arrayFn func(a, b []float64) []float64,
	scalarFn func(a []float64, s float64) []float64,
) ([]float64, error) {
	switch x.kind {
	case operandScalar:
		return scalarFn(data, x.value), nil
	case operandArray:
		if !x.shape.Equal(shape) {
			return nil, opErrorf(op, ErrShapeMismatch, "operand shape %v, receiver shape %v", x.shape, shape)
		}
		if len(x.data) != shape.NumElements() {
			return nil, opErrorf(op, ErrShapeMismatch, "operand buffer has %d elements, shape %v needs %d",
				len(x.data), x.shape, shape.NumElements())
		}
		return arrayFn(data, x.data), nil
	default:
		return nil, opErrorf(op, ErrShapeMismatch, "uninitialized operand")
	}
}
