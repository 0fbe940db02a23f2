package multiply_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/multiply"
)

// TestScalarProductMatchesMultiply checks every cell against the single-cell primitive.
func TestScalarProductMatchesMultiply(t *testing.T) {
	rng := matrix.NewSource(fixtureSeed)
	left, err := matrix.GenerateFull(9, 13, rng)
	require.NoError(t, err)
	right, err := matrix.GenerateFull(13, 6, rng)
	require.NoError(t, err)

	result := matrix.MustDense(9, 6)
	require.True(t, multiply.Serial{}.Multiply(left, right, result))

	for r := 0; r < 9; r++ {
		for c := 0; c < 6; c++ {
			want, err := multiply.ScalarProduct(left, right, r, c)
			require.NoError(t, err)
			got, err := result.At(r, c)
			require.NoError(t, err)
			require.Equal(t, want, got, "(%d,%d)", r, c)
		}
	}
}

func TestScalarProductErrors(t *testing.T) {
	a := matrix.MustDense(2, 3)
	b := matrix.MustDense(3, 4)

	_, err := multiply.ScalarProduct(b, a, 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = multiply.ScalarProduct(nil, b, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = multiply.ScalarProduct(a, b, 2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = multiply.ScalarProduct(a, b, 0, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = multiply.ScalarProduct(a, b, 0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestAgainstFloatOracle compares with gonum for operands small enough that
// every partial sum is exact in both int32 and float64.
func TestAgainstFloatOracle(t *testing.T) {
	const r, n, c = 17, 23, 11
	rng := matrix.NewSource(fixtureSeed)
	left, err := matrix.GenerateMatrix(r, n, rng, -100, 100)
	require.NoError(t, err)
	right, err := matrix.GenerateMatrix(n, c, rng, -100, 100)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(toGonum(left), toGonum(right))

	for _, m := range []multiply.Multiplier{multiply.Serial{}, multiply.NewParallel()} {
		got := matrix.MustDense(r, c)
		require.True(t, m.Multiply(left, right, got))
		got.Do(func(i, j int, v int32) bool {
			require.Equal(t, want.At(i, j), float64(v), "(%d,%d)", i, j)
			return true
		})
	}
}

func toGonum(m *matrix.Dense) *mat.Dense {
	out := mat.NewDense(m.Rows(), m.Cols(), nil)
	m.Do(func(i, j int, v int32) bool {
		out.Set(i, j, float64(v))
		return true
	})

	return out
}
