package optimization

import (
	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LinearFunction は切片付きのアフィン関数 f(x) = p0 + Σ p_i * x_i
//
// パラメータベクトルの長さは inputSize+1 で、インデックス0が切片、
// 1..inputSize が各入力変数の重み。
type LinearFunction struct {
	inputSize  int
	parameters *Parameters
}

var _ ParametricFunction = (*LinearFunction)(nil)

// NewLinearFunction は全パラメータを0で初期化したLinearFunctionを作成する
func NewLinearFunction(inputSize int) *LinearFunction {
	return &LinearFunction{
		inputSize:  inputSize,
		parameters: NewParameters(mat.NewVecDense(inputSize+1, nil)),
	}
}

// LinearFactory は Factory としての NewLinearFunction
func LinearFactory(inputSize int) ParametricFunction {
	return NewLinearFunction(inputSize)
}

// InputSize は入力変数の数を返す
func (lf *LinearFunction) InputSize() int {
	return lf.inputSize
}

// Parameters は現在のパラメータ [切片, 重み...] を返す
func (lf *LinearFunction) Parameters() mat.Vector {
	return lf.parameters.Vector()
}

// SetParameters はパラメータを置き換える。長さが異なる場合は panic する
func (lf *LinearFunction) SetParameters(parameters mat.Vector) {
	lf.parameters.SetVector(parameters)
}

// F はパラメータと拡張入力 [1, x...] の内積を返す
func (lf *LinearFunction) F(x mat.Vector) float64 {
	lf.checkInput("LinearFunction.F", x)
	return mat.Dot(lf.parameters.Vector(), augment(x))
}

// DF は切片を除いた重みの総和を返す。
// 全入力変数を同時に1増やしたときの f の変化量に等しい。
func (lf *LinearFunction) DF(x mat.Vector) float64 {
	lf.checkInput("LinearFunction.DF", x)
	p := lf.parameters.Vector()
	return mat.Sum(p) - p.AtVec(0)
}

// ParameterGradients は ∂f/∂p を返す。線形関数では拡張入力そのもの。
func (lf *LinearFunction) ParameterGradients(x mat.Vector) *mat.VecDense {
	lf.checkInput("LinearFunction.ParameterGradients", x)
	return augment(x)
}

func (lf *LinearFunction) checkInput(op string, x mat.Vector) {
	if x.Len() != lf.inputSize {
		panic(errors.NewDimensionError(op, lf.inputSize, x.Len(), errors.AxisFeatures))
	}
}

// augment は入力の先頭に定数1を付加する
func augment(x mat.Vector) *mat.VecDense {
	data := make([]float64, x.Len()+1)
	data[0] = 1
	for i := 0; i < x.Len(); i++ {
		data[i+1] = x.AtVec(i)
	}
	return mat.NewVecDense(len(data), data)
}
