// SPDX-License-Identifier: MIT
// Package: mpnn/tensor
//
// activations.go — rank-agnostic elementwise kernels.
//
// One implementation per function, applied to raw backing slices: a 2-D
// encoding matrix and a 4-D batched message tensor go through the exact
// same loop. dst and src must have equal length (caller contract, not
// validated); dst == src is allowed for in-place application.

package tensor

import "math"

// Relu writes max(0, src[i]) into dst[i].
func Relu(dst, src []float64) {
	for i, v := range src {
		if v > 0 {
			dst[i] = v
		} else {
			dst[i] = 0
		}
	}
}

// ReluDeriv writes the rectifier derivative indicator into dst:
// 1 where src[i] > 0, else 0.
func ReluDeriv(dst, src []float64) {
	for i, v := range src {
		if v > 0 {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

// Sigmoid writes the logistic function of src[i] into dst[i].
func Sigmoid(dst, src []float64) {
	for i, v := range src {
		dst[i] = 1 / (1 + math.Exp(-v))
	}
}

// SigmoidDeriv writes s·(1−s) into dst, where s = sigmoid(src[i]).
func SigmoidDeriv(dst, src []float64) {
	for i, v := range src {
		s := 1 / (1 + math.Exp(-v))
		dst[i] = s * (1 - s)
	}
}

// Tanh writes the hyperbolic tangent of src[i] into dst[i].
func Tanh(dst, src []float64) {
	for i, v := range src {
		dst[i] = math.Tanh(v)
	}
}
