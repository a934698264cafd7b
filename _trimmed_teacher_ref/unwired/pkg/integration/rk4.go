package integration

import "github.com/bxrne/launchrail/pkg/types"

type DerivativeFunc func(t float64, y types.State) types.State

func RK4(f DerivativeFunc, y0 types.State, t float64, h float64) types.State {
	// TODO: Implementation of RK4 integration

	return types.State{}
}
