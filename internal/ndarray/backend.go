package ndarray

import (
	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/parallel"
)

// backend executes every kernel for Vector and Matrix. It is built once from
// the NDARRAY_* environment and never modified afterwards.
var backend = cpu.New(parallel.LoadConfigFromEnv())
