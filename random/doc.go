// SPDX-License-Identifier: MIT

// Package random provides the sampling source consumed by the eigen solver
// and by matrix.Random.
//
// A Random draws Uniform and Gaussian samples through gonum's distuv
// distributions fed by a math/rand/v2 PCG generator. Construct one with New
// for reproducible runs, or use Default for a lazily-initialized,
// entropy-seeded process-wide instance.
package random
