// SPDX-License-Identifier: MIT
package stochastic

// Version is the release of the module, reported by `stochastic version`.
var Version = "0.1.0"
