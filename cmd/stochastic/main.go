// SPDX-License-Identifier: MIT

// Command stochastic analyses Markov chains, hidden Markov models and M/M/1
// queues from the command line.
package main

func main() {
	Execute()
}
