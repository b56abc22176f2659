// SPDX-License-Identifier: MIT

// Package queue computes steady-state performance metrics of single-server
// queues.
//
// MM1 covers the M/M/1 queue: Poisson arrivals at rate λ, exponential service
// at rate μ, one server, unbounded capacity. The queue has a steady state only
// when λ < μ; otherwise ErrUnstable is returned.
//
// Formulas (ρ = λ/μ):
//
//	– Utilization ρ
//	– L  = ρ/(1−ρ)     mean number in system
//	– Lq = ρ²/(1−ρ)    mean number waiting
//	– W  = 1/(μ−λ)     mean time in system
//	– Wq = ρ/(μ−λ)     mean waiting time
//	– P0 = 1−ρ         probability the system is empty
package queue

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidRate indicates a non-positive or non-finite arrival or service rate.
	ErrInvalidRate = errors.New("queue: rates must be positive finite numbers")

	// ErrUnstable indicates λ ≥ μ: the queue grows without bound.
	ErrUnstable = errors.New("queue: system unstable, arrival rate must be below service rate")
)

// Metrics are the steady-state figures of an M/M/1 queue.
type Metrics struct {
	ArrivalRate float64 `json:"arrival_rate"`
	ServiceRate float64 `json:"service_rate"`
	Utilization float64 `json:"utilization"`
	L           float64 `json:"l"`
	Lq          float64 `json:"lq"`
	W           float64 `json:"w"`
	Wq          float64 `json:"wq"`
	P0          float64 `json:"p0"`
}

// MM1 returns the steady-state metrics for arrival rate λ and service rate μ.
//
// Errors: ErrInvalidRate, ErrUnstable.
// Complexity: O(1).
func MM1(arrival, service float64) (*Metrics, error) {
	if !validRate(arrival) {
		return nil, fmt.Errorf("queue.MM1: arrival rate %v: %w", arrival, ErrInvalidRate)
	}
	if !validRate(service) {
		return nil, fmt.Errorf("queue.MM1: service rate %v: %w", service, ErrInvalidRate)
	}
	if arrival >= service {
		return nil, fmt.Errorf("queue.MM1: λ=%v, μ=%v: %w", arrival, service, ErrUnstable)
	}

	rho := arrival / service
	slack := service - arrival

	return &Metrics{
		ArrivalRate: arrival,
		ServiceRate: service,
		Utilization: rho,
		L:           rho / (1 - rho),
		Lq:          rho * rho / (1 - rho),
		W:           1 / slack,
		Wq:          rho / slack,
		P0:          1 - rho,
	}, nil
}

func validRate(r float64) bool {
	return r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}
