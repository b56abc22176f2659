// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/stochastic/internal/report"
	"github.com/katalvlaran/stochastic/queue"
	"github.com/spf13/cobra"
)

var (
	queueArrival float64
	queueService float64
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Evaluate an M/M/1 queue",
	Long: `Report utilisation, mean queue lengths, mean waiting times and the idle
probability of a single-server queue with Poisson arrivals and exponential
service. The arrival rate must be below the service rate.

Example:
  stochastic queue --arrival 4 --service 5`,
	Args: cobra.NoArgs,
	RunE: runQueue,
}

func init() {
	rootCmd.AddCommand(queueCmd)

	queueCmd.Flags().Float64VarP(&queueArrival, "arrival", "a", 0, "arrival rate λ")
	queueCmd.Flags().Float64VarP(&queueService, "service", "s", 0, "service rate μ")
	_ = queueCmd.MarkFlagRequired("arrival")
	_ = queueCmd.MarkFlagRequired("service")
}

func runQueue(cmd *cobra.Command, args []string) error {
	m, err := queue.MM1(queueArrival, queueService)
	if err != nil {
		return err
	}
	logger.Info("queue evaluated", "utilization", m.Utilization)

	p, err := printer(cmd)
	if err != nil {
		return err
	}
	return p.Print(report.Queue(m), m)
}
