package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"os-simulator/internal/requests"
	"os-simulator/internal/schedulers"
)

type runOptions struct {
	algorithm  string
	quantum    int64
	quantumSet bool
	levels     []int64
	input      string
	arrivals   []int64
	bursts     []int64
	priorities []int64
	all        bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scheduling simulation and print the results",
		Example: `  os-simulator run --algorithm sjf --arrivals 0,1,2 --bursts 7,4,1
  os-simulator run --algorithm rr --quantum 2 --input jobs.csv
  os-simulator run --all --input jobs.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.quantumSet = cmd.Flags().Changed("quantum")
			request, err := opts.request()
			if err != nil {
				return err
			}
			algs := []schedulers.Algorithm{}
			if opts.all {
				algs = schedulers.Algorithms()
			} else {
				alg, err := schedulers.ParseAlgorithm(opts.algorithm)
				if err != nil {
					return err
				}
				algs = append(algs, alg)
			}
			return runSimulations(cmd.OutOrStdout(), algs, request, opts.options(request))
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", string(schedulers.RoundRobin), "Scheduling algorithm (rr, pp, sjf, fcfs, mlfq)")
	cmd.Flags().Int64VarP(&opts.quantum, "quantum", "q", 0, "Round robin time quantum (default 2, or time_quantum from the input file)")
	cmd.Flags().Int64SliceVar(&opts.levels, "levels", nil, "Comma-separated MLFQ time quanta per level; 0 on the last level runs to completion")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "CSV (id,arrival,burst[,priority]) or YAML job file")
	cmd.Flags().Int64SliceVar(&opts.arrivals, "arrivals", nil, "Comma-separated arrival times")
	cmd.Flags().Int64SliceVar(&opts.bursts, "bursts", nil, "Comma-separated burst times")
	cmd.Flags().Int64SliceVar(&opts.priorities, "priorities", nil, "Comma-separated priorities (lower runs first)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Run every algorithm")
	cmd.MarkFlagsMutuallyExclusive("input", "arrivals")
	return cmd
}

// request builds the job list from --input or from the inline slices.
func (o *runOptions) request() (*requests.ScheduleRequests, error) {
	if o.input != "" {
		return LoadJobs(o.input)
	}
	if len(o.arrivals) != len(o.bursts) {
		return nil, fmt.Errorf("got %d arrival times and %d burst times: %w", len(o.arrivals), len(o.bursts), schedulers.ErrInvalidInput)
	}
	if o.priorities != nil && len(o.priorities) != len(o.arrivals) {
		return nil, fmt.Errorf("got %d arrival times and %d priorities: %w", len(o.arrivals), len(o.priorities), schedulers.ErrInvalidInput)
	}
	request := &requests.ScheduleRequests{Jobs: make([]requests.Job, len(o.arrivals))}
	for i := range o.arrivals {
		request.Jobs[i] = requests.Job{ArrivalTime: o.arrivals[i], BurstTime: o.bursts[i]}
		if o.priorities != nil {
			request.Jobs[i].Priority = o.priorities[i]
		}
	}
	return request, nil
}

// options layers flags over the input file over the defaults.
func (o *runOptions) options(request *requests.ScheduleRequests) schedulers.Options {
	options := schedulers.DefaultOptions()
	if request.TimeQuantum != nil {
		options.TimeQuantum = *request.TimeQuantum
	}
	if len(request.Levels) > 0 {
		options.LevelsTimeQuantum = request.Levels
	}
	if o.quantumSet {
		options.TimeQuantum = o.quantum
	}
	if len(o.levels) > 0 {
		options.LevelsTimeQuantum = o.levels
	}
	return options
}
