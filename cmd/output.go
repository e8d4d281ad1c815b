package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-simulator/internal/requests"
	"os-simulator/internal/responses"
	"os-simulator/internal/schedulers"
)

var algorithmTitles = map[schedulers.Algorithm]string{
	schedulers.RoundRobin:              "Round Robin",
	schedulers.PriorityPreemptive:      "Priority (Preemptive)",
	schedulers.ShortestJobFirst:        "Shortest Job First",
	schedulers.FirstComeFirstServe:     "First Come First Serve",
	schedulers.MultilevelFeedbackQueue: "Multilevel Feedback Queue",
}

func runSimulations(w io.Writer, algs []schedulers.Algorithm, request *requests.ScheduleRequests, options schedulers.Options) error {
	processes := request.Processes()
	for _, alg := range algs {
		response, err := schedulers.Schedule(alg, processes, options)
		if err != nil {
			return fmt.Errorf("%s: %w", alg, err)
		}
		outputTitle(w, algorithmTitles[alg])
		outputGantt(w, response.Gantt)
		outputSchedule(w, response)
	}
	return nil
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)))
	_, _ = fmt.Fprintln(w, title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

func outputGantt(w io.Writer, gantt []responses.GanttSegment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(gantt) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}
	_, _ = fmt.Fprint(w, "|")
	for _, segment := range gantt {
		padding := strings.Repeat(" ", max(0, (8-len(segment.Job))/2))
		_, _ = fmt.Fprint(w, padding, segment.Job, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for _, segment := range gantt {
		_, _ = fmt.Fprint(w, segment.Start, "\t")
	}
	_, _ = fmt.Fprintf(w, "%d\n\n", gantt[len(gantt)-1].Stop)
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, len(response.Details))
	for i, p := range response.Details {
		rows[i] = []string{
			p.Job,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnAroundTime),
			fmt.Sprint(p.ResponseTime),
			fmt.Sprint(p.CompletionTime),
		}
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization: %.2f%% (idle %d of %d ticks)\n\n",
		response.CpuUtilization*100, response.IdleTime, response.TotalTime)
}
