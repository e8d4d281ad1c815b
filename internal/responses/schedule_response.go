package responses

type ProcessResponse struct {
	Job            string `json:"job"`
	ArrivalTime    int64  `json:"arrival_time"`
	BurstTime      int64  `json:"burst_time"`
	Priority       int64  `json:"priority"`
	CompletionTime int64  `json:"ft"`
	TurnAroundTime int64  `json:"tat"`
	WaitingTime    int64  `json:"wat"`
	ResponseTime   int64  `json:"rt"`
}

// GanttSegment is a maximal span during which one job (or idle) held the CPU.
type GanttSegment struct {
	Job   string `json:"job"`
	Start int64  `json:"start"`
	Stop  int64  `json:"stop"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int64             `json:"total_time"`
	IdleTime              int64             `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"solved_processes_info"`
	Gantt                 []GanttSegment    `json:"gantt_chart_info"`
}
