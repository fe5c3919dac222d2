package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/bench/runner"
)

type Report struct {
	Meta   BenchMeta          `json:"meta"`
	Config runner.Config      `json:"config"`
	Suite  runner.SuiteResult `json:"suite"`
}

type BenchMeta struct {
	SuitePath   string          `json:"suite_path"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

func New(suitePath string, cfg runner.Config, res *runner.SuiteResult) *Report {
	return &Report{
		Meta: BenchMeta{
			SuitePath:   suitePath,
			Timestamp:   time.Now().UTC(),
			Environment: NewEnvironmentInfo(),
		},
		Config: cfg,
		Suite:  *res,
	}
}
