package jobs

import (
	"context"
)

// InitializeJobs starts all background jobs.
func InitializeJobs() *KeepAliveJob {
	keepAliveJob := NewKeepAliveJob()

	go keepAliveJob.RunScheduled(context.Background(), KeepAliveInterval())

	return keepAliveJob
}
