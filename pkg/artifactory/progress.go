package artifactory

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/artifactly/go-artifactory/pkg/logging"
)

// ProgressManager manages progress reporting for streamed deployments.
type ProgressManager struct {
	logger             logging.Interface
	enableProgressBars bool
	enableDetailedLogs bool
}

// NewProgressManager creates a new progress manager.
func NewProgressManager(logger logging.Interface, enableBars, enableLogs bool) *ProgressManager {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ProgressManager{
		logger:             logger,
		enableProgressBars: enableBars,
		enableDetailedLogs: enableLogs,
	}
}

// CreateUploadProgressBar creates a progress bar for a single upload.
// Returns nil when bars are disabled.
func (pm *ProgressManager) CreateUploadProgressBar(name string, size int64) *progressbar.ProgressBar {
	if !pm.enableProgressBars {
		return nil
	}

	description := name
	if len(description) > 50 {
		description = description[:47] + "..."
	}

	return progressbar.NewOptions64(size,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowBytes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
}

// LogDeployStart logs the start of a deployment.
func (pm *ProgressManager) LogDeployStart(repoPath string, size int64) {
	if pm.enableDetailedLogs {
		pm.logger.
			WithField("repo_path", repoPath).
			WithField("size", formatSize(size)).
			Info("Starting deployment")
	} else {
		pm.logger.WithField("repo_path", repoPath).Debug("Starting deployment")
	}
}

// LogDeployComplete logs the completion of a deployment.
func (pm *ProgressManager) LogDeployComplete(repoPath string, duration time.Duration, size int64) {
	log := pm.logger.WithField("repo_path", repoPath)
	if pm.enableDetailedLogs {
		speed := float64(size) / duration.Seconds()
		log = log.
			WithField("duration_ms", duration.Milliseconds()).
			WithField("size", formatSize(size)).
			WithField("speed_bps", speed)
	}
	log.Info("Deployment completed")
}

// LogError logs a failed operation with context.
func (pm *ProgressManager) LogError(operation, repoPath string, err error) {
	pm.logger.
		WithField("operation", operation).
		WithField("repo_path", repoPath).
		WithError(err).
		Error("Operation failed")
}

// ProgressReader wraps a reader so bytes read advance a progress bar.
// Used for streamed uploads where the transport consumes the body.
type ProgressReader struct {
	bar    *progressbar.ProgressBar
	reader io.Reader
}

// NewProgressReader creates a new progress reader. A nil bar reads
// through unchanged.
func NewProgressReader(bar *progressbar.ProgressBar, reader io.Reader) *ProgressReader {
	return &ProgressReader{
		bar:    bar,
		reader: reader,
	}
}

// Read implements io.Reader.
func (pr *ProgressReader) Read(p []byte) (n int, err error) {
	n, err = pr.reader.Read(p)
	if n > 0 && pr.bar != nil {
		_ = pr.bar.Add(n) // progress display errors never fail a read
	}
	return n, err
}

// formatSize formats bytes into a human readable form.
func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
