package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"dcofeed/internal/campaign"
	"dcofeed/internal/config"
	"dcofeed/internal/feed"
	"dcofeed/internal/logging"
	"dcofeed/internal/sink"
	"dcofeed/internal/textutil"
)

// ArtifactPrefix starts every derived artifact name.
const ArtifactPrefix = "DCO_"

// Options controls a generation run. Empty overrides fall back to Config.
type Options struct {
	Logger *slog.Logger
	Config *config.Config

	CampaignFile string
	Format       string
	// Output is an explicit artifact path; it replaces output_dir and
	// file_name, and its extension is kept as given.
	Output    string
	Table     string
	Overwrite bool
}

// Result summarizes a completed run.
type Result struct {
	RunID       string
	Campaign    string
	Format      string
	Path        string
	Rows        int
	Defaults    int
	Fingerprint string
	Duration    time.Duration
}

// Run generates and persists one feed artifact.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, errors.New("generator: config is required")
	}
	started := time.Now()

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, "generator"))

	c, f, err := LoadFeed(opts.campaignFile())
	if err != nil {
		logFailure(logger, "campaign rejected", "campaign_invalid", err)
		return nil, err
	}
	logger = logger.With(logging.Campaign(c.Name))

	format := opts.format()
	s, err := sink.For(format, sink.Options{Table: feed.TableKey(opts.table())})
	if err != nil {
		logFailure(logger, "output format rejected", "sink_unsupported", err)
		return nil, err
	}

	path, err := ArtifactPath(opts.Config, opts.Output, c.Name, s)
	if err != nil {
		logFailure(logger, "artifact path rejected", "artifact_path", err)
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		err = fmt.Errorf("create output directory: %w", err)
		logFailure(logger, "output directory unavailable", "artifact_path", err)
		return nil, err
	}

	logger.Info(
		"generation started",
		logging.EventType("generate_start"),
		logging.Format(s.Format()),
		logging.Path(path),
		logging.Rows(f.Len()),
	)

	overwrite := opts.Overwrite || opts.Config.Output.Overwrite
	if err := sink.Save(ctx, s, path, f, overwrite); err != nil {
		logFailure(logger, "artifact write failed", "artifact_write", err,
			logging.Path(path))
		return nil, err
	}

	result := &Result{
		RunID:       runID,
		Campaign:    c.Name,
		Format:      s.Format(),
		Path:        path,
		Rows:        f.Len(),
		Defaults:    len(f.Defaults()),
		Fingerprint: f.Fingerprint().String(),
		Duration:    time.Since(started),
	}
	logger.Info(
		"artifact written",
		logging.EventType("generate_complete"),
		logging.Format(result.Format),
		logging.Path(result.Path),
		logging.Rows(result.Rows),
		logging.Fingerprint(result.Fingerprint),
		logging.Duration("duration", result.Duration),
	)
	return result, nil
}

// LoadFeed loads the campaign at path (the built-in campaign when empty) and
// enumerates its feed.
func LoadFeed(path string) (*campaign.Campaign, *feed.Feed, error) {
	c, err := campaign.Load(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := c.Build()
	if err != nil {
		return nil, nil, err
	}
	return c, f, nil
}

// ArtifactName derives the artifact base name from a campaign name.
func ArtifactName(campaignName string) string {
	return ArtifactPrefix + strings.ToUpper(textutil.Slug(campaignName))
}

// ArtifactPath resolves where a run writes its document. An explicit output
// path wins; otherwise the file lives in paths.output_dir, named after
// output.file_name or the campaign, with the sink's extension.
func ArtifactPath(cfg *config.Config, output, campaignName string, s sink.Sink) (string, error) {
	if output = strings.TrimSpace(output); output != "" {
		expanded, err := config.ExpandPath(output)
		if err != nil {
			return "", fmt.Errorf("output path: %w", err)
		}
		if strings.HasSuffix(output, "/") || isDir(expanded) {
			return filepath.Join(expanded, artifactFileName(cfg, campaignName, s)), nil
		}
		return expanded, nil
	}
	return filepath.Join(cfg.Paths.OutputDir, artifactFileName(cfg, campaignName, s)), nil
}

func artifactFileName(cfg *config.Config, campaignName string, s sink.Sink) string {
	name := textutil.SanitizeFileName(cfg.Output.FileName)
	if name == "" {
		name = ArtifactName(campaignName)
	}
	if !strings.EqualFold(filepath.Ext(name), s.Extension()) {
		name += s.Extension()
	}
	return name
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (o Options) campaignFile() string {
	if v := strings.TrimSpace(o.CampaignFile); v != "" {
		return v
	}
	return o.Config.Paths.CampaignFile
}

func (o Options) format() string {
	if v := config.NormalizeFormat(o.Format); v != "" {
		return v
	}
	return o.Config.Output.Format
}

func (o Options) table() string {
	if v := strings.ToLower(strings.TrimSpace(o.Table)); v != "" {
		return v
	}
	return o.Config.Output.Table
}

func logFailure(logger *slog.Logger, msg, eventType string, err error, attrs ...logging.Attr) {
	attrs = append(attrs,
		logging.Error(err),
		logging.String(logging.FieldErrorHint, Hint(err)),
	)
	logging.ErrorWithContext(logger, msg, eventType, attrs...)
}
